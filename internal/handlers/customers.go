package handlers

import (
	"net/http"

	"github.com/mikasr411/RouteBoss/internal/models"

	"github.com/gin-gonic/gin"
)

// Request DTOs for the named customer operations.
type logServiceRequest struct {
	ServiceDate string `json:"service_date" binding:"required"` // yyyy-MM-dd
}

type frequencyRequest struct {
	Frequency string `json:"frequency" binding:"required"` // OneTime | Quarterly | Biannual
}

type nextServiceDateRequest struct {
	NextServiceDate string `json:"next_service_date"` // yyyy-MM-dd, empty clears
}

type routeSelectionRequest struct {
	Selected *bool `json:"selected" binding:"required"`
}

type messagePreviewRequest struct {
	Template string `json:"template"` // empty uses the stock template
}

// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, customers"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/customers [get]
// @Security     BearerAuth
func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.services.Customers.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "customers_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "Customer ID"
// @Success      200  {object}  models.Customer
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id} [get]
// @Security     BearerAuth
func (h *Handler) getCustomer(c *gin.Context) {
	customer, err := h.services.Customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "customer_get_failed")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary      Create customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  models.Customer  true  "Customer"
// @Success      200  {object}  models.Customer
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/customers [post]
// @Security     BearerAuth
func (h *Handler) createCustomer(c *gin.Context) {
	var input models.Customer
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	created, err := h.services.Customers.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "customer_create_failed")
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary      Delete customer
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "Customer ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCustomer(c *gin.Context) {
	if err := h.services.Customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "customer_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// @Summary      Log a completed service visit
// @Description  Records the visit date and recomputes the next service date from the cadence.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Customer ID"
// @Param        body  body  logServiceRequest  true  "Visit date"
// @Success      200  {object}  models.Customer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id}/log-service [post]
// @Security     BearerAuth
func (h *Handler) logCustomerService(c *gin.Context) {
	var input logServiceRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	customer, err := h.services.Customers.LogService(c.Request.Context(), c.Param("id"), input.ServiceDate)
	if err != nil {
		h.respondError(c, err, "customer_log_service_failed")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary      Skip one service cycle
// @Description  Rolls the next service date forward one frequency interval.
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "Customer ID"
// @Success      200  {object}  models.Customer
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id}/skip-cycle [post]
// @Security     BearerAuth
func (h *Handler) skipCustomerCycle(c *gin.Context) {
	customer, err := h.services.Customers.SkipCycle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "customer_skip_cycle_failed")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary      Set service frequency
// @Description  Changes the cadence and re-baselines the next visit from the last service date.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "Customer ID"
// @Param        body  body  frequencyRequest  true  "Frequency"
// @Success      200  {object}  models.Customer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id}/frequency [put]
// @Security     BearerAuth
func (h *Handler) setCustomerFrequency(c *gin.Context) {
	var input frequencyRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	customer, err := h.services.Customers.SetFrequency(c.Request.Context(), c.Param("id"), models.ServiceFrequency(input.Frequency))
	if err != nil {
		h.respondError(c, err, "customer_set_frequency_failed")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary      Override the next service date
// @Description  Sets the next visit manually; an empty date clears the schedule.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Customer ID"
// @Param        body  body  nextServiceDateRequest  true  "Next service date"
// @Success      200  {object}  models.Customer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id}/next-service-date [put]
// @Security     BearerAuth
func (h *Handler) setCustomerNextServiceDate(c *gin.Context) {
	var input nextServiceDateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	customer, err := h.services.Customers.SetNextServiceDate(c.Request.Context(), c.Param("id"), input.NextServiceDate)
	if err != nil {
		h.respondError(c, err, "customer_set_next_date_failed")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary      Toggle route selection
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Customer ID"
// @Param        body  body  routeSelectionRequest  true  "Selection flag"
// @Success      200  {object}  models.Customer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id}/route-selection [put]
// @Security     BearerAuth
func (h *Handler) setCustomerRouteSelection(c *gin.Context) {
	var input routeSelectionRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	customer, err := h.services.Customers.SelectForRoute(c.Request.Context(), c.Param("id"), *input.Selected)
	if err != nil {
		h.respondError(c, err, "customer_route_selection_failed")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary      Preview an outreach message
// @Description  Renders the template for the customer; an empty template uses the stock one.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Customer ID"
// @Param        body  body  messagePreviewRequest  true  "Template"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/customers/{id}/message-preview [post]
// @Security     BearerAuth
func (h *Handler) previewCustomerMessage(c *gin.Context) {
	var input messagePreviewRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	message, err := h.services.Templates.Preview(c.Request.Context(), c.Param("id"), input.Template)
	if err != nil {
		h.respondError(c, err, "message_preview_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// @Summary      Import customers from CSV
// @Description  Replaces the customer collection with a Housecall Pro export.
// @Tags         customers
// @Accept       text/csv
// @Produce      json
// @Success      200  {object}  service.ImportSummary
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/customers/import [post]
// @Security     BearerAuth
func (h *Handler) importCustomers(c *gin.Context) {
	summary, err := h.services.Importer.ImportCustomers(c.Request.Context(), c.Request.Body)
	if err != nil {
		h.respondError(c, err, "customers_import_failed")
		return
	}
	if h.log != nil {
		h.log.Infow("customers_imported", "imported", summary.Imported, "skipped", summary.Skipped)
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary      Geocode customers missing coordinates
// @Tags         customers
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/customers/geocode [post]
// @Security     BearerAuth
func (h *Handler) geocodeCustomers(c *gin.Context) {
	updated, err := h.services.Customers.GeocodeMissing(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "customers_geocode_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
