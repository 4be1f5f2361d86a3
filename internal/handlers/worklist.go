package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseHorizonDays reads ?horizon_days with the service default as fallback.
func parseHorizonDays(c *gin.Context) int {
	if qs := c.Query("horizon_days"); qs != "" {
		if v, err := strconv.Atoi(qs); err == nil && v > 0 {
			return v
		}
	}
	return 0 // service applies its default
}

// @Summary      Prioritized maintenance worklist
// @Description  Overdue work ranks first, then ascending days until due. Hours-driven reminders appear only once due.
// @Tags         worklist
// @Produce      json
// @Param        horizon_days  query  int  false  "Look-ahead window in days (default 30)"
// @Success      200  {object}  map[string]interface{}  "count, entries"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/worklist [get]
// @Security     BearerAuth
func (h *Handler) getWorklist(c *gin.Context) {
	entries, err := h.services.Worklist.Build(c.Request.Context(), parseHorizonDays(c))
	if err != nil {
		h.respondError(c, err, "worklist_build_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}

// @Summary      Customers due today
// @Tags         worklist
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, customers"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/worklist/due-customers [get]
// @Security     BearerAuth
func (h *Handler) getDueCustomers(c *gin.Context) {
	customers, err := h.services.Worklist.DueCustomers(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "due_customers_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}
