package handlers

import (
	"net/http"

	"github.com/mikasr411/RouteBoss/internal/models"
	"github.com/mikasr411/RouteBoss/internal/service"

	"github.com/gin-gonic/gin"
)

type addHoursRequest struct {
	Hours *float64 `json:"hours" binding:"required"`
}

type equipmentServiceLogRequest struct {
	Date           string   `json:"date" binding:"required"` // yyyy-MM-dd
	ServiceType    string   `json:"service_type"`
	Description    string   `json:"description"`
	CostParts      *float64 `json:"cost_parts"`
	CostLabor      *float64 `json:"cost_labor"`
	HoursAtService *float64 `json:"hours_at_service"`
}

type reminderRequest struct {
	Name                 string   `json:"name" binding:"required"`
	DueDate              string   `json:"due_date"`
	DueHoursSinceService *float64 `json:"due_hours_since_service"`
}

// @Summary      List equipment
// @Tags         equipment
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, equipment"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/equipment [get]
// @Security     BearerAuth
func (h *Handler) listEquipment(c *gin.Context) {
	equipment, err := h.services.Equipments.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "equipment_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(equipment), "equipment": equipment})
}

// @Summary      Get equipment
// @Tags         equipment
// @Produce      json
// @Param        id  path  string  true  "Equipment ID"
// @Success      200  {object}  models.Equipment
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipment/{id} [get]
// @Security     BearerAuth
func (h *Handler) getEquipment(c *gin.Context) {
	eq, err := h.services.Equipments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "equipment_get_failed")
		return
	}
	c.JSON(http.StatusOK, eq)
}

// @Summary      Create equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        body  body  models.Equipment  true  "Equipment"
// @Success      200  {object}  models.Equipment
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/equipment [post]
// @Security     BearerAuth
func (h *Handler) createEquipment(c *gin.Context) {
	var input models.Equipment
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	created, err := h.services.Equipments.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "equipment_create_failed")
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary      Delete equipment
// @Description  Removes the equipment along with its reminders and service records.
// @Tags         equipment
// @Produce      json
// @Param        id  path  string  true  "Equipment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipment/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteEquipment(c *gin.Context) {
	if err := h.services.Equipments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "equipment_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// @Summary      Add usage hours
// @Description  Accrues hours on both counters; the delta must be positive.
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "Equipment ID"
// @Param        body  body  addHoursRequest  true  "Hours delta"
// @Success      200  {object}  models.Equipment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipment/{id}/hours [post]
// @Security     BearerAuth
func (h *Handler) addEquipmentHours(c *gin.Context) {
	var input addHoursRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	eq, err := h.services.Equipments.AddHours(c.Request.Context(), c.Param("id"), *input.Hours)
	if err != nil {
		h.respondError(c, err, "equipment_add_hours_failed")
		return
	}
	c.JSON(http.StatusOK, eq)
}

// @Summary      Log equipment maintenance
// @Description  Records the service, resets hours-since-service, and stamps the reminders.
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Equipment ID"
// @Param        body  body  equipmentServiceLogRequest  true  "Service details"
// @Success      200  {object}  models.Equipment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipment/{id}/service-log [post]
// @Security     BearerAuth
func (h *Handler) logEquipmentService(c *gin.Context) {
	var input equipmentServiceLogRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	eq, err := h.services.Equipments.LogService(c.Request.Context(), c.Param("id"), service.ServiceLogParams{
		Date:           input.Date,
		ServiceType:    models.ServiceType(input.ServiceType),
		Description:    input.Description,
		CostParts:      input.CostParts,
		CostLabor:      input.CostLabor,
		HoursAtService: input.HoursAtService,
	})
	if err != nil {
		h.respondError(c, err, "equipment_log_service_failed")
		return
	}
	c.JSON(http.StatusOK, eq)
}

// @Summary      List reminders for equipment
// @Tags         reminders
// @Produce      json
// @Param        id  path  string  true  "Equipment ID"
// @Success      200  {object}  map[string]interface{}  "count, reminders"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipment/{id}/reminders [get]
// @Security     BearerAuth
func (h *Handler) listReminders(c *gin.Context) {
	reminders, err := h.services.Equipments.Reminders(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "reminders_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reminders), "reminders": reminders})
}

// @Summary      Add a reminder
// @Description  Either a due date or an hours threshold (or both) can drive the reminder.
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "Equipment ID"
// @Param        body  body  reminderRequest  true  "Reminder"
// @Success      200  {object}  models.Reminder
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipment/{id}/reminders [post]
// @Security     BearerAuth
func (h *Handler) addReminder(c *gin.Context) {
	var input reminderRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	rem, err := h.services.Equipments.AddReminder(c.Request.Context(), c.Param("id"), service.ReminderParams{
		Name:                 input.Name,
		DueDate:              input.DueDate,
		DueHoursSinceService: input.DueHoursSinceService,
	})
	if err != nil {
		h.respondError(c, err, "reminder_add_failed")
		return
	}
	c.JSON(http.StatusOK, rem)
}

// @Summary      Update a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "Reminder ID"
// @Param        body  body  reminderRequest  true  "Reminder"
// @Success      200  {object}  models.Reminder
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reminders/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateReminder(c *gin.Context) {
	var input reminderRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	rem, err := h.services.Equipments.UpdateReminder(c.Request.Context(), c.Param("id"), service.ReminderParams{
		Name:                 input.Name,
		DueDate:              input.DueDate,
		DueHoursSinceService: input.DueHoursSinceService,
	})
	if err != nil {
		h.respondError(c, err, "reminder_update_failed")
		return
	}
	c.JSON(http.StatusOK, rem)
}

// @Summary      Delete a reminder
// @Tags         reminders
// @Produce      json
// @Param        id  path  string  true  "Reminder ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/reminders/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteReminder(c *gin.Context) {
	if err := h.services.Equipments.DeleteReminder(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "reminder_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// @Summary      Maintenance cost summary
// @Tags         equipment
// @Produce      json
// @Param        id  path  string  true  "Equipment ID"
// @Success      200  {object}  service.MaintenanceCosts
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/equipment/{id}/costs [get]
// @Security     BearerAuth
func (h *Handler) getEquipmentCosts(c *gin.Context) {
	costs, err := h.services.Equipments.Costs(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "equipment_costs_failed")
		return
	}
	c.JSON(http.StatusOK, costs)
}

// @Summary      Service history
// @Description  Filter by equipment, inclusive date range (yyyy-MM-dd), and service type.
// @Tags         service-log
// @Produce      json
// @Param        equipment_id  query  string  false  "Equipment ID"
// @Param        from          query  string  false  "Start date (yyyy-MM-dd, inclusive)"
// @Param        to            query  string  false  "End date (yyyy-MM-dd, inclusive)"
// @Param        type          query  string  false  "Service type"
// @Success      200  {object}  map[string]interface{}  "count, records"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/service-log [get]
// @Security     BearerAuth
func (h *Handler) getServiceLog(c *gin.Context) {
	records, err := h.services.ServiceLog.List(c.Request.Context(), service.HistoryFilter{
		EquipmentID: c.Query("equipment_id"),
		From:        c.Query("from"),
		To:          c.Query("to"),
		ServiceType: c.Query("type"),
	})
	if err != nil {
		h.respondError(c, err, "service_log_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(records), "records": records})
}
