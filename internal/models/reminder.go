package models

// Reminder is a maintenance obligation attached to a piece of equipment.
// It fires on a calendar date, on accrued hours since the last service,
// or both; a reminder with neither trigger set is never due.
type Reminder struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipment_id"`
	Name        string `json:"name"`
	// DueDate is the optional calendar trigger, ISO yyyy-MM-dd.
	DueDate string `json:"due_date,omitempty"`
	// DueHoursSinceService is the optional usage trigger, compared against
	// the owning equipment's current HoursSinceService.
	DueHoursSinceService *float64 `json:"due_hours_since_service,omitempty"`
	// LastResetAtHours snapshots HoursTotal at the last service reset.
	// Kept for audit/display only; due computation never reads it.
	LastResetAtHours *float64 `json:"last_reset_at_hours,omitempty"`
}

// HasTrigger reports whether at least one trigger channel is configured.
func (r Reminder) HasTrigger() bool {
	return r.DueDate != "" || r.DueHoursSinceService != nil
}
