package schedule

import (
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
)

// Status is the computed due state of a single reminder. The date and
// hours channels stay separate so callers can report "due in X days OR
// Y hours" without conflating units; an absent channel contributes
// nothing either way.
type Status struct {
	IsDue         bool     `json:"is_due"`
	IsOverdue     bool     `json:"is_overdue"`
	DaysUntilDue  *int     `json:"days_until_due,omitempty"`
	HoursUntilDue *float64 `json:"hours_until_due,omitempty"`
}

// IsReminderDue reports whether either trigger of the reminder has
// fired: the due date has arrived, or the equipment's hours since
// service have reached the hours threshold. Either channel alone is
// sufficient.
func IsReminderDue(r models.Reminder, eq models.Equipment, now time.Time) bool {
	if due, ok := ParseDate(r.DueDate); ok && IsOnOrBefore(due, now) {
		return true
	}
	if r.DueHoursSinceService != nil && eq.HoursSinceService >= *r.DueHoursSinceService {
		return true
	}
	return false
}

// ReminderStatus computes the full dual-channel status of a reminder
// against its owning equipment. A channel is overdue once its remaining
// margin goes negative; the reminder is overdue if either channel is.
func ReminderStatus(r models.Reminder, eq models.Equipment, now time.Time) Status {
	st := Status{IsDue: IsReminderDue(r, eq, now)}

	if due, ok := ParseDate(r.DueDate); ok {
		days := DaysBetween(now, due)
		st.DaysUntilDue = &days
		if days < 0 {
			st.IsOverdue = true
		}
	}

	if r.DueHoursSinceService != nil {
		hours := *r.DueHoursSinceService - eq.HoursSinceService
		st.HoursUntilDue = &hours
		if hours < 0 {
			st.IsOverdue = true
		}
	}

	return st
}
