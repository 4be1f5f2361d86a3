package schedule

import (
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
)

// FrequencyMonths maps a service frequency to its interval in calendar
// months. OneTime (and anything unrecognized) maps to 0: no recurrence.
func FrequencyMonths(f models.ServiceFrequency) int {
	switch f {
	case models.FrequencyQuarterly:
		return 3
	case models.FrequencyBiannual:
		return 6
	default:
		return 0
	}
}

// NextServiceDate computes the next visit date from the last one and the
// frequency. Returns "" when the last date is absent or unparseable, or
// when the frequency never recurs.
func NextServiceDate(lastServiceDate string, f models.ServiceFrequency) string {
	months := FrequencyMonths(f)
	if months == 0 {
		return ""
	}
	last, ok := ParseDate(lastServiceDate)
	if !ok {
		return ""
	}
	return FormatDate(AddMonths(last, months))
}

// IsCustomerDue reports whether the customer's next service date has
// arrived. An absent or unparseable next date is never due.
func IsCustomerDue(c models.Customer, today time.Time) bool {
	next, ok := ParseDate(c.NextServiceDate)
	if !ok {
		return false
	}
	return IsOnOrBefore(next, today)
}

// SkipCycle rolls the customer's next service date forward by one full
// frequency interval from its stored value, not from today: a schedule
// three cycles overdue stays two cycles overdue after one skip. Returns
// the customer unchanged when no next date is set or the frequency does
// not recur.
func SkipCycle(c models.Customer) models.Customer {
	months := FrequencyMonths(c.ServiceFrequency)
	if months == 0 {
		return c
	}
	next, ok := ParseDate(c.NextServiceDate)
	if !ok {
		return c
	}
	c.NextServiceDate = FormatDate(AddMonths(next, months))
	return c
}

// DaysSinceLastService returns the whole days elapsed since the
// customer's last service, or ok=false when the date is absent.
func DaysSinceLastService(c models.Customer, today time.Time) (int, bool) {
	last, ok := ParseDate(c.LastServiceDate)
	if !ok {
		return 0, false
	}
	return DaysBetween(last, today), true
}
