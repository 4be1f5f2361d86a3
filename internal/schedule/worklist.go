package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/mikasr411/RouteBoss/internal/models"
)

// WorklistEntry pairs a reminder with its equipment and computed status.
// Entries are ephemeral: rebuilt on demand, never persisted.
type WorklistEntry struct {
	Equipment models.Equipment `json:"equipment"`
	Reminder  models.Reminder  `json:"reminder"`
	Status    Status           `json:"status"`
}

// BuildWorklist merges every (equipment, reminder) pair into one ranked
// list. An entry is included when it is already due, or when its date
// channel falls within horizonDays. Hours-only reminders appear only
// once actually due: hours accrue at no fixed real-time rate, so there
// is no meaningful "hours away soon" without a usage-rate model.
//
// Ordering: overdue entries first, then ascending days-until-due within
// each partition; entries without a date channel sort last in theirs.
func BuildWorklist(equipment []models.Equipment, reminders []models.Reminder, horizonDays int, now time.Time) []WorklistEntry {
	byID := make(map[string]models.Equipment, len(equipment))
	for _, eq := range equipment {
		byID[eq.ID] = eq
	}

	var entries []WorklistEntry
	for _, r := range reminders {
		eq, ok := byID[r.EquipmentID]
		if !ok {
			continue
		}
		st := ReminderStatus(r, eq, now)
		if st.IsDue || (st.DaysUntilDue != nil && *st.DaysUntilDue <= horizonDays) {
			entries = append(entries, WorklistEntry{Equipment: eq, Reminder: r, Status: st})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Status, entries[j].Status
		if a.IsOverdue != b.IsOverdue {
			return a.IsOverdue
		}
		return daysOrInf(a) < daysOrInf(b)
	})
	return entries
}

// daysOrInf treats a missing date channel as infinitely far away.
func daysOrInf(st Status) float64 {
	if st.DaysUntilDue == nil {
		return math.Inf(1)
	}
	return float64(*st.DaysUntilDue)
}

// DueCustomers filters the customers whose cadence has come due, in the
// order given.
func DueCustomers(customers []models.Customer, today time.Time) []models.Customer {
	var due []models.Customer
	for _, c := range customers {
		if IsCustomerDue(c, today) {
			due = append(due, c)
		}
	}
	return due
}
