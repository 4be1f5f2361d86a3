package schedule

import (
	"testing"

	"github.com/mikasr411/RouteBoss/internal/models"
)

func TestNextServiceDate_QuarterlyAndBiannual(t *testing.T) {
	cases := []struct {
		last string
		freq models.ServiceFrequency
		want string
	}{
		{"2024-01-15", models.FrequencyQuarterly, "2024-04-15"},
		{"2024-01-15", models.FrequencyBiannual, "2024-07-15"},
		{"2024-01-31", models.FrequencyQuarterly, "2024-04-30"}, // clamped
		{"2024-08-31", models.FrequencyBiannual, "2025-02-28"},  // clamped + year carry
	}
	for _, tc := range cases {
		if got := NextServiceDate(tc.last, tc.freq); got != tc.want {
			t.Errorf("NextServiceDate(%s, %s) = %q, want %q", tc.last, tc.freq, got, tc.want)
		}
	}
}

func TestNextServiceDate_NoneCases(t *testing.T) {
	if got := NextServiceDate("2024-01-15", models.FrequencyOneTime); got != "" {
		t.Errorf("OneTime should never recur, got %q", got)
	}
	if got := NextServiceDate("", models.FrequencyQuarterly); got != "" {
		t.Errorf("absent last date should yield none, got %q", got)
	}
	if got := NextServiceDate("garbage", models.FrequencyBiannual); got != "" {
		t.Errorf("unparseable last date should yield none, got %q", got)
	}
}

func TestIsCustomerDue_EqualityCountsAsDue(t *testing.T) {
	c := models.Customer{NextServiceDate: "2024-06-01"}
	if !IsCustomerDue(c, date(t, "2024-06-01")) {
		t.Error("due today should count as due")
	}
	if IsCustomerDue(c, date(t, "2024-05-31")) {
		t.Error("due tomorrow should not count as due")
	}
	if !IsCustomerDue(c, date(t, "2024-07-01")) {
		t.Error("past due should count as due")
	}
}

func TestIsCustomerDue_DegradesOnAbsentOrBadDate(t *testing.T) {
	today := date(t, "2024-06-01")
	if IsCustomerDue(models.Customer{}, today) {
		t.Error("no next date must not be due")
	}
	if IsCustomerDue(models.Customer{NextServiceDate: "06/01/2024"}, today) {
		t.Error("unparseable next date must not be due")
	}
}

func TestSkipCycle_AdvancesFromStoredValue(t *testing.T) {
	c := models.Customer{
		ServiceFrequency: models.FrequencyQuarterly,
		NextServiceDate:  "2024-01-01",
	}
	c = SkipCycle(c)
	c = SkipCycle(c)
	if c.NextServiceDate != "2024-07-01" {
		t.Fatalf("two skips = %q, want 2024-07-01 (two 3-month hops from stored value)", c.NextServiceDate)
	}
}

func TestSkipCycle_NoOpWithoutNextDateOrRecurrence(t *testing.T) {
	c := models.Customer{ServiceFrequency: models.FrequencyQuarterly}
	if got := SkipCycle(c); got.NextServiceDate != "" {
		t.Errorf("skip with no next date changed it to %q", got.NextServiceDate)
	}
	c = models.Customer{ServiceFrequency: models.FrequencyOneTime, NextServiceDate: "2024-05-01"}
	if got := SkipCycle(c); got.NextServiceDate != "2024-05-01" {
		t.Errorf("skip on OneTime moved the manual override to %q", got.NextServiceDate)
	}
}

func TestDaysSinceLastService(t *testing.T) {
	c := models.Customer{LastServiceDate: "2024-05-01"}
	days, ok := DaysSinceLastService(c, date(t, "2024-06-01"))
	if !ok || days != 31 {
		t.Fatalf("got (%d, %v), want (31, true)", days, ok)
	}
	if _, ok := DaysSinceLastService(models.Customer{}, date(t, "2024-06-01")); ok {
		t.Fatal("absent last date should not be computable")
	}
}
