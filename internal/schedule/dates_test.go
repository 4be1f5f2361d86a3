package schedule

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := ParseDate(s)
	if !ok {
		t.Fatalf("ParseDate(%q) failed", s)
	}
	return d
}

func TestParseDate_FailsSoftOnGarbage(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2024-13-01", "01/31/2024", "2024-02-30"} {
		if _, ok := ParseDate(s); ok {
			t.Errorf("ParseDate(%q) = ok, want failure", s)
		}
	}
}

func TestParseDate_RoundTrips(t *testing.T) {
	d, ok := ParseDate("2024-06-01")
	if !ok {
		t.Fatal("expected ok")
	}
	if got := FormatDate(d); got != "2024-06-01" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestAddMonths_ClampsToShorterMonth(t *testing.T) {
	cases := []struct {
		in     string
		months int
		want   string
	}{
		{"2024-01-31", 1, "2024-02-29"}, // leap year
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-01-31", 3, "2024-04-30"},
		{"2024-03-31", 6, "2024-09-30"},
		{"2024-01-15", 3, "2024-04-15"},
		{"2024-11-30", 3, "2025-02-28"}, // year carry + clamp
		{"2024-10-31", 4, "2025-02-28"},
	}
	for _, tc := range cases {
		got := FormatDate(AddMonths(date(t, tc.in), tc.months))
		if got != tc.want {
			t.Errorf("AddMonths(%s, %d) = %s, want %s", tc.in, tc.months, got, tc.want)
		}
	}
}

func TestIsOnOrBefore_EqualityCounts(t *testing.T) {
	d := date(t, "2024-06-01")
	if !IsOnOrBefore(d, date(t, "2024-06-01")) {
		t.Error("same day should count as on-or-before")
	}
	if !IsOnOrBefore(d, date(t, "2024-06-02")) {
		t.Error("earlier day should count")
	}
	if IsOnOrBefore(d, date(t, "2024-05-31")) {
		t.Error("later day should not count")
	}
}

func TestIsOnOrBefore_IgnoresTimeOfDay(t *testing.T) {
	d := date(t, "2024-06-01")
	ref := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	if !IsOnOrBefore(d, ref) {
		t.Error("time of day must not matter")
	}
}

func TestDaysBetween_Signed(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2024-06-01", "2024-06-01", 0},
		{"2024-06-01", "2024-06-03", 2},
		{"2024-06-03", "2024-06-01", -2},
		{"2024-02-27", "2024-03-01", 3}, // across leap day
		{"2024-12-30", "2025-01-02", 3}, // across year boundary
	}
	for _, tc := range cases {
		got := DaysBetween(date(t, tc.from), date(t, tc.to))
		if got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}
