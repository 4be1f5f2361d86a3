// Package schedule implements the due-date/due-hours engine: cadence
// computation for customer visits, dual-trigger reminder status for
// equipment, and the merged worklist ranking. Everything here is pure;
// persistence and transport live in the outer layers.
package schedule

import "time"

// dateLayout is the only calendar-date format crossing the boundary.
const dateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date (yyyy-MM-dd), normalized to
// midnight UTC. Unparseable input returns ok=false; callers must treat
// that as "not computable", never as due or not due.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as an ISO calendar date, dropping any time of day.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Midnight truncates t to its calendar date at midnight UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths performs calendar-month addition with the day-of-month
// clamped to the target month's last day on overflow, e.g.
// Jan 31 + 1 month = Feb 28 (29 in leap years). This differs from
// time.Time.AddDate, which normalizes Jan 31 + 1 month to Mar 2/3.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month()); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsOnOrBefore reports whether d falls on the same calendar day as ref
// or earlier, ignoring time of day. Equality counts: a service due
// "today" is due.
func IsOnOrBefore(d, ref time.Time) bool {
	return !Midnight(d).After(Midnight(ref))
}

// DaysBetween returns the signed calendar-day difference ref - d
// (negative when ref is in the past relative to d). Both operands are
// midnight-normalized in UTC, so daylight-saving shifts and fractional
// days cannot skew the count.
func DaysBetween(d, ref time.Time) int {
	return int(Midnight(ref).Sub(Midnight(d)).Hours() / 24)
}
