package domain

import "time"

// ParseDate extracts the calendar date from an ISO-like value such as
// "2021-05-10T00:00:00.000Z". The second return is false when the value is
// missing or malformed; callers treat that as "unknown date" and keep the
// record (fail-open).
func ParseDate(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
