package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Today returns the current calendar date in UTC
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a time as a YYYY-MM-DD string
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
