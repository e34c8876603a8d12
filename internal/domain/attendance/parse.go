package attendance

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate reads the calendar day from a date or datetime string.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(dateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

var clockLayouts = []string{"15:04:05", "15:04"}

var datetimeLayouts = []string{"2006-01-02 15:04:05", time.RFC3339Nano}

// ParseClock reads a clock-in or clock-out value. A bare time of day is placed
// on day. Empty or malformed values yield nil.
func ParseClock(day time.Time, s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := day.Date()
			v := time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
			return &v
		}
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
