package attendance

import (
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
)

// FilterRecords keeps the records of filter.StaffID (or every staff when it is
// empty) whose date falls inside the inclusive [From, To] day range. When From
// is after To a warning is returned and the comparisons still run, so the
// result is simply empty.
func FilterRecords(records []attendance.Record, filter attendance.Filter) ([]attendance.Record, []string) {
	var warnings []string

	var from, to time.Time
	if filter.From != nil {
		from = calendarDay(*filter.From)
	}
	if filter.To != nil {
		to = calendarDay(*filter.To)
	}
	if filter.From != nil && filter.To != nil && from.After(to) {
		warnings = append(warnings, attendance.WarnInvertedRange)
	}

	out := make([]attendance.Record, 0, len(records))
	for _, r := range records {
		if filter.StaffID != "" && r.StaffID != filter.StaffID {
			continue
		}
		day := calendarDay(r.Date)
		if filter.From != nil && day.Before(from) {
			continue
		}
		if filter.To != nil && day.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, warnings
}

// calendarDay drops the time of day, keeping the date as written.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
