package attendance

import (
	"math"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
)

// Thresholds are the worked-hour boundaries of a labelled day.
type Thresholds struct {
	FullDayHours      float64
	HalfDayFloorHours float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{FullDayHours: 8, HalfDayFloorHours: 3}
}

// Classifier derives attendance labels and summaries. It is stateless and safe
// for concurrent use.
type Classifier struct {
	thresholds Thresholds
}

func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{thresholds: t}
}

func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// worked returns clock-out minus clock-in, which may be negative.
func worked(r attendance.Record) (time.Duration, bool) {
	if r.ClockIn == nil || r.ClockOut == nil {
		return 0, false
	}
	return r.ClockOut.Sub(*r.ClockIn), true
}

// HoursWorked returns the fractional hours between clock-in and clock-out.
func (c *Classifier) HoursWorked(r attendance.Record) (float64, bool) {
	d, ok := worked(r)
	return d.Hours(), ok
}

// Classify returns the recorded status when there is one. Otherwise a record
// missing either timestamp is unlabeled, and a complete one is labelled by
// the hours between its timestamps.
func (c *Classifier) Classify(r attendance.Record) attendance.Status {
	if r.Attendance.Labeled() {
		return r.Attendance
	}
	hours, ok := c.HoursWorked(r)
	if !ok {
		return attendance.StatusUnlabeled
	}
	switch {
	case hours >= c.thresholds.FullDayHours:
		return attendance.StatusPresent
	case hours >= c.thresholds.HalfDayFloorHours:
		return attendance.StatusHalfDay
	default:
		return attendance.StatusAbsent
	}
}

func (c *Classifier) ClassifyAll(records []attendance.Record) []attendance.ClassifiedRecord {
	out := make([]attendance.ClassifiedRecord, 0, len(records))
	for _, r := range records {
		cr := attendance.ClassifiedRecord{Record: r, Status: c.Classify(r)}
		if hours, ok := c.HoursWorked(r); ok {
			rounded := roundHours(hours)
			cr.HoursWorked = &rounded
		}
		out = append(out, cr)
	}
	return out
}

// Summarize counts labels and adds up worked hours. Unlabeled records are
// skipped entirely. Hours are summed as durations so the total does not
// depend on record order.
func (c *Classifier) Summarize(records []attendance.Record) attendance.Summary {
	var s attendance.Summary
	var total time.Duration

	for _, r := range records {
		status := c.Classify(r)
		switch status {
		case attendance.StatusPresent:
			s.PresentDays++
		case attendance.StatusHalfDay:
			s.HalfDays++
		case attendance.StatusAbsent:
			s.AbsentDays++
		case attendance.StatusLeave:
			s.LeaveDays++
		default:
			s.UnlabeledRecords++
			continue
		}

		if d, ok := worked(r); ok {
			total += d
			if d < 0 {
				s.InvertedRecords++
			}
		}
	}

	s.TotalHours = roundHours(total.Hours())
	return s
}

// roundHours rounds to two decimals, halves away from zero.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
