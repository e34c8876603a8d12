package attendance

import (
	"strings"
	"time"
)

// Status is the attendance label of one staff day.
type Status string

const (
	StatusUnlabeled Status = ""
	StatusPresent   Status = "present"
	StatusHalfDay   Status = "halfday"
	StatusAbsent    Status = "absent"
	StatusLeave     Status = "leave"
)

// ParseStatus maps a recorded status string to a Status. Anything that is not
// one of the four labels is treated as unlabeled.
func ParseStatus(s string) Status {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPresent, StatusHalfDay, StatusAbsent, StatusLeave:
		return st
	case "half_day", "half-day", "half day":
		return StatusHalfDay
	}
	return StatusUnlabeled
}

func (s Status) Labeled() bool {
	return s != StatusUnlabeled
}

// Record is one staff day as stored by the gym API.
type Record struct {
	ID        string
	StaffID   string
	StaffName string
	// Date is the calendar day at UTC midnight.
	Date     time.Time
	ClockIn  *time.Time
	ClockOut *time.Time
	// Attendance is the authoritative label set by an administrative action.
	Attendance Status
}

// ClassifiedRecord is a record with its derived label and worked hours.
type ClassifiedRecord struct {
	Record
	Status Status
	// HoursWorked is nil unless both timestamps are present.
	HoursWorked *float64
}

// Summary totals a set of records. Unlabeled records contribute to no
// counter and no hours.
type Summary struct {
	PresentDays int
	HalfDays    int
	AbsentDays  int
	LeaveDays   int
	TotalHours  float64

	UnlabeledRecords int
	// InvertedRecords counts labeled records whose clock-out precedes clock-in.
	InvertedRecords int
}

func (s Summary) LabeledRecords() int {
	return s.PresentDays + s.HalfDays + s.AbsentDays + s.LeaveDays
}

// Filter selects records by staff and inclusive calendar-day range.
// Zero values mean "no constraint".
type Filter struct {
	StaffID string
	From    *time.Time
	To      *time.Time
}

// Result is what the console shows for one attendance query.
type Result struct {
	Records  []ClassifiedRecord
	Summary  Summary
	Warnings []string
}

type ClockType string

const (
	ClockIn  ClockType = "in"
	ClockOut ClockType = "out"
)

// ClockCommand asks the gym API to stamp a clock-in or clock-out.
type ClockCommand struct {
	StaffID string
	Type    ClockType
	At      time.Time
}

// MarkCommand records an administrative absence or leave for a day.
type MarkCommand struct {
	StaffID string
	Date    time.Time
	Status  Status
}
