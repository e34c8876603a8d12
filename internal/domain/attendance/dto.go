package attendance

import (
	"time"

	"github.com/gymrepublic/gym-console/internal/pkg/validator"
)

type QueryRequest struct {
	StaffID string
	From    string
	To      string
}

// Validate checks the query parameters and converts them to a Filter. An
// inverted range is not an error here.
func (r *QueryRequest) Validate() (Filter, error) {
	var errs validator.ValidationErrors
	var f Filter

	if !validator.IsEmpty(r.StaffID) {
		if _, ok := validator.IsValidID(r.StaffID); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "staff_id",
				Message: "staff_id must be a positive integer",
			})
		}
		f.StaffID = r.StaffID
	}
	if !validator.IsEmpty(r.From) {
		if d, ok := validator.IsValidDate(r.From); ok {
			f.From = &d
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsEmpty(r.To) {
		if d, ok := validator.IsValidDate(r.To); ok {
			f.To = &d
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return Filter{}, errs
	}
	return f, nil
}

type ClockRequest struct {
	StaffID   string `json:"staff_id"`
	ClockType string `json:"clock_type"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidID(r.StaffID); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required and must be a positive integer",
		})
	}
	if t := ClockType(r.ClockType); t != ClockIn && t != ClockOut {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_type",
			Message: ErrInvalidClockType.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidID(r.StaffID); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required and must be a positive integer",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if s := ParseStatus(r.Status); s != StatusAbsent && s != StatusLeave {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidMarkStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string   `json:"id"`
	StaffID      string   `json:"staff_id"`
	StaffName    string   `json:"staff_name"`
	Date         string   `json:"date"`
	ClockInTime  *string  `json:"clock_in_time"`
	ClockOutTime *string  `json:"clock_out_time"`
	Attendance   string   `json:"attendance"`
	Status       string   `json:"status"`
	HoursWorked  *float64 `json:"hours_worked"`
}

type SummaryResponse struct {
	PresentDays      int     `json:"present_days"`
	HalfDays         int     `json:"half_days"`
	AbsentDays       int     `json:"absent_days"`
	LeaveDays        int     `json:"leave_days"`
	TotalHours       float64 `json:"total_hours"`
	UnlabeledRecords int     `json:"unlabeled_records"`
	InvertedRecords  int     `json:"inverted_records"`
}

type QueryResponse struct {
	Records  []RecordResponse `json:"records"`
	Summary  SummaryResponse  `json:"summary"`
	Warnings []string         `json:"warnings"`
}

type SummaryOnlyResponse struct {
	Summary  SummaryResponse `json:"summary"`
	Warnings []string        `json:"warnings"`
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		PresentDays:      s.PresentDays,
		HalfDays:         s.HalfDays,
		AbsentDays:       s.AbsentDays,
		LeaveDays:        s.LeaveDays,
		TotalHours:       s.TotalHours,
		UnlabeledRecords: s.UnlabeledRecords,
		InvertedRecords:  s.InvertedRecords,
	}
}

func ToRecordResponse(r ClassifiedRecord) RecordResponse {
	resp := RecordResponse{
		ID:          r.ID,
		StaffID:     r.StaffID,
		StaffName:   r.StaffName,
		Date:        r.Date.Format("2006-01-02"),
		Attendance:  string(r.Attendance),
		Status:      string(r.Status),
		HoursWorked: r.HoursWorked,
	}
	if r.ClockIn != nil {
		s := r.ClockIn.Format("15:04:05")
		resp.ClockInTime = &s
	}
	if r.ClockOut != nil {
		s := r.ClockOut.Format("15:04:05")
		resp.ClockOutTime = &s
	}
	return resp
}

func ToQueryResponse(res Result) QueryResponse {
	records := make([]RecordResponse, 0, len(res.Records))
	for _, r := range res.Records {
		records = append(records, ToRecordResponse(r))
	}
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return QueryResponse{
		Records:  records,
		Summary:  ToSummaryResponse(res.Summary),
		Warnings: warnings,
	}
}

// FormatDate renders a calendar day the way the console displays it.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
