package gymapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type AttendanceRepository struct {
	client *Client
}

func NewAttendanceRepository(client *Client) *AttendanceRepository {
	return &AttendanceRepository{client: client}
}

// attendanceRow accepts both clock_in_time/clock_out_time and the older in/out names.
type attendanceRow struct {
	ID           flexID  `json:"id"`
	StaffID      flexID  `json:"staff_id"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time"`
	In           *string `json:"in"`
	Out          *string `json:"out"`
	Attendance   *string `json:"attendance"`
	Staff        *struct {
		FullName string `json:"fullname"`
	} `json:"staff"`
}

func (r attendanceRow) toRecord() (attendance.Record, bool) {
	day, ok := attendance.ParseDate(r.Date)
	if !ok {
		return attendance.Record{}, false
	}

	in, out := r.ClockInTime, r.ClockOutTime
	if in == nil {
		in = r.In
	}
	if out == nil {
		out = r.Out
	}

	rec := attendance.Record{
		ID:         string(r.ID),
		StaffID:    string(r.StaffID),
		Date:       day,
		ClockIn:    attendance.ParseClock(day, str(in)),
		ClockOut:   attendance.ParseClock(day, str(out)),
		Attendance: attendance.ParseStatus(str(r.Attendance)),
	}
	if r.Staff != nil {
		rec.StaffName = r.Staff.FullName
	}
	return rec, true
}

// ListAttendance implements attendance.Reader.
func (r *AttendanceRepository) ListAttendance(ctx context.Context, sess auth.Session) ([]attendance.Record, error) {
	var rows []attendanceRow
	if _, err := r.client.do(ctx, &sess, "attendance.list", http.MethodGet, "/api/admin/show-attendance-list", nil, nil, &rows); err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		rec, ok := row.toRecord()
		if !ok {
			slog.Warn("skipping attendance row with unreadable date", "id", string(row.ID), "date", row.Date)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Clock implements attendance.Gateway.
func (r *AttendanceRepository) Clock(ctx context.Context, sess auth.Session, cmd attendance.ClockCommand) error {
	body := map[string]interface{}{
		"staff_id":   idValue(cmd.StaffID),
		"date":       cmd.At.Format("2006-01-02"),
		"clock_type": string(cmd.Type),
		"time":       cmd.At.Format("15:04:05"),
	}
	_, err := r.client.do(ctx, &sess, "attendance.clock", http.MethodPost, "/api/admin/clock", nil, body, nil)
	return err
}

// Mark implements attendance.Gateway.
func (r *AttendanceRepository) Mark(ctx context.Context, sess auth.Session, cmd attendance.MarkCommand) error {
	body := map[string]interface{}{
		"staff_id":   idValue(cmd.StaffID),
		"date":       cmd.Date.Format("2006-01-02"),
		"in":         nil,
		"out":        nil,
		"attendance": string(cmd.Status),
	}
	_, err := r.client.do(ctx, &sess, "attendance.mark", http.MethodPost, "/api/admin/store-attendance/"+pathID(cmd.StaffID), nil, body, nil)
	return err
}
