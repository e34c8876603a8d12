package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository reads attendance straight from a replica of the gym
// database. Clock and mark actions still go through the gym API.
func NewAttendanceRepository(db *database.DB) attendance.Reader {
	return &attendanceRepository{db: db}
}

// ListAttendance implements attendance.Reader.
func (a *attendanceRepository) ListAttendance(ctx context.Context, _ auth.Session) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id::text, a.staff_id::text, COALESCE(s.fullname, ''),
			   a.date::text, COALESCE(a.clock_in_time::text, ''), COALESCE(a.clock_out_time::text, ''),
			   COALESCE(a.attendance, '')
		FROM attendances a
		LEFT JOIN staffs s ON s.id = a.staff_id
		ORDER BY a.date DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var (
			rec                     attendance.Record
			date, clockIn, clockOut string
			status                  string
		)
		if err := rows.Scan(&rec.ID, &rec.StaffID, &rec.StaffName, &date, &clockIn, &clockOut, &status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}

		day, ok := attendance.ParseDate(date)
		if !ok {
			slog.Warn("skipping attendance row with unreadable date", "id", rec.ID, "date", date)
			continue
		}
		rec.Date = day
		rec.ClockIn = attendance.ParseClock(day, clockIn)
		rec.ClockOut = attendance.ParseClock(day, clockOut)
		rec.Attendance = attendance.ParseStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}
