package postgresql_test

import (
	"testing"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_ListAttendance(t *testing.T) {
	ctx, db, tx := newTestTx(t)

	_, err := tx.Exec(ctx, `
		INSERT INTO staffs (id, fullname) VALUES (7, 'Ana Cruz');
		INSERT INTO attendances (id, staff_id, date, clock_in_time, clock_out_time, attendance) VALUES
			(1, 7, '2024-03-04', '08:00:00', '17:00:00', NULL),
			(2, 7, '2024-03-05', NULL, NULL, 'leave'),
			(3, 8, '2024-03-06', '09:00:00', NULL, 'Half Day');
	`)
	require.NoError(t, err)

	repo := postgresql.NewAttendanceRepository(db)
	records, err := repo.ListAttendance(postgresql.WithTx(ctx, tx), auth.Session{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	byID := map[string]attendance.Record{}
	for _, r := range records {
		byID[r.ID] = r
	}

	worked := byID["1"]
	assert.Equal(t, "Ana Cruz", worked.StaffName)
	require.NotNil(t, worked.ClockIn)
	require.NotNil(t, worked.ClockOut)
	assert.Equal(t, 9*time.Hour, worked.ClockOut.Sub(*worked.ClockIn))
	assert.Equal(t, attendance.StatusUnlabeled, worked.Attendance)

	assert.Equal(t, attendance.StatusLeave, byID["2"].Attendance)
	assert.Nil(t, byID["2"].ClockIn)

	orphan := byID["3"]
	assert.Empty(t, orphan.StaffName)
	assert.Equal(t, attendance.StatusHalfDay, orphan.Attendance)
	assert.Nil(t, orphan.ClockOut)
}
