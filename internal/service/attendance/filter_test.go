package attendance

import (
	"testing"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleRecords() []attendance.Record {
	return []attendance.Record{
		{ID: "1", StaffID: "1", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", StaffID: "2", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "3", StaffID: "1", Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "4", StaffID: "1", Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(records []attendance.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterRecords(t *testing.T) {
	tests := []struct {
		name   string
		filter attendance.Filter
		want   []string
	}{
		{"no constraints", attendance.Filter{}, []string{"1", "2", "3", "4"}},
		{"by staff", attendance.Filter{StaffID: "1"}, []string{"1", "3", "4"}},
		{"from is inclusive", attendance.Filter{From: dayPtr(2025, 3, 3)}, []string{"3", "4"}},
		{"to is inclusive", attendance.Filter{To: dayPtr(2025, 3, 2)}, []string{"1", "2"}},
		{"staff and range", attendance.Filter{StaffID: "1", From: dayPtr(2025, 3, 2), To: dayPtr(2025, 3, 4)}, []string{"3"}},
		{"unknown staff", attendance.Filter{StaffID: "99"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := FilterRecords(sampleRecords(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
			assert.Empty(t, warnings)
		})
	}
}

func TestFilterRecords_IgnoresTimeOfDay(t *testing.T) {
	records := []attendance.Record{
		{ID: "late", StaffID: "1", Date: time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)},
	}
	from := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC)

	got, warnings := FilterRecords(records, attendance.Filter{From: &from, To: &to})
	assert.Equal(t, []string{"late"}, ids(got))
	assert.Empty(t, warnings)
}

func TestFilterRecords_InvertedRangeWarns(t *testing.T) {
	got, warnings := FilterRecords(sampleRecords(), attendance.Filter{
		From: dayPtr(2025, 3, 5),
		To:   dayPtr(2025, 3, 1),
	})
	assert.Equal(t, []string{attendance.WarnInvertedRange}, warnings)
	assert.Empty(t, got)
}

func TestFilterRecords_Idempotent(t *testing.T) {
	filters := []attendance.Filter{
		{},
		{StaffID: "1"},
		{StaffID: "1", From: dayPtr(2025, 3, 2), To: dayPtr(2025, 3, 5)},
		{From: dayPtr(2025, 3, 5), To: dayPtr(2025, 3, 1)},
	}
	for _, f := range filters {
		once, _ := FilterRecords(sampleRecords(), f)
		twice, _ := FilterRecords(once, f)
		assert.Equal(t, once, twice)
	}
}
