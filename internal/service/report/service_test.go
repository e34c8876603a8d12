package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/payroll"
	"github.com/gymrepublic/gym-console/internal/domain/report"
	"github.com/gymrepublic/gym-console/internal/domain/sales"
	"github.com/gymrepublic/gym-console/internal/pkg/document"
	"github.com/gymrepublic/gym-console/internal/pkg/storage"
	"github.com/gymrepublic/gym-console/internal/service/file"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeAttendance struct {
	attendance.AttendanceService
	result  attendance.Result
	err     error
	filters []attendance.Filter
}

func (f *fakeAttendance) Query(_ context.Context, _ auth.Session, filter attendance.Filter) (attendance.Result, error) {
	f.filters = append(f.filters, filter)
	return f.result, f.err
}

type fakeInventory struct {
	inventory.InventoryService
	items []inventory.Item
}

func (f *fakeInventory) Summary(context.Context, auth.Session) (inventory.Summary, []inventory.Item, error) {
	sum := inventory.Summary{
		TotalItems:    len(f.items),
		TotalQuantity: 3,
		StockValue:    decimal.RequireFromString("3751.50"),
		ByType: map[inventory.ItemType]inventory.TypeTotals{
			inventory.TypeSupplement: {Items: 1, Quantity: 3, StockValue: decimal.RequireFromString("3751.50")},
		},
	}
	return sum, f.items, nil
}

type fakeSales struct {
	sales.SalesService
	overview sales.Overview
}

func (f *fakeSales) Overview(context.Context, auth.Session) (sales.Overview, error) {
	return f.overview, nil
}

type fakePayroll struct {
	payroll.PayrollService
	p payroll.Payroll
}

func (f *fakePayroll) Get(_ context.Context, _ auth.Session, id string) (payroll.Payroll, error) {
	if id != f.p.ID {
		return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
	}
	return f.p, nil
}

func newTestService(t *testing.T, att *fakeAttendance) *ReportServiceImpl {
	t.Helper()
	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/exports")
	require.NoError(t, err)

	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	svc := NewReportService(
		att,
		&fakeInventory{items: []inventory.Item{{ID: "1", ItemCode: "SUP-01", Name: "Whey", Type: inventory.TypeSupplement, Quantity: 3, Price: decimal.RequireFromString("1250.50")}}},
		&fakeSales{overview: sales.Overview{
			Monthly:      []sales.Membership{{TransactionCode: "M-1", TotalPrice: decimal.NewFromInt(1500), CreatedAt: day, Lines: []sales.Line{{ExerciseName: "Boxing", Tag: sales.TagMonthly}}}},
			MonthlyTotal: decimal.NewFromInt(1500),
		}},
		&fakePayroll{p: payroll.Payroll{
			ID: "3", StaffID: "7", StaffName: "Ana Cruz",
			StartDate: day, EndDate: day.AddDate(0, 0, 14), PayDate: day.AddDate(0, 0, 15),
			FinalSalary: decimal.RequireFromString("12345.6"),
		}},
		file.NewFileService(local),
		nil,
		document.Letterhead{Name: "Gym Republic", Address: "Cebu City"},
	)
	impl := svc.(*ReportServiceImpl)
	impl.now = func() time.Time { return time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC) }
	return impl
}

func TestReportService_AttendanceReport(t *testing.T) {
	in := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	h := 9.0
	att := &fakeAttendance{result: attendance.Result{
		Records: []attendance.ClassifiedRecord{{
			Record:      attendance.Record{ID: "1", StaffID: "7", StaffName: "Ana Cruz", Date: in.Truncate(24 * time.Hour), ClockIn: &in, ClockOut: &out},
			Status:      attendance.StatusPresent,
			HoursWorked: &h,
		}},
		Summary:  attendance.Summary{PresentDays: 1, TotalHours: 9},
		Warnings: []string{attendance.WarnInvertedRange},
	}}
	svc := newTestService(t, att)

	doc, err := svc.AttendanceReport(context.Background(), auth.Session{UserID: "1"}, attendance.Filter{StaffID: "7"}, document.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, report.KindAttendance, doc.Kind)
	assert.Equal(t, "attendance-report-20240320-100000.csv", doc.Filename)
	assert.Equal(t, "text/csv", doc.ContentType)
	assert.Contains(t, doc.URL, "/exports/exports/attendance/2024-03-20/")
	assert.Contains(t, string(doc.Data), "Ana Cruz")
	assert.Contains(t, string(doc.Data), "Present")
	assert.Contains(t, string(doc.Data), "From date cannot be after To date")
	assert.Contains(t, string(doc.Data), "Staff #7")
}

func TestReportService_InventoryReportXLSX(t *testing.T) {
	svc := newTestService(t, &fakeAttendance{})

	doc, err := svc.InventoryReport(context.Background(), auth.Session{}, document.FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Supplements", "Equipment"}, f.GetSheetList())

	value, err := f.GetCellValue("Supplements", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Whey", value)
}

func TestReportService_SalesReportPDF(t *testing.T) {
	svc := newTestService(t, &fakeAttendance{})

	doc, err := svc.SalesReport(context.Background(), auth.Session{}, document.FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
	assert.Equal(t, "application/pdf", doc.ContentType)
}

func TestReportService_Payslip(t *testing.T) {
	ctx := context.Background()

	t.Run("queries hours over the pay period", func(t *testing.T) {
		att := &fakeAttendance{result: attendance.Result{Summary: attendance.Summary{TotalHours: 72.5}}}
		svc := newTestService(t, att)

		doc, err := svc.Payslip(ctx, auth.Session{UserID: "1"}, "3")
		require.NoError(t, err)
		assert.Equal(t, "payslip-EMP007-2024-03-19.pdf", doc.Filename)
		assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))

		require.Len(t, att.filters, 1)
		f := att.filters[0]
		assert.Equal(t, "7", f.StaffID)
		require.NotNil(t, f.From)
		require.NotNil(t, f.To)
		assert.Equal(t, 14*24*time.Hour, f.To.Sub(*f.From))
	})

	t.Run("attendance failure still renders", func(t *testing.T) {
		svc := newTestService(t, &fakeAttendance{err: errors.New("down")})
		doc, err := svc.Payslip(ctx, auth.Session{}, "3")
		require.NoError(t, err)
		assert.NotEmpty(t, doc.Data)
	})

	t.Run("unknown payroll", func(t *testing.T) {
		svc := newTestService(t, &fakeAttendance{})
		_, err := svc.Payslip(ctx, auth.Session{}, "99")
		assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
	})
}

func TestPeso(t *testing.T) {
	assert.Equal(t, "P 0.00", peso(decimal.Zero))
	assert.Equal(t, "P 999.50", peso(decimal.RequireFromString("999.5")))
	assert.Equal(t, "P 1,234.56", peso(decimal.RequireFromString("1234.555")))
	assert.Equal(t, "P 12,345,678.00", peso(decimal.NewFromInt(12345678)))
	assert.Equal(t, "-P 50.00", peso(decimal.NewFromInt(-50)))
}
