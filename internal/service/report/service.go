package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/payroll"
	"github.com/gymrepublic/gym-console/internal/domain/report"
	"github.com/gymrepublic/gym-console/internal/domain/sales"
	"github.com/gymrepublic/gym-console/internal/pkg/document"
	"github.com/gymrepublic/gym-console/internal/pkg/metrics"
	"github.com/gymrepublic/gym-console/internal/service/file"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
	inventoryService  inventory.InventoryService
	salesService      sales.SalesService
	payrollService    payroll.PayrollService
	fileService       file.FileService
	metrics           *metrics.Metrics
	letterhead        document.Letterhead
	now               func() time.Time
}

func NewReportService(
	attendanceService attendance.AttendanceService,
	inventoryService inventory.InventoryService,
	salesService sales.SalesService,
	payrollService payroll.PayrollService,
	fileService file.FileService,
	m *metrics.Metrics,
	letterhead document.Letterhead,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
		inventoryService:  inventoryService,
		salesService:      salesService,
		payrollService:    payrollService,
		fileService:       fileService,
		metrics:           m,
		letterhead:        letterhead,
		now:               time.Now,
	}
}

// AttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, sess auth.Session, filter attendance.Filter, format document.Format) (report.Document, error) {
	res, err := s.attendanceService.Query(ctx, sess, filter)
	if err != nil {
		return report.Document{}, err
	}

	rows := make([][]string, 0, len(res.Records))
	for _, r := range res.Records {
		rows = append(rows, []string{
			r.StaffName,
			attendance.FormatDate(r.Date),
			clockTime(r.ClockIn),
			clockTime(r.ClockOut),
			hours(r.HoursWorked),
			statusLabel(r.Status),
		})
	}

	sum := res.Summary
	summary := []document.Field{
		{Label: "Present Days", Value: strconv.Itoa(sum.PresentDays)},
		{Label: "Half Days", Value: strconv.Itoa(sum.HalfDays)},
		{Label: "Absent Days", Value: strconv.Itoa(sum.AbsentDays)},
		{Label: "Leave Days", Value: strconv.Itoa(sum.LeaveDays)},
		{Label: "Total Hours", Value: strconv.FormatFloat(sum.TotalHours, 'f', 2, 64)},
	}
	if sum.UnlabeledRecords > 0 {
		summary = append(summary, document.Field{Label: "Unlabeled Records", Value: strconv.Itoa(sum.UnlabeledRecords)})
	}
	if sum.InvertedRecords > 0 {
		summary = append(summary, document.Field{Label: "Clock-out Before Clock-in", Value: strconv.Itoa(sum.InvertedRecords)})
	}
	for _, w := range res.Warnings {
		summary = append(summary, document.Field{Label: "Warning", Value: w})
	}

	return s.render(ctx, report.KindAttendance, format, document.Report{
		Title:    "Attendance Report",
		Subtitle: attendanceSubtitle(filter),
		Summary:  summary,
		Tables: []document.Table{{
			Title:   "Attendance Records",
			Headers: []string{"Staff", "Date", "Clock In", "Clock Out", "Hours", "Status"},
			Rows:    rows,
			Widths:  []float64{45, 35, 22, 22, 20, 38},
		}},
	})
}

// InventoryReport implements report.ReportService.
func (s *ReportServiceImpl) InventoryReport(ctx context.Context, sess auth.Session, format document.Format) (report.Document, error) {
	sum, items, err := s.inventoryService.Summary(ctx, sess)
	if err != nil {
		return report.Document{}, err
	}

	summary := []document.Field{
		{Label: "Total Items", Value: strconv.Itoa(sum.TotalItems)},
		{Label: "Total Quantity", Value: strconv.Itoa(sum.TotalQuantity)},
		{Label: "Stock Value", Value: peso(sum.StockValue)},
	}
	for _, t := range []inventory.ItemType{inventory.TypeSupplement, inventory.TypeEquipment} {
		totals := sum.ByType[t]
		summary = append(summary, document.Field{
			Label: typeLabel(t) + " Items",
			Value: fmt.Sprintf("%d (qty %d, %s)", totals.Items, totals.Quantity, peso(totals.StockValue)),
		})
	}
	if sum.LowestStock != nil {
		summary = append(summary, document.Field{Label: "Lowest Stock", Value: fmt.Sprintf("%s (%d)", sum.LowestStock.Name, sum.LowestStock.Quantity)})
	}
	if sum.HighestStock != nil {
		summary = append(summary, document.Field{Label: "Highest Stock", Value: fmt.Sprintf("%s (%d)", sum.HighestStock.Name, sum.HighestStock.Quantity)})
	}

	tableTitle := map[inventory.ItemType]string{
		inventory.TypeSupplement: "Supplements",
		inventory.TypeEquipment:  "Equipment",
	}
	var tables []document.Table
	for _, t := range []inventory.ItemType{inventory.TypeSupplement, inventory.TypeEquipment} {
		var rows [][]string
		for _, item := range items {
			if item.Type != t {
				continue
			}
			rows = append(rows, []string{
				item.ItemCode,
				item.Name,
				item.ShortDescription,
				strconv.Itoa(item.Quantity),
				peso(item.Price),
				peso(item.StockValue()),
			})
		}
		tables = append(tables, document.Table{
			Title:   tableTitle[t],
			Headers: []string{"Code", "Name", "Description", "Qty", "Price", "Value"},
			Rows:    rows,
			Widths:  []float64{22, 38, 52, 14, 28, 28},
		})
	}

	return s.render(ctx, report.KindInventory, format, document.Report{
		Title:   "Inventory Report",
		Summary: summary,
		Tables:  tables,
	})
}

// SalesReport implements report.ReportService.
func (s *ReportServiceImpl) SalesReport(ctx context.Context, sess auth.Session, format document.Format) (report.Document, error) {
	o, err := s.salesService.Overview(ctx, sess)
	if err != nil {
		return report.Document{}, err
	}

	membershipRows := func(list []sales.Membership) [][]string {
		rows := make([][]string, 0, len(list))
		for _, m := range list {
			rows = append(rows, []string{
				m.TransactionCode,
				strings.Join(m.Services(), ", "),
				dateTime(m.CreatedAt),
				peso(m.TotalPrice),
			})
		}
		return rows
	}
	productRows := make([][]string, 0, len(o.Products))
	for _, p := range o.Products {
		productRows = append(productRows, []string{p.TransactionCode, dateTime(p.CreatedAt), peso(p.TotalAmount)})
	}

	membershipHeaders := []string{"Transaction", "Services", "Date", "Amount"}
	membershipWidths := []float64{35, 75, 42, 30}

	return s.render(ctx, report.KindSales, format, document.Report{
		Title: "Sales Report",
		Summary: []document.Field{
			{Label: "Monthly Subscriptions", Value: peso(o.MonthlyTotal)},
			{Label: "Daily Sessions", Value: peso(o.DailyTotal)},
			{Label: "Product Sales", Value: peso(o.ProductTotal)},
			{Label: "Grand Total", Value: peso(o.GrandTotal())},
		},
		Tables: []document.Table{
			{Title: "Monthly Subscription Sales", Headers: membershipHeaders, Rows: membershipRows(o.Monthly), Widths: membershipWidths},
			{Title: "Daily Sales", Headers: membershipHeaders, Rows: membershipRows(o.Daily), Widths: membershipWidths},
			{Title: "Product Sales", Headers: []string{"Transaction", "Date", "Amount"}, Rows: productRows, Widths: []float64{60, 72, 50}},
		},
	})
}

// Payslip implements report.ReportService. Hours worked come from the
// attendance records of the pay period; a failure to load them leaves the
// line out rather than failing the payslip.
func (s *ReportServiceImpl) Payslip(ctx context.Context, sess auth.Session, payrollID string) (report.Document, error) {
	p, err := s.payrollService.Get(ctx, sess, payrollID)
	if err != nil {
		return report.Document{}, err
	}

	attendanceFields := []document.Field{
		{Label: "Present Days", Value: strconv.Itoa(p.PresentDays)},
		{Label: "Absents", Value: strconv.Itoa(p.Absents)},
		{Label: "Half Days", Value: strconv.Itoa(p.HalfDays)},
		{Label: "Whole Days", Value: strconv.Itoa(p.WholeDays)},
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() {
		from, to := p.StartDate, p.EndDate
		res, err := s.attendanceService.Query(ctx, sess, attendance.Filter{StaffID: p.StaffID, From: &from, To: &to})
		if err != nil {
			slog.Warn("payslip without hours worked", "payroll_id", p.ID, "error", err)
		} else {
			attendanceFields = append(attendanceFields, document.Field{
				Label: "Hours Worked",
				Value: strconv.FormatFloat(res.Summary.TotalHours, 'f', 2, 64),
			})
		}
	}

	now := s.now()
	slip := document.Payslip{
		Letterhead:   s.letterhead,
		EmployeeName: p.StaffName,
		EmployeeNo:   p.EmployeeNo(),
		Period:       fmt.Sprintf("%s - %s", attendance.FormatDate(p.StartDate), attendance.FormatDate(p.EndDate)),
		Attendance:   attendanceFields,
		Earnings: []document.Field{
			{Label: "Salary Rate", Value: peso(p.SalaryRate)},
			{Label: "Whole Day Pay", Value: peso(p.WholeDayPay)},
			{Label: "Half Day Pay", Value: peso(p.HalfDayPay)},
			{Label: "Overtime", Value: peso(p.OverTime)},
			{Label: "Yearly Bonus", Value: peso(p.YearlyBonus)},
			{Label: "Sales Commission", Value: peso(p.SalesCommission)},
			{Label: "Incentives", Value: peso(p.Incentives)},
			{Label: "Total Salary", Value: peso(p.TotalSalary)},
		},
		Deductions: []document.Field{
			{Label: "SSS", Value: peso(p.SSS)},
			{Label: "PhilHealth", Value: peso(p.PhilHealth)},
			{Label: "Pag-IBIG", Value: peso(p.PagIBIG)},
			{Label: "Total Deductions", Value: peso(p.TotalDeductions)},
		},
		NetPay:      peso(p.FinalSalary),
		GeneratedAt: now,
	}

	var buf bytes.Buffer
	if err := document.RenderPayslipPDF(&buf, slip); err != nil {
		return report.Document{}, fmt.Errorf("failed to render payslip: %w", err)
	}

	filename := fmt.Sprintf("payslip-%s-%s.pdf", p.EmployeeNo(), p.PayDate.Format("2006-01-02"))
	return s.store(ctx, report.KindPayslip, document.FormatPDF, filename, buf.Bytes(), now)
}

func (s *ReportServiceImpl) render(ctx context.Context, kind report.Kind, format document.Format, r document.Report) (report.Document, error) {
	now := s.now()
	r.Letterhead = s.letterhead
	r.GeneratedAt = now

	var buf bytes.Buffer
	if err := document.Render(&buf, format, r); err != nil {
		return report.Document{}, fmt.Errorf("failed to render %s report: %w", kind, err)
	}

	filename := fmt.Sprintf("%s-report-%s%s", kind, now.Format("20060102-150405"), format.Extension())
	return s.store(ctx, kind, format, filename, buf.Bytes(), now)
}

// store keeps a copy of the document for later download. A storage failure
// is logged and the document is still returned without a URL.
func (s *ReportServiceImpl) store(ctx context.Context, kind report.Kind, format document.Format, filename string, data []byte, now time.Time) (report.Document, error) {
	doc := report.Document{
		Kind:        kind,
		Filename:    filename,
		ContentType: format.ContentType(),
		Data:        data,
		GeneratedAt: now,
	}

	if s.fileService != nil {
		_, url, err := s.fileService.SaveDocument(ctx, string(kind), format.Extension(), doc.ContentType, data, now)
		if err != nil {
			slog.Error("failed to store document", "kind", kind, "error", err)
		} else {
			doc.URL = url
		}
	}

	s.metrics.DocumentGenerated(string(kind), string(format))
	return doc, nil
}

func clockTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04:05")
}

func hours(h *float64) string {
	if h == nil {
		return ""
	}
	return strconv.FormatFloat(*h, 'f', 2, 64)
}

func statusLabel(s attendance.Status) string {
	switch s {
	case attendance.StatusPresent:
		return "Present"
	case attendance.StatusHalfDay:
		return "Half Day"
	case attendance.StatusAbsent:
		return "Absent"
	case attendance.StatusLeave:
		return "Leave"
	}
	return "Unlabeled"
}

func typeLabel(t inventory.ItemType) string {
	switch t {
	case inventory.TypeSupplement:
		return "Supplement"
	case inventory.TypeEquipment:
		return "Equipment"
	}
	return string(t)
}

func dateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 15:04")
}

func attendanceSubtitle(f attendance.Filter) string {
	var parts []string
	if f.StaffID != "" {
		parts = append(parts, "Staff #"+f.StaffID)
	}
	switch {
	case f.From != nil && f.To != nil:
		parts = append(parts, fmt.Sprintf("%s to %s", attendance.FormatDate(*f.From), attendance.FormatDate(*f.To)))
	case f.From != nil:
		parts = append(parts, "From "+attendance.FormatDate(*f.From))
	case f.To != nil:
		parts = append(parts, "Until "+attendance.FormatDate(*f.To))
	}
	if len(parts) == 0 {
		return "All staff, all dates"
	}
	return strings.Join(parts, ", ")
}

// peso formats an amount as "P 1,234.56".
func peso(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%sP %s.%s", sign, b.String(), frac)
}
