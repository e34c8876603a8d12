package document

import (
	"io"
	"time"
)

// Payslip is the printable view of one employee's pay period.
type Payslip struct {
	Letterhead   Letterhead
	EmployeeName string
	EmployeeNo   string
	Period       string
	Attendance   []Field
	Earnings     []Field
	Deductions   []Field
	NetPay       string
	GeneratedAt  time.Time
}

func RenderPayslipPDF(w io.Writer, p Payslip) error {
	pdf := newPDF("Pay Slip")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	const columnWidth = 120.0
	x := pdfMargin + 6

	writeLetterhead(pdf, tr, p.Letterhead)

	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 8, "PAY SLIP", "", 1, "C", false, 0, "")
	rule := func() {
		y := pdf.GetY() + 2
		pdf.Line(x, y, x+columnWidth, y)
		pdf.Ln(5)
	}
	rule()

	pdf.SetFont(pdfFont, "", 10)
	for _, f := range []Field{
		{Label: "Employee:", Value: p.EmployeeName},
		{Label: "Employee No.#:", Value: p.EmployeeNo},
		{Label: "Payroll Period:", Value: p.Period},
	} {
		pdf.SetX(x)
		pdf.CellFormat(40, 6, tr(f.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidth-40, 6, tr(orDash(f.Value)), "", 1, "L", false, 0, "")
	}
	rule()

	section := func(title, valueHeader string, fields []Field) {
		pdf.SetX(x)
		pdf.SetFont(pdfFont, "B", 10)
		pdf.CellFormat(columnWidth, 6, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont(pdfFont, "I", 9)
		pdf.SetX(x)
		pdf.CellFormat(columnWidth/2, 6, "Type", "", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidth/2, 6, tr(valueHeader), "", 1, "R", false, 0, "")
		pdf.SetFont(pdfFont, "", 10)
		for _, f := range fields {
			pdf.SetX(x)
			pdf.CellFormat(columnWidth/2, 6, tr(f.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(columnWidth/2, 6, tr(f.Value), "", 1, "R", false, 0, "")
		}
		rule()
	}
	section("Attendance Summary", "Days", p.Attendance)
	section("Salary Breakdown", "Amount", p.Earnings)
	section("Deductions", "Amount", p.Deductions)

	pdf.Ln(4)
	pdf.SetX(x)
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(columnWidth, 8, tr("NET PAY: "+p.NetPay), "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont(pdfFont, "I", 8)
	pdf.CellFormat(0, 6, generatedLine(p.GeneratedAt), "", 1, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
