package document

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() Report {
	return Report{
		Letterhead: Letterhead{Name: "THE GYM REPUBLIC", Address: "Cavite City"},
		Title:      "Inventory Report",
		Subtitle:   "All items",
		Summary: []Field{
			{Label: "Total Items", Value: "2"},
			{Label: "Stock Value", Value: "P 1,500.00"},
		},
		Tables: []Table{
			{
				Title:   "Supplements",
				Headers: []string{"Code", "Name", "Qty"},
				Rows:    [][]string{{"S-1", "Whey Protein", "10"}},
			},
			{
				Title:   "Equipment / Machines",
				Headers: []string{"Code", "Name", "Qty"},
			},
		},
		GeneratedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPDF, false},
		{"PDF", FormatPDF, false},
		{"csv", FormatCSV, false},
		{" xlsx ", FormatXLSX, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, ".xlsx", FormatXLSX.Extension())
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatPDF, sampleReport()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderPayslipPDF(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPayslipPDF(&buf, Payslip{
		Letterhead:   Letterhead{Name: "THE GYM REPUBLIC"},
		EmployeeName: "Juan Dela Cruz",
		EmployeeNo:   "EMP007",
		Period:       "March 1, 2025 - March 15, 2025",
		Attendance:   []Field{{Label: "Present", Value: "10"}},
		Earnings:     []Field{{Label: "Total Salary", Value: "P 5,000.00"}},
		Deductions:   []Field{{Label: "SSS", Value: "P 200.00"}},
		NetPay:       "P 4,800.00",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatCSV, sampleReport()))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Inventory Report"}, records[0])
	assert.Contains(t, records, []string{"Stock Value", "P 1,500.00"})
	assert.Contains(t, records, []string{"S-1", "Whey Protein", "10"})
	assert.Contains(t, records, []string{"Equipment / Machines"})
}

func TestRenderXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatXLSX, sampleReport()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Supplements", "Equipment - Machines"}, f.GetSheetList())

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Inventory Report", title)

	rows, err := f.GetRows("Supplements")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Code", "Name", "Qty"}, rows[0])
	assert.Equal(t, []string{"S-1", "Whey Protein", "10"}, rows[1])
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"Summary": true}

	assert.Equal(t, "Table 1", sheetName("  ", 0, used))
	assert.Equal(t, "Summary (2)", sheetName("Summary", 1, used))

	long := sheetName("Monthly Subscription Sales For The Whole Year", 2, used)
	assert.Len(t, []rune(long), maxSheetName)

	again := sheetName("Monthly Subscription Sales For The Whole Year", 3, used)
	assert.NotEqual(t, long, again)
	assert.Len(t, []rune(again), maxSheetName)
}

func TestRenderUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, Format("docx"), sampleReport()), ErrUnsupportedFormat)
}
