// Package document renders payslips and reports as PDF, CSV or XLSX.
package document

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat parses a format name. The empty string selects PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/pdf"
	}
}

func (f Format) Extension() string {
	return "." + string(f)
}

// Letterhead is printed at the top of every document.
type Letterhead struct {
	Name    string
	Address string
}

type Field struct {
	Label string
	Value string
}

type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// Widths are PDF column widths in millimetres; empty means equal columns.
	Widths []float64
}

type Report struct {
	Letterhead  Letterhead
	Title       string
	Subtitle    string
	Summary     []Field
	Tables      []Table
	GeneratedAt time.Time
}

// Render writes r to w in the given format.
func Render(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatPDF:
		return RenderPDF(w, r)
	case FormatCSV:
		return RenderCSV(w, r)
	case FormatXLSX:
		return RenderXLSX(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func generatedLine(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return "Generated on " + t.Format("02 January 2006 15:04:05")
}
