package document

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin = 14.0
	pdfFont   = "Helvetica"
)

func newPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	return pdf
}

// RenderPDF lays out a report as letterhead, title, summary block and one table per section.
func RenderPDF(w io.Writer, r Report) error {
	pdf := newPDF(r.Title)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*pdfMargin

	writeLetterhead(pdf, tr, r.Letterhead)

	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(0, 10, tr(r.Title), "", 1, "C", false, 0, "")
	if r.Subtitle != "" {
		pdf.SetFont(pdfFont, "", 10)
		pdf.CellFormat(0, 6, tr(r.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	if len(r.Summary) > 0 {
		pdf.SetFont(pdfFont, "B", 12)
		pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
		pdf.SetFont(pdfFont, "", 10)
		for _, f := range r.Summary {
			pdf.CellFormat(70, 6, tr(f.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(f.Value), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	for _, t := range r.Tables {
		writeTable(pdf, tr, t, usable)
		pdf.Ln(6)
	}

	pdf.SetFont(pdfFont, "I", 8)
	pdf.CellFormat(0, 8, generatedLine(r.GeneratedAt), "", 1, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func writeLetterhead(pdf *gofpdf.Fpdf, tr func(string) string, lh Letterhead) {
	if lh.Name == "" && lh.Address == "" {
		return
	}
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 7, tr(lh.Name), "", 1, "C", false, 0, "")
	if lh.Address != "" {
		pdf.SetFont(pdfFont, "", 9)
		pdf.CellFormat(0, 5, tr(lh.Address), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
}

func writeTable(pdf *gofpdf.Fpdf, tr func(string) string, t Table, usable float64) {
	if t.Title != "" {
		pdf.SetFont(pdfFont, "B", 12)
		pdf.CellFormat(0, 8, tr(t.Title), "", 1, "L", false, 0, "")
	}

	widths := columnWidths(t, usable)

	pdf.SetFont(pdfFont, "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range t.Headers {
		pdf.CellFormat(widths[i], 7, fit(pdf, tr(h), widths[i]), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(pdfFont, "", 9)
	pdf.SetTextColor(0, 0, 0)
	if len(t.Rows) == 0 {
		pdf.CellFormat(usable, 7, "No records", "1", 1, "C", false, 0, "")
		return
	}
	for _, row := range t.Rows {
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(widths[i], 6, fit(pdf, tr(cell), widths[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func columnWidths(t Table, usable float64) []float64 {
	n := len(t.Headers)
	if n == 0 {
		return nil
	}
	if len(t.Widths) == n {
		return t.Widths
	}
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = usable / float64(n)
	}
	return widths
}

// fit truncates s with an ellipsis so that it fits inside a cell of width w.
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	const padding = 2.0
	if pdf.GetStringWidth(s) <= w-padding {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > w-padding {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
