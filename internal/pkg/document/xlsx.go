package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	maxSheetName   = 31
	invalidInSheet = `:\/?*[]`
)

// RenderXLSX writes the summary on the first sheet and each table on its own sheet.
func RenderXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(summarySheet, "A1", r.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	row := 2
	if r.Subtitle != "" {
		if err := f.SetCellValue(summarySheet, cellName(1, row), r.Subtitle); err != nil {
			return err
		}
		row++
	}
	if err := f.SetCellValue(summarySheet, cellName(1, row), generatedLine(r.GeneratedAt)); err != nil {
		return err
	}
	row += 2

	if len(r.Summary) > 0 {
		if err := writeRow(f, summarySheet, row, []string{"Summary", "Value"}); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, cellName(1, row), cellName(2, row), headerStyle); err != nil {
			return err
		}
		for _, field := range r.Summary {
			row++
			if err := writeRow(f, summarySheet, row, []string{field.Label, field.Value}); err != nil {
				return err
			}
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "B", 32); err != nil {
		return err
	}

	used := map[string]bool{summarySheet: true}
	for i, t := range r.Tables {
		name := sheetName(t.Title, i, used)
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if len(t.Headers) > 0 {
			if err := writeRow(f, name, 1, t.Headers); err != nil {
				return err
			}
			if err := f.SetCellStyle(name, "A1", cellName(len(t.Headers), 1), headerStyle); err != nil {
				return err
			}
			last, _ := excelize.ColumnNumberToName(len(t.Headers))
			if err := f.SetColWidth(name, "A", last, 20); err != nil {
				return err
			}
		}
		for j, values := range t.Rows {
			if err := writeRow(f, name, j+2, values); err != nil {
				return err
			}
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cellName(1, row), &cells)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// sheetName derives a unique, Excel-safe sheet name from a table title.
func sheetName(title string, index int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidInSheet, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = fmt.Sprintf("Table %d", index+1)
	}
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	base := name
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		runes := []rune(base)
		if len(runes)+len(suffix) > maxSheetName {
			runes = runes[:maxSheetName-len(suffix)]
		}
		name = string(runes) + suffix
	}
	used[name] = true
	return name
}
