package document

import (
	"encoding/csv"
	"io"
)

// RenderCSV writes a report as consecutive CSV blocks separated by blank lines.
func RenderCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	write := func(record ...string) {
		_ = cw.Write(record)
	}

	write(r.Title)
	if r.Subtitle != "" {
		write(r.Subtitle)
	}
	write(generatedLine(r.GeneratedAt))

	if len(r.Summary) > 0 {
		write()
		write("Summary", "Value")
		for _, f := range r.Summary {
			write(f.Label, f.Value)
		}
	}

	for _, t := range r.Tables {
		write()
		if t.Title != "" {
			write(t.Title)
		}
		write(t.Headers...)
		for _, row := range t.Rows {
			write(row...)
		}
	}

	cw.Flush()
	return cw.Error()
}
