package report

import (
	"github.com/gymrepublic/gym-console/internal/pkg/document"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
)

type ExportRequest struct {
	Format string
}

func (r *ExportRequest) Validate() (document.Format, error) {
	format, err := document.ParseFormat(r.Format)
	if err != nil {
		return "", validator.ValidationErrors{{
			Field:   "format",
			Message: "format must be one of pdf, csv, xlsx",
		}}
	}
	return format, nil
}
