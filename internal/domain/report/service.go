package report

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/pkg/document"
)

type ReportService interface {
	AttendanceReport(ctx context.Context, sess auth.Session, filter attendance.Filter, format document.Format) (Document, error)
	InventoryReport(ctx context.Context, sess auth.Session, format document.Format) (Document, error)
	SalesReport(ctx context.Context, sess auth.Session, format document.Format) (Document, error)
	Payslip(ctx context.Context, sess auth.Session, payrollID string) (Document, error)
}
