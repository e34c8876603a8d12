package payroll

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type PayrollRepository interface {
	ListPayrolls(ctx context.Context, sess auth.Session) ([]Payroll, error)
	CreatePayroll(ctx context.Context, sess auth.Session, req CreatePayrollRequest) (Payroll, error)
	ArchivePayroll(ctx context.Context, sess auth.Session, id string) error
}
