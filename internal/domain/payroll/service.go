package payroll

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type PayrollService interface {
	List(ctx context.Context, sess auth.Session) ([]PayrollResponse, error)
	Create(ctx context.Context, sess auth.Session, req CreatePayrollRequest) (PayrollResponse, error)
	Archive(ctx context.Context, sess auth.Session, id string) error
	Get(ctx context.Context, sess auth.Session, id string) (Payroll, error)
}
