package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/domain/payroll"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	notifier    notification.Notifier
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, notifier notification.Notifier) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		notifier:    notifier,
	}
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, sess auth.Session) ([]payroll.PayrollResponse, error) {
	payrolls, err := s.payrollRepo.ListPayrolls(ctx, sess)
	if err != nil {
		slog.Error("failed to list payrolls", "error", err)
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}

	resp := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		resp = append(resp, payroll.ToPayrollResponse(p))
	}
	return resp, nil
}

// Get implements payroll.PayrollService. The gym API has no single-record
// endpoint, so the record is looked up in the list.
func (s *PayrollServiceImpl) Get(ctx context.Context, sess auth.Session, id string) (payroll.Payroll, error) {
	if _, ok := validator.IsValidID(id); !ok {
		return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
	}

	payrolls, err := s.payrollRepo.ListPayrolls(ctx, sess)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to list payrolls: %w", err)
	}
	for _, p := range payrolls {
		if p.ID == id {
			return p, nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, sess auth.Session, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	created, err := s.payrollRepo.CreatePayroll(ctx, sess, req)
	if err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to create payroll")
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Payroll created successfully")
	return payroll.ToPayrollResponse(created), nil
}

// Archive implements payroll.PayrollService.
func (s *PayrollServiceImpl) Archive(ctx context.Context, sess auth.Session, id string) error {
	if _, ok := validator.IsValidID(id); !ok {
		return payroll.ErrPayrollRecordNotFound
	}

	if err := s.payrollRepo.ArchivePayroll(ctx, sess, id); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to archive payroll")
		if errors.Is(err, upstream.ErrNotFound) {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to archive payroll: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Payroll archived successfully")
	return nil
}
