package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/customer"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
)

type CustomerServiceImpl struct {
	customerRepo customer.CustomerRepository
	notifier     notification.Notifier
}

func NewCustomerService(customerRepo customer.CustomerRepository, notifier notification.Notifier) customer.CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

// List implements customer.CustomerService.
func (s *CustomerServiceImpl) List(ctx context.Context, sess auth.Session, search string) ([]customer.CustomerResponse, error) {
	list, err := s.customerRepo.ListCustomers(ctx, sess, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	resp := make([]customer.CustomerResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, customer.ToCustomerResponse(c))
	}
	return resp, nil
}

// Update implements customer.CustomerService.
func (s *CustomerServiceImpl) Update(ctx context.Context, sess auth.Session, id string, req customer.UpdateCustomerRequest) error {
	if _, ok := validator.IsValidID(id); !ok {
		return customer.ErrCustomerNotFound
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.customerRepo.UpdateCustomer(ctx, sess, id, req); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to update customer")
		if errors.Is(err, upstream.ErrNotFound) {
			return customer.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Customer updated successfully")
	return nil
}

// Archive implements customer.CustomerService.
func (s *CustomerServiceImpl) Archive(ctx context.Context, sess auth.Session, id string) error {
	if _, ok := validator.IsValidID(id); !ok {
		return customer.ErrCustomerNotFound
	}

	if err := s.customerRepo.ArchiveCustomer(ctx, sess, id); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to archive customer")
		if errors.Is(err, upstream.ErrNotFound) {
			return customer.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to archive customer: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Customer archived successfully")
	return nil
}
