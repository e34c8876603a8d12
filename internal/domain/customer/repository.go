package customer

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context, sess auth.Session, search string) ([]Customer, error)
	UpdateCustomer(ctx context.Context, sess auth.Session, id string, req UpdateCustomerRequest) error
	ArchiveCustomer(ctx context.Context, sess auth.Session, id string) error
}
