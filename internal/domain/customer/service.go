package customer

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type CustomerService interface {
	List(ctx context.Context, sess auth.Session, search string) ([]CustomerResponse, error)
	Update(ctx context.Context, sess auth.Session, id string, req UpdateCustomerRequest) error
	Archive(ctx context.Context, sess auth.Session, id string) error
}
