package sales

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type SalesRepository interface {
	ListMemberships(ctx context.Context, sess auth.Session) ([]Membership, error)
	ListProductSales(ctx context.Context, sess auth.Session) ([]ProductSale, error)
	ArchiveMembership(ctx context.Context, sess auth.Session, id string) error
}
