package sales

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type SalesService interface {
	Overview(ctx context.Context, sess auth.Session) (Overview, error)
	ArchiveMembership(ctx context.Context, sess auth.Session, id string) error
}
