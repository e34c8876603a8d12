package dashboard

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type DashboardService interface {
	Get(ctx context.Context, sess auth.Session) (Dashboard, error)
}
