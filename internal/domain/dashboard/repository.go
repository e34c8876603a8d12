package dashboard

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type DashboardRepository interface {
	// GetDashboard returns the gym API figures. Gender percentages are left unset.
	GetDashboard(ctx context.Context, sess auth.Session) (Dashboard, error)
}
