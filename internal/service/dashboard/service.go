package dashboard

import (
	"context"
	"log/slog"
	"math"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/dashboard"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	notifier      notification.Notifier
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, notifier notification.Notifier) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		notifier:      notifier,
	}
}

// Get implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Get(ctx context.Context, sess auth.Session) (dashboard.Dashboard, error) {
	d, err := s.dashboardRepo.GetDashboard(ctx, sess)
	if err != nil {
		slog.Error("Failed to load dashboard", "user_id", sess.UserID, "error", err)
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to load dashboard")
		return dashboard.Dashboard{}, err
	}

	d.Gender = GenderShare(d.Gender.Female, d.Gender.Male)
	return d, nil
}

// GenderShare computes each gender's share of the population in percent,
// rounded to two decimals.
func GenderShare(female, male int) dashboard.GenderShare {
	share := dashboard.GenderShare{Female: female, Male: male}
	if total := female + male; total > 0 {
		share.FemalePercent = percent(female, total)
		share.MalePercent = percent(male, total)
	}
	return share
}

func percent(n, total int) float64 {
	return math.Round(float64(n)/float64(total)*10000) / 100
}
