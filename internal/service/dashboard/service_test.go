package dashboard

import (
	"context"
	"testing"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/dashboard"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	dashboard dashboard.Dashboard
	err       error
}

func (f *fakeRepo) GetDashboard(context.Context, auth.Session) (dashboard.Dashboard, error) {
	return f.dashboard, f.err
}

type fakeNotifier struct {
	severities []notification.Severity
}

func (f *fakeNotifier) Notify(_ context.Context, _ string, severity notification.Severity, _ string) {
	f.severities = append(f.severities, severity)
}

func TestGenderShare(t *testing.T) {
	tests := []struct {
		name          string
		female, male  int
		femalePercent float64
		malePercent   float64
	}{
		{name: "even split", female: 10, male: 10, femalePercent: 50, malePercent: 50},
		{name: "thirds are rounded", female: 1, male: 2, femalePercent: 33.33, malePercent: 66.67},
		{name: "only male", female: 0, male: 7, femalePercent: 0, malePercent: 100},
		{name: "no members", female: 0, male: 0, femalePercent: 0, malePercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := GenderShare(tt.female, tt.male)
			assert.Equal(t, tt.female, share.Female)
			assert.Equal(t, tt.male, share.Male)
			assert.InDelta(t, tt.femalePercent, share.FemalePercent, 0.001)
			assert.InDelta(t, tt.malePercent, share.MalePercent, 0.001)
		})
	}
}

func TestGet(t *testing.T) {
	sess := auth.Session{UserID: "1", APIToken: "token"}

	t.Run("computes gender share", func(t *testing.T) {
		repo := &fakeRepo{dashboard: dashboard.Dashboard{
			MonthlyCustomers: 4,
			SessionCustomers: 6,
			ServiceSales:     []dashboard.ServiceSales{{Name: "Zumba", Sales: decimal.NewFromInt(900)}},
			Gender:           dashboard.GenderShare{Female: 3, Male: 1},
		}}
		notifier := &fakeNotifier{}
		svc := NewDashboardService(repo, notifier)

		d, err := svc.Get(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, 10, d.Guests())
		assert.InDelta(t, 75.0, d.Gender.FemalePercent, 0.001)
		assert.InDelta(t, 25.0, d.Gender.MalePercent, 0.001)
		assert.Empty(t, notifier.severities)
	})

	t.Run("failure is reported", func(t *testing.T) {
		notifier := &fakeNotifier{}
		svc := NewDashboardService(&fakeRepo{err: upstream.ErrUnavailable}, notifier)

		_, err := svc.Get(context.Background(), sess)
		assert.ErrorIs(t, err, upstream.ErrUnavailable)
		assert.Equal(t, []notification.Severity{notification.SeverityError}, notifier.severities)
	})
}

func TestToDashboardResponse(t *testing.T) {
	resp := dashboard.ToDashboardResponse(dashboard.Dashboard{
		MonthlyCustomers: 2,
		SessionCustomers: 3,
		Gender:           GenderShare(0, 0),
		DailySales:       []dashboard.PeriodSales{{Period: "Mon"}},
	})

	assert.Equal(t, 5, resp.Guests)
	assert.Equal(t, 0, resp.Gender.Total)
	assert.NotNil(t, resp.ServiceSales)
	assert.NotNil(t, resp.MonthlySales)
	require.Len(t, resp.DailySales, 1)
	assert.Equal(t, "Mon", resp.DailySales[0].Day)
	assert.NotNil(t, resp.DailySales[0].Sales)
}
