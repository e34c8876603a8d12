package gymapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/dashboard"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/shopspring/decimal"
)

type DashboardRepository struct {
	client *Client
}

func NewDashboardRepository(client *Client) *DashboardRepository {
	return &DashboardRepository{client: client}
}

// amountMap is a service name to revenue map. An empty PHP array arrives as [].
type amountMap map[string]decimal.Decimal

func (m *amountMap) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" || string(b) == "[]" {
		*m = amountMap{}
		return nil
	}
	var raw map[string]decimal.NullDecimal
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("sales: %w", err)
	}
	out := make(amountMap, len(raw))
	for name, v := range raw {
		out[name] = v.Decimal
	}
	*m = out
	return nil
}

// dashboardBody is sent unwrapped, with the field names the gym API uses.
type dashboardBody struct {
	MonthlyCustomer flexInt `json:"monthly_customer"`
	SessionCustomer flexInt `json:"session_customer"`
	SalesExercise   []struct {
		Name  string              `json:"name"`
		Sales decimal.NullDecimal `json:"sales"`
	} `json:"Sales_exercise"`
	TotalGender []struct {
		Female flexInt `json:"female"`
		Male   flexInt `json:"male"`
	} `json:"total_gender"`
	MonthlySales []struct {
		Month string    `json:"month"`
		Sales amountMap `json:"sales"`
	} `json:"monthly_sales"`
	DailySales []struct {
		Day   string    `json:"day"`
		Sales amountMap `json:"sales"`
	} `json:"daily_sales"`
}

func (r *DashboardRepository) GetDashboard(ctx context.Context, sess auth.Session) (dashboard.Dashboard, error) {
	env, err := r.client.do(ctx, &sess, "dashboard", http.MethodGet, "/api/admin/dashboard", nil, nil, nil)
	if err != nil {
		return dashboard.Dashboard{}, err
	}

	raw := env.Raw
	if len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
	}
	var body dashboardBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return dashboard.Dashboard{}, fmt.Errorf("%w: decode dashboard: %v", upstream.ErrUnavailable, err)
	}

	d := dashboard.Dashboard{
		MonthlyCustomers: int(body.MonthlyCustomer),
		SessionCustomers: int(body.SessionCustomer),
		ServiceSales:     make([]dashboard.ServiceSales, 0, len(body.SalesExercise)),
		MonthlySales:     make([]dashboard.PeriodSales, 0, len(body.MonthlySales)),
		DailySales:       make([]dashboard.PeriodSales, 0, len(body.DailySales)),
	}
	for _, s := range body.SalesExercise {
		d.ServiceSales = append(d.ServiceSales, dashboard.ServiceSales{Name: s.Name, Sales: s.Sales.Decimal})
	}
	if len(body.TotalGender) > 0 {
		d.Gender.Female = int(body.TotalGender[0].Female)
		d.Gender.Male = int(body.TotalGender[0].Male)
	}
	for _, p := range body.MonthlySales {
		d.MonthlySales = append(d.MonthlySales, dashboard.PeriodSales{Period: p.Month, Sales: p.Sales})
	}
	for _, p := range body.DailySales {
		d.DailySales = append(d.DailySales, dashboard.PeriodSales{Period: p.Day, Sales: p.Sales})
	}
	return d, nil
}
