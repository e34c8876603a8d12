package dashboard

import "github.com/shopspring/decimal"

type ServiceSalesResponse struct {
	Service string          `json:"service"`
	Sales   decimal.Decimal `json:"sales"`
}

type GenderResponse struct {
	Female        int     `json:"female"`
	Male          int     `json:"male"`
	Total         int     `json:"total"`
	FemalePercent float64 `json:"female_percent"`
	MalePercent   float64 `json:"male_percent"`
}

type MonthlySalesResponse struct {
	Month string                     `json:"month"`
	Sales map[string]decimal.Decimal `json:"sales"`
}

type DailySalesResponse struct {
	Day   string                     `json:"day"`
	Sales map[string]decimal.Decimal `json:"sales"`
}

type DashboardResponse struct {
	MonthlyCustomers int                    `json:"monthly_customers"`
	SessionCustomers int                    `json:"session_customers"`
	Guests           int                    `json:"guests"`
	ServiceSales     []ServiceSalesResponse `json:"service_sales"`
	Gender           GenderResponse         `json:"gender"`
	MonthlySales     []MonthlySalesResponse `json:"monthly_sales"`
	DailySales       []DailySalesResponse   `json:"daily_sales"`
}

func salesOrEmpty(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	if m == nil {
		return map[string]decimal.Decimal{}
	}
	return m
}

func ToDashboardResponse(d Dashboard) DashboardResponse {
	resp := DashboardResponse{
		MonthlyCustomers: d.MonthlyCustomers,
		SessionCustomers: d.SessionCustomers,
		Guests:           d.Guests(),
		ServiceSales:     make([]ServiceSalesResponse, 0, len(d.ServiceSales)),
		Gender: GenderResponse{
			Female:        d.Gender.Female,
			Male:          d.Gender.Male,
			Total:         d.Gender.Total(),
			FemalePercent: d.Gender.FemalePercent,
			MalePercent:   d.Gender.MalePercent,
		},
		MonthlySales: make([]MonthlySalesResponse, 0, len(d.MonthlySales)),
		DailySales:   make([]DailySalesResponse, 0, len(d.DailySales)),
	}
	for _, s := range d.ServiceSales {
		resp.ServiceSales = append(resp.ServiceSales, ServiceSalesResponse{Service: s.Name, Sales: s.Sales})
	}
	for _, p := range d.MonthlySales {
		resp.MonthlySales = append(resp.MonthlySales, MonthlySalesResponse{Month: p.Period, Sales: salesOrEmpty(p.Sales)})
	}
	for _, p := range d.DailySales {
		resp.DailySales = append(resp.DailySales, DailySalesResponse{Day: p.Period, Sales: salesOrEmpty(p.Sales)})
	}
	return resp
}
