package dashboard

import "github.com/shopspring/decimal"

// ServiceSales is the revenue of one exercise service.
type ServiceSales struct {
	Name  string
	Sales decimal.Decimal
}

// GenderShare splits the member population. Percentages are zero when there
// are no members.
type GenderShare struct {
	Female        int
	Male          int
	FemalePercent float64
	MalePercent   float64
}

func (g GenderShare) Total() int {
	return g.Female + g.Male
}

// PeriodSales is the revenue per service within one month or day.
type PeriodSales struct {
	Period string
	Sales  map[string]decimal.Decimal
}

type Dashboard struct {
	MonthlyCustomers int
	SessionCustomers int
	ServiceSales     []ServiceSales
	Gender           GenderShare
	MonthlySales     []PeriodSales
	DailySales       []PeriodSales
}

// Guests counts every availment, monthly or daily.
func (d Dashboard) Guests() int {
	return d.MonthlyCustomers + d.SessionCustomers
}
