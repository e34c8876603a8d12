package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one computed pay period of a staff member. All figures are
// computed by the gym API.
type Payroll struct {
	ID        string
	StaffID   string
	StaffName string
	StartDate time.Time
	EndDate   time.Time
	PayDate   time.Time

	PresentDays int
	Absents     int
	HalfDays    int
	WholeDays   int

	SalaryRate      decimal.Decimal
	WholeDayPay     decimal.Decimal
	HalfDayPay      decimal.Decimal
	TotalSalary     decimal.Decimal
	OverTime        decimal.Decimal
	YearlyBonus     decimal.Decimal
	SalesCommission decimal.Decimal
	Incentives      decimal.Decimal

	SSS             decimal.Decimal
	PhilHealth      decimal.Decimal
	PagIBIG         decimal.Decimal
	TotalDeductions decimal.Decimal
	NetIncome       decimal.Decimal
	FinalSalary     decimal.Decimal
}

// EmployeeNo is the number printed on payslips.
func (p Payroll) EmployeeNo() string {
	return formatEmployeeNo(p.StaffID)
}
