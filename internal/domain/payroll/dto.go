package payroll

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gymrepublic/gym-console/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	StaffID         string          `json:"staff_id"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	PayDate         string          `json:"pay_date"`
	OverTime        decimal.Decimal `json:"over_time"`
	YearlyBonus     decimal.Decimal `json:"yearly_bonus"`
	SalesCommission decimal.Decimal `json:"sales_comission"`
	Incentives      decimal.Decimal `json:"incentives"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidID(r.StaffID); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required and must be a positive integer",
		})
	}

	dates := map[string]string{"start_date": r.StartDate, "end_date": r.EndDate, "pay_date": r.PayDate}
	for _, field := range []string{"start_date", "end_date", "pay_date"} {
		value := dates[field]
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		} else if _, ok := validator.IsValidDate(value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	end, okEnd := validator.IsValidDate(r.EndDate)
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	amounts := map[string]decimal.Decimal{
		"over_time":       r.OverTime,
		"yearly_bonus":    r.YearlyBonus,
		"sales_comission": r.SalesCommission,
		"incentives":      r.Incentives,
	}
	for _, field := range []string{"over_time", "yearly_bonus", "sales_comission", "incentives"} {
		if amounts[field].IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID              string          `json:"id"`
	StaffID         string          `json:"staff_id"`
	Name            string          `json:"name"`
	EmployeeNo      string          `json:"employee_no"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	PayDate         string          `json:"pay_date"`
	PresentDays     int             `json:"present_days"`
	Absents         int             `json:"absents"`
	HalfDays        int             `json:"half_days"`
	WholeDays       int             `json:"whole_days"`
	SalaryRate      decimal.Decimal `json:"salary_rate"`
	WholeDayPay     decimal.Decimal `json:"whole_day_pay"`
	HalfDayPay      decimal.Decimal `json:"half_day_pay"`
	TotalSalary     decimal.Decimal `json:"total_salary"`
	OverTime        decimal.Decimal `json:"over_time"`
	YearlyBonus     decimal.Decimal `json:"yearly_bonus"`
	SalesCommission decimal.Decimal `json:"sales_comission"`
	Incentives      decimal.Decimal `json:"incentives"`
	SSS             decimal.Decimal `json:"sss"`
	PhilHealth      decimal.Decimal `json:"philhealth"`
	PagIBIG         decimal.Decimal `json:"pag_ibig"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetIncome       decimal.Decimal `json:"net_income"`
	FinalSalary     decimal.Decimal `json:"final_salary"`
}

const dateLayout = "2006-01-02"

func ToPayrollResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:              p.ID,
		StaffID:         p.StaffID,
		Name:            p.StaffName,
		EmployeeNo:      p.EmployeeNo(),
		StartDate:       formatDate(p.StartDate),
		EndDate:         formatDate(p.EndDate),
		PayDate:         formatDate(p.PayDate),
		PresentDays:     p.PresentDays,
		Absents:         p.Absents,
		HalfDays:        p.HalfDays,
		WholeDays:       p.WholeDays,
		SalaryRate:      p.SalaryRate,
		WholeDayPay:     p.WholeDayPay,
		HalfDayPay:      p.HalfDayPay,
		TotalSalary:     p.TotalSalary,
		OverTime:        p.OverTime,
		YearlyBonus:     p.YearlyBonus,
		SalesCommission: p.SalesCommission,
		Incentives:      p.Incentives,
		SSS:             p.SSS,
		PhilHealth:      p.PhilHealth,
		PagIBIG:         p.PagIBIG,
		TotalDeductions: p.TotalDeductions,
		NetIncome:       p.NetIncome,
		FinalSalary:     p.FinalSalary,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatEmployeeNo(staffID string) string {
	n, err := strconv.Atoi(staffID)
	if err != nil {
		return "EMP" + staffID
	}
	return fmt.Sprintf("EMP%03d", n)
}
