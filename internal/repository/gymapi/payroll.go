package gymapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollRepository struct {
	client *Client
}

func NewPayrollRepository(client *Client) *PayrollRepository {
	return &PayrollRepository{client: client}
}

type payrollRow struct {
	ID        flexID `json:"id"`
	StaffID   flexID `json:"staff_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
	Staff     *struct {
		FullName string `json:"fullname"`
	} `json:"staff"`

	PresentDays flexInt `json:"present_days"`
	Absents     flexInt `json:"absents"`
	HalfDays    flexInt `json:"half_days"`
	WholeDays   flexInt `json:"whole_days"`

	SalaryRate      decimal.NullDecimal `json:"salary_rate"`
	WholeDayPay     decimal.NullDecimal `json:"whole_day_pay"`
	HalfDayPay      decimal.NullDecimal `json:"half_day_pay"`
	TotalSalary     decimal.NullDecimal `json:"total_salary"`
	OverTime        decimal.NullDecimal `json:"over_time"`
	YearlyBonus     decimal.NullDecimal `json:"yearly_bonus"`
	SalesCommission decimal.NullDecimal `json:"sales_comission"`
	Incentives      decimal.NullDecimal `json:"incentives"`
	SSS             decimal.NullDecimal `json:"sss"`
	PhilHealth      decimal.NullDecimal `json:"philhealth"`
	PagIBIG         decimal.NullDecimal `json:"pag_ibig"`
	PagIBIGAlt      decimal.NullDecimal `json:"pagibig"`
	TotalDeductions decimal.NullDecimal `json:"total_deductions"`
	NetIncome       decimal.NullDecimal `json:"net_income"`
	FinalSalary     decimal.NullDecimal `json:"final_salary"`
}

func parseDay(s string) time.Time {
	d, _ := attendance.ParseDate(s)
	return d
}

func (r payrollRow) toPayroll() payroll.Payroll {
	name := r.Name
	if name == "" && r.Staff != nil {
		name = r.Staff.FullName
	}
	pagIBIG := r.PagIBIG
	if !pagIBIG.Valid {
		pagIBIG = r.PagIBIGAlt
	}
	return payroll.Payroll{
		ID:              string(r.ID),
		StaffID:         string(r.StaffID),
		StaffName:       name,
		StartDate:       parseDay(r.StartDate),
		EndDate:         parseDay(r.EndDate),
		PayDate:         parseDay(r.PayDate),
		PresentDays:     int(r.PresentDays),
		Absents:         int(r.Absents),
		HalfDays:        int(r.HalfDays),
		WholeDays:       int(r.WholeDays),
		SalaryRate:      r.SalaryRate.Decimal,
		WholeDayPay:     r.WholeDayPay.Decimal,
		HalfDayPay:      r.HalfDayPay.Decimal,
		TotalSalary:     r.TotalSalary.Decimal,
		OverTime:        r.OverTime.Decimal,
		YearlyBonus:     r.YearlyBonus.Decimal,
		SalesCommission: r.SalesCommission.Decimal,
		Incentives:      r.Incentives.Decimal,
		SSS:             r.SSS.Decimal,
		PhilHealth:      r.PhilHealth.Decimal,
		PagIBIG:         pagIBIG.Decimal,
		TotalDeductions: r.TotalDeductions.Decimal,
		NetIncome:       r.NetIncome.Decimal,
		FinalSalary:     r.FinalSalary.Decimal,
	}
}

func (r *PayrollRepository) ListPayrolls(ctx context.Context, sess auth.Session) ([]payroll.Payroll, error) {
	var rows []payrollRow
	if _, err := r.client.do(ctx, &sess, "payroll.list", http.MethodGet, "/api/admin/show-staff-payroll", nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]payroll.Payroll, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPayroll())
	}
	return out, nil
}

func (r *PayrollRepository) CreatePayroll(ctx context.Context, sess auth.Session, req payroll.CreatePayrollRequest) (payroll.Payroll, error) {
	body := map[string]interface{}{
		"staff_id":        idValue(req.StaffID),
		"start_date":      req.StartDate,
		"end_date":        req.EndDate,
		"pay_date":        req.PayDate,
		"over_time":       req.OverTime,
		"yearly_bonus":    req.YearlyBonus,
		"sales_comission": req.SalesCommission,
		"incentives":      req.Incentives,
	}

	var row payrollRow
	if _, err := r.client.do(ctx, &sess, "payroll.create", http.MethodPost, "/api/admin/store-staff-payroll/"+pathID(req.StaffID), nil, body, &row); err != nil {
		return payroll.Payroll{}, err
	}
	return row.toPayroll(), nil
}

func (r *PayrollRepository) ArchivePayroll(ctx context.Context, sess auth.Session, id string) error {
	_, err := r.client.do(ctx, &sess, "payroll.archive", http.MethodPost, "/api/admin/soft-delete-payroll/"+pathID(id), nil, nil, nil)
	return err
}
