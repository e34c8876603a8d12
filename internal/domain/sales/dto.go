package sales

import (
	"github.com/shopspring/decimal"
)

type MembershipResponse struct {
	ID              string          `json:"id"`
	TransactionCode string          `json:"transaction_code"`
	Services        []string        `json:"services"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	CreatedAt       string          `json:"created_at"`
}

type ProductSaleResponse struct {
	ID              string          `json:"id"`
	TransactionCode string          `json:"transaction_code"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       string          `json:"created_at"`
}

type OverviewResponse struct {
	Monthly      []MembershipResponse  `json:"monthly"`
	Daily        []MembershipResponse  `json:"daily"`
	Products     []ProductSaleResponse `json:"products"`
	MonthlyTotal decimal.Decimal       `json:"monthly_total"`
	DailyTotal   decimal.Decimal       `json:"daily_total"`
	ProductTotal decimal.Decimal       `json:"product_total"`
	GrandTotal   decimal.Decimal       `json:"grand_total"`
}

const dateLayout = "2006-01-02"

func ToMembershipResponse(m Membership) MembershipResponse {
	return MembershipResponse{
		ID:              m.ID,
		TransactionCode: m.TransactionCode,
		Services:        m.Services(),
		TotalPrice:      m.TotalPrice,
		CreatedAt:       m.CreatedAt.Format(dateLayout),
	}
}

func ToOverviewResponse(o Overview) OverviewResponse {
	resp := OverviewResponse{
		Monthly:      make([]MembershipResponse, 0, len(o.Monthly)),
		Daily:        make([]MembershipResponse, 0, len(o.Daily)),
		Products:     make([]ProductSaleResponse, 0, len(o.Products)),
		MonthlyTotal: o.MonthlyTotal,
		DailyTotal:   o.DailyTotal,
		ProductTotal: o.ProductTotal,
		GrandTotal:   o.GrandTotal(),
	}
	for _, m := range o.Monthly {
		resp.Monthly = append(resp.Monthly, ToMembershipResponse(m))
	}
	for _, m := range o.Daily {
		resp.Daily = append(resp.Daily, ToMembershipResponse(m))
	}
	for _, p := range o.Products {
		resp.Products = append(resp.Products, ProductSaleResponse{
			ID:              p.ID,
			TransactionCode: p.TransactionCode,
			TotalAmount:     p.TotalAmount,
			CreatedAt:       p.CreatedAt.Format(dateLayout),
		})
	}
	return resp
}
