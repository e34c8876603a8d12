package inventory

import (
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateItemRequest struct {
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	Type             string          `json:"type"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
}

func (r *UpdateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if !ItemType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: ErrInvalidItemType.Error(),
		})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}
	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ID               string          `json:"id"`
	ItemCode         string          `json:"item_code"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	Type             string          `json:"type"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
}

type TypeTotalsResponse struct {
	Items      int             `json:"items"`
	Quantity   int             `json:"quantity"`
	StockValue decimal.Decimal `json:"stock_value"`
}

type SummaryResponse struct {
	TotalItems    int                           `json:"total_items"`
	TotalQuantity int                           `json:"total_quantity"`
	StockValue    decimal.Decimal               `json:"stock_value"`
	ByType        map[string]TypeTotalsResponse `json:"by_type"`
	LowestStock   *ItemResponse                 `json:"lowest_stock"`
	HighestStock  *ItemResponse                 `json:"highest_stock"`
}

func ToItemResponse(i Item) ItemResponse {
	return ItemResponse{
		ID:               i.ID,
		ItemCode:         i.ItemCode,
		Name:             i.Name,
		ShortDescription: i.ShortDescription,
		Type:             string(i.Type),
		Quantity:         i.Quantity,
		Price:            i.Price,
	}
}

func ToSummaryResponse(s Summary) SummaryResponse {
	resp := SummaryResponse{
		TotalItems:    s.TotalItems,
		TotalQuantity: s.TotalQuantity,
		StockValue:    s.StockValue,
		ByType:        make(map[string]TypeTotalsResponse, len(s.ByType)),
	}
	for t, totals := range s.ByType {
		resp.ByType[string(t)] = TypeTotalsResponse(totals)
	}
	if s.LowestStock != nil {
		item := ToItemResponse(*s.LowestStock)
		resp.LowestStock = &item
	}
	if s.HighestStock != nil {
		item := ToItemResponse(*s.HighestStock)
		resp.HighestStock = &item
	}
	return resp
}
