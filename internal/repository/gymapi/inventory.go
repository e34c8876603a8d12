package gymapi

import (
	"context"
	"net/http"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

type InventoryRepository struct {
	client *Client
}

func NewInventoryRepository(client *Client) *InventoryRepository {
	return &InventoryRepository{client: client}
}

type inventoryRow struct {
	ID               flexID              `json:"id"`
	ItemCode         string              `json:"item_code"`
	Name             string              `json:"name"`
	ShortDescription *string             `json:"short_description"`
	Type             string              `json:"type"`
	Quantity         flexInt             `json:"quantity"`
	Price            decimal.NullDecimal `json:"price"`
}

func (r *InventoryRepository) ListItems(ctx context.Context, sess auth.Session) ([]inventory.Item, error) {
	var rows []inventoryRow
	if _, err := r.client.do(ctx, &sess, "inventory.list", http.MethodGet, "/api/admin/show-inventory", nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]inventory.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, inventory.Item{
			ID:               string(row.ID),
			ItemCode:         row.ItemCode,
			Name:             row.Name,
			ShortDescription: str(row.ShortDescription),
			Type:             inventory.ItemType(row.Type),
			Quantity:         int(row.Quantity),
			Price:            row.Price.Decimal,
		})
	}
	return out, nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, sess auth.Session, id string, req inventory.UpdateItemRequest) error {
	body := map[string]interface{}{
		"name":              req.Name,
		"short_description": req.ShortDescription,
		"type":              req.Type,
		"quantity":          req.Quantity,
		"price":             req.Price,
	}
	_, err := r.client.do(ctx, &sess, "inventory.update", http.MethodPost, "/api/admin/update-inventory/"+pathID(id), nil, body, nil)
	return err
}

func (r *InventoryRepository) ArchiveItem(ctx context.Context, sess auth.Session, id string) error {
	_, err := r.client.do(ctx, &sess, "inventory.archive", http.MethodPost, "/api/admin/soft-delete-inventory/"+pathID(id), nil, nil, nil)
	return err
}
