package gymapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/sales"
	"github.com/shopspring/decimal"
)

type SalesRepository struct {
	client *Client
}

func NewSalesRepository(client *Client) *SalesRepository {
	return &SalesRepository{client: client}
}

type membershipRow struct {
	ID              flexID              `json:"id"`
	TransactionCode string              `json:"transaction_code"`
	TotalPrice      decimal.NullDecimal `json:"total_price"`
	CreatedAt       string              `json:"created_at"`
	Transactions    []struct {
		ExerciseName string `json:"exercise_name"`
		Tag          string `json:"tag"`
	} `json:"transactions"`
}

type cartRow struct {
	ID              flexID              `json:"id"`
	TransactionCode string              `json:"transaction_code"`
	TotalAmount     decimal.NullDecimal `json:"total_amount"`
	CreatedAt       string              `json:"created_at"`
}

// timestamp parses Laravel's created_at in either serialized form.
func timestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (r *SalesRepository) ListMemberships(ctx context.Context, sess auth.Session) ([]sales.Membership, error) {
	var rows []membershipRow
	if _, err := r.client.do(ctx, &sess, "sales.memberships", http.MethodGet, "/api/admin/exercise-transaction/show", nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]sales.Membership, 0, len(rows))
	for _, row := range rows {
		m := sales.Membership{
			ID:              string(row.ID),
			TransactionCode: row.TransactionCode,
			TotalPrice:      row.TotalPrice.Decimal,
			CreatedAt:       timestamp(row.CreatedAt),
			Lines:           make([]sales.Line, 0, len(row.Transactions)),
		}
		for _, tx := range row.Transactions {
			m.Lines = append(m.Lines, sales.Line{
				ExerciseName: tx.ExerciseName,
				Tag:          sales.Tag(strings.ToLower(tx.Tag)),
			})
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *SalesRepository) ListProductSales(ctx context.Context, sess auth.Session) ([]sales.ProductSale, error) {
	var rows []cartRow
	if _, err := r.client.do(ctx, &sess, "sales.products", http.MethodGet, "/api/admin/cart/show", nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]sales.ProductSale, 0, len(rows))
	for _, row := range rows {
		out = append(out, sales.ProductSale{
			ID:              string(row.ID),
			TransactionCode: row.TransactionCode,
			TotalAmount:     row.TotalAmount.Decimal,
			CreatedAt:       timestamp(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *SalesRepository) ArchiveMembership(ctx context.Context, sess auth.Session, id string) error {
	_, err := r.client.do(ctx, &sess, "sales.archive", http.MethodPost, "/api/admin/exercise-transaction/delete/"+pathID(id), nil, nil, nil)
	return err
}
