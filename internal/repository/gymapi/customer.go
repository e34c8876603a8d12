package gymapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/customer"
	"github.com/shopspring/decimal"
)

type CustomerRepository struct {
	client *Client
}

func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

type clientRow struct {
	ID             flexID              `json:"id"`
	FullName       string              `json:"fullname"`
	Gender         string              `json:"gender"`
	Email          *string             `json:"email"`
	ContactNo      *string             `json:"contact_no"`
	Address        *string             `json:"address"`
	ChosenServices *string             `json:"chosen_services"`
	Instructor     *string             `json:"instructor"`
	Plan           *string             `json:"plan"`
	Amount         decimal.NullDecimal `json:"amount"`
	IsActive       flexBool            `json:"is_active"`
}

func (r *CustomerRepository) ListCustomers(ctx context.Context, sess auth.Session, search string) ([]customer.Customer, error) {
	query := url.Values{}
	if s := strings.TrimSpace(search); s != "" {
		query.Set("search", s)
	}

	var rows []clientRow
	if _, err := r.client.do(ctx, &sess, "customer.list", http.MethodGet, "/api/admin/show-client", query, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]customer.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, customer.Customer{
			ID:             string(row.ID),
			FullName:       row.FullName,
			Gender:         row.Gender,
			Email:          str(row.Email),
			ContactNo:      str(row.ContactNo),
			Address:        str(row.Address),
			ChosenServices: str(row.ChosenServices),
			Instructor:     str(row.Instructor),
			Plan:           str(row.Plan),
			Amount:         row.Amount.Decimal,
			IsActive:       bool(row.IsActive),
		})
	}
	return out, nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, sess auth.Session, id string, req customer.UpdateCustomerRequest) error {
	body := map[string]interface{}{
		"firstname":  req.FirstName,
		"lastname":   req.LastName,
		"email":      req.Email,
		"address":    req.Address,
		"gender":     req.Gender,
		"contact_no": req.ContactNo,
	}
	if req.Password != "" {
		body["password"] = req.Password
	}
	_, err := r.client.do(ctx, &sess, "customer.update", http.MethodPost, "/api/admin/update-client/"+pathID(id), nil, body, nil)
	return err
}

func (r *CustomerRepository) ArchiveCustomer(ctx context.Context, sess auth.Session, id string) error {
	_, err := r.client.do(ctx, &sess, "customer.archive", http.MethodPost, "/api/admin/soft-delete-client/"+pathID(id), nil, nil, nil)
	return err
}
