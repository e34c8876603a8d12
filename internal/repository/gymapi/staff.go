package gymapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/staff"
)

type StaffRepository struct {
	client *Client
}

func NewStaffRepository(client *Client) *StaffRepository {
	return &StaffRepository{client: client}
}

type staffRow struct {
	ID         flexID       `json:"id"`
	FullName   string       `json:"fullname"`
	Email      string       `json:"email"`
	Gender     string       `json:"gender"`
	ContactNo  *string      `json:"contact_no"`
	Address    *string      `json:"address"`
	Position   nameOrString `json:"position"`
	JoinedDate *string      `json:"joined_date"`
}

type positionRow struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

func (r *StaffRepository) ListStaff(ctx context.Context, sess auth.Session, search string) ([]staff.Staff, error) {
	query := url.Values{}
	if s := strings.TrimSpace(search); s != "" {
		query.Set("search", s)
	}

	var rows []staffRow
	if _, err := r.client.do(ctx, &sess, "staff.list", http.MethodGet, "/api/admin/show-staff", query, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]staff.Staff, 0, len(rows))
	for _, row := range rows {
		out = append(out, staff.Staff{
			ID:         string(row.ID),
			FullName:   row.FullName,
			Email:      row.Email,
			Gender:     row.Gender,
			ContactNo:  str(row.ContactNo),
			Address:    str(row.Address),
			Position:   string(row.Position),
			JoinedDate: str(row.JoinedDate),
		})
	}
	return out, nil
}

func (r *StaffRepository) ListPositions(ctx context.Context, sess auth.Session) ([]staff.Position, error) {
	var rows []positionRow
	if _, err := r.client.do(ctx, &sess, "staff.positions", http.MethodGet, "/api/admin/show-position", nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]staff.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, staff.Position{ID: string(row.ID), Name: row.Name})
	}
	return out, nil
}

func (r *StaffRepository) UpdateStaff(ctx context.Context, sess auth.Session, id string, req staff.UpdateStaffRequest) error {
	body := map[string]interface{}{
		"firstname":  req.FirstName,
		"lastname":   req.LastName,
		"email":      req.Email,
		"address":    req.Address,
		"gender":     req.Gender,
		"contact_no": req.ContactNo,
	}
	if req.PositionID != "" {
		body["position_id"] = idValue(req.PositionID)
	}
	if req.Password != "" {
		body["password"] = req.Password
	}
	_, err := r.client.do(ctx, &sess, "staff.update", http.MethodPost, "/api/admin/update-staff/"+pathID(id), nil, body, nil)
	return err
}

func (r *StaffRepository) ArchiveStaff(ctx context.Context, sess auth.Session, id string) error {
	_, err := r.client.do(ctx, &sess, "staff.archive", http.MethodPost, "/api/admin/soft-delete-staff/"+pathID(id), nil, nil, nil)
	return err
}
