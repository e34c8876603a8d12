package staff

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type StaffService interface {
	List(ctx context.Context, sess auth.Session, search string) ([]StaffResponse, error)
	Positions(ctx context.Context, sess auth.Session) ([]PositionResponse, error)
	Update(ctx context.Context, sess auth.Session, id string, req UpdateStaffRequest) error
	Archive(ctx context.Context, sess auth.Session, id string) error
}
