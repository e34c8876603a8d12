package staff

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type StaffRepository interface {
	ListStaff(ctx context.Context, sess auth.Session, search string) ([]Staff, error)
	ListPositions(ctx context.Context, sess auth.Session) ([]Position, error)
	UpdateStaff(ctx context.Context, sess auth.Session, id string, req UpdateStaffRequest) error
	ArchiveStaff(ctx context.Context, sess auth.Session, id string) error
}
