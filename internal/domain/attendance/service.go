package attendance

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type AttendanceService interface {
	Query(ctx context.Context, sess auth.Session, filter Filter) (Result, error)
	Clock(ctx context.Context, sess auth.Session, req ClockRequest) error
	Mark(ctx context.Context, sess auth.Session, req MarkRequest) error
	// Refresh refetches the session's snapshot without returning it.
	Refresh(ctx context.Context, sess auth.Session) error
}
