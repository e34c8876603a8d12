package attendance

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

// Reader fetches the attendance list.
type Reader interface {
	ListAttendance(ctx context.Context, sess auth.Session) ([]Record, error)
}

// Gateway performs attendance actions on the gym API.
type Gateway interface {
	Clock(ctx context.Context, sess auth.Session, cmd ClockCommand) error
	Mark(ctx context.Context, sess auth.Session, cmd MarkCommand) error
}
