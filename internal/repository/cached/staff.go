package cached

import (
	"context"
	"strings"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/staff"
	"github.com/gymrepublic/gym-console/internal/pkg/cache"
)

const staffPrefix = "staff:"

type StaffRepository struct {
	next  staff.StaffRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewStaffRepository(next staff.StaffRepository, c cache.Cache, ttl time.Duration) *StaffRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &StaffRepository{next: next, cache: c, ttl: ttl}
}

func (r *StaffRepository) ListStaff(ctx context.Context, sess auth.Session, search string) ([]staff.Staff, error) {
	key := staffPrefix + "list:" + strings.ToLower(strings.TrimSpace(search))
	return load(ctx, r.cache, key, r.ttl, func() ([]staff.Staff, error) {
		return r.next.ListStaff(ctx, sess, search)
	})
}

func (r *StaffRepository) ListPositions(ctx context.Context, sess auth.Session) ([]staff.Position, error) {
	return load(ctx, r.cache, staffPrefix+"positions", r.ttl, func() ([]staff.Position, error) {
		return r.next.ListPositions(ctx, sess)
	})
}

func (r *StaffRepository) UpdateStaff(ctx context.Context, sess auth.Session, id string, req staff.UpdateStaffRequest) error {
	if err := r.next.UpdateStaff(ctx, sess, id, req); err != nil {
		return err
	}
	invalidate(ctx, r.cache, staffPrefix)
	return nil
}

func (r *StaffRepository) ArchiveStaff(ctx context.Context, sess auth.Session, id string) error {
	if err := r.next.ArchiveStaff(ctx, sess, id); err != nil {
		return err
	}
	invalidate(ctx, r.cache, staffPrefix)
	return nil
}
