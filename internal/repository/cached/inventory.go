package cached

import (
	"context"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/pkg/cache"
)

const inventoryPrefix = "inventory:"

type InventoryRepository struct {
	next  inventory.InventoryRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewInventoryRepository(next inventory.InventoryRepository, c cache.Cache, ttl time.Duration) *InventoryRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InventoryRepository{next: next, cache: c, ttl: ttl}
}

func (r *InventoryRepository) ListItems(ctx context.Context, sess auth.Session) ([]inventory.Item, error) {
	return load(ctx, r.cache, inventoryPrefix+"items", r.ttl, func() ([]inventory.Item, error) {
		return r.next.ListItems(ctx, sess)
	})
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, sess auth.Session, id string, req inventory.UpdateItemRequest) error {
	if err := r.next.UpdateItem(ctx, sess, id, req); err != nil {
		return err
	}
	invalidate(ctx, r.cache, inventoryPrefix)
	return nil
}

func (r *InventoryRepository) ArchiveItem(ctx context.Context, sess auth.Session, id string) error {
	if err := r.next.ArchiveItem(ctx, sess, id); err != nil {
		return err
	}
	invalidate(ctx, r.cache, inventoryPrefix)
	return nil
}
