package cached

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/staff"
	"github.com/gymrepublic/gym-console/internal/pkg/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dst interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dst)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *memoryCache) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

type fakeStaffRepo struct {
	lists     int
	positions int
	updateErr error
}

func (f *fakeStaffRepo) ListStaff(_ context.Context, _ auth.Session, search string) ([]staff.Staff, error) {
	f.lists++
	return []staff.Staff{{ID: "1", FullName: "Ana Cruz " + search}}, nil
}

func (f *fakeStaffRepo) ListPositions(context.Context, auth.Session) ([]staff.Position, error) {
	f.positions++
	return []staff.Position{{ID: "2", Name: "Coach"}}, nil
}

func (f *fakeStaffRepo) UpdateStaff(context.Context, auth.Session, string, staff.UpdateStaffRequest) error {
	return f.updateErr
}

func (f *fakeStaffRepo) ArchiveStaff(context.Context, auth.Session, string) error {
	return nil
}

func TestStaffRepository(t *testing.T) {
	ctx := context.Background()
	sess := auth.Session{UserID: "1"}
	next := &fakeStaffRepo{}
	repo := NewStaffRepository(next, newMemoryCache(), time.Minute)

	first, err := repo.ListStaff(ctx, sess, "Ana")
	require.NoError(t, err)
	second, err := repo.ListStaff(ctx, sess, " ana ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.lists)

	_, err = repo.ListPositions(ctx, sess)
	require.NoError(t, err)
	_, err = repo.ListPositions(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 1, next.positions)

	t.Run("failed update keeps the cache", func(t *testing.T) {
		next.updateErr = errors.New("rejected")
		assert.Error(t, repo.UpdateStaff(ctx, sess, "1", staff.UpdateStaffRequest{}))
		_, _ = repo.ListStaff(ctx, sess, "Ana")
		assert.Equal(t, 1, next.lists)
	})

	t.Run("archive invalidates", func(t *testing.T) {
		require.NoError(t, repo.ArchiveStaff(ctx, sess, "1"))
		_, _ = repo.ListStaff(ctx, sess, "Ana")
		_, _ = repo.ListPositions(ctx, sess)
		assert.Equal(t, 2, next.lists)
		assert.Equal(t, 2, next.positions)
	})
}

type fakeInventoryRepo struct {
	lists int
}

func (f *fakeInventoryRepo) ListItems(context.Context, auth.Session) ([]inventory.Item, error) {
	f.lists++
	return []inventory.Item{{ID: "1", Name: "Whey", Type: inventory.TypeSupplement, Quantity: 3, Price: decimal.RequireFromString("1250.50")}}, nil
}

func (f *fakeInventoryRepo) UpdateItem(context.Context, auth.Session, string, inventory.UpdateItemRequest) error {
	return nil
}

func (f *fakeInventoryRepo) ArchiveItem(context.Context, auth.Session, string) error {
	return nil
}

func TestInventoryRepository(t *testing.T) {
	ctx := context.Background()
	next := &fakeInventoryRepo{}
	repo := NewInventoryRepository(next, newMemoryCache(), 0)

	_, err := repo.ListItems(ctx, auth.Session{})
	require.NoError(t, err)
	items, err := repo.ListItems(ctx, auth.Session{})
	require.NoError(t, err)
	assert.Equal(t, 1, next.lists)
	require.Len(t, items, 1)
	assert.True(t, decimal.RequireFromString("3751.5").Equal(items[0].StockValue()))

	require.NoError(t, repo.UpdateItem(ctx, auth.Session{}, "1", inventory.UpdateItemRequest{}))
	_, err = repo.ListItems(ctx, auth.Session{})
	require.NoError(t, err)
	assert.Equal(t, 2, next.lists)
}
