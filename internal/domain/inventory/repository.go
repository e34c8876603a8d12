package inventory

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type InventoryRepository interface {
	ListItems(ctx context.Context, sess auth.Session) ([]Item, error)
	UpdateItem(ctx context.Context, sess auth.Session, id string, req UpdateItemRequest) error
	ArchiveItem(ctx context.Context, sess auth.Session, id string) error
}
