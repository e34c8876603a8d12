package inventory

import (
	"context"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
)

type InventoryService interface {
	// List returns every item, or only items of itemType when it is not empty.
	List(ctx context.Context, sess auth.Session, itemType ItemType) ([]Item, error)
	Summary(ctx context.Context, sess auth.Session) (Summary, []Item, error)
	Update(ctx context.Context, sess auth.Session, id string, req UpdateItemRequest) error
	Archive(ctx context.Context, sess auth.Session, id string) error
}
