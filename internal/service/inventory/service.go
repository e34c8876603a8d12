package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/domain/upstream"
	"github.com/gymrepublic/gym-console/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type InventoryServiceImpl struct {
	inventoryRepo inventory.InventoryRepository
	notifier      notification.Notifier
}

func NewInventoryService(inventoryRepo inventory.InventoryRepository, notifier notification.Notifier) inventory.InventoryService {
	return &InventoryServiceImpl{
		inventoryRepo: inventoryRepo,
		notifier:      notifier,
	}
}

// List implements inventory.InventoryService.
func (s *InventoryServiceImpl) List(ctx context.Context, sess auth.Session, itemType inventory.ItemType) ([]inventory.Item, error) {
	if itemType != "" && !itemType.Valid() {
		return nil, inventory.ErrInvalidItemType
	}

	items, err := s.inventoryRepo.ListItems(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	if itemType == "" {
		return items, nil
	}

	filtered := make([]inventory.Item, 0, len(items))
	for _, item := range items {
		if item.Type == itemType {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Summary implements inventory.InventoryService. It returns the items the
// summary was computed from so reports print the same numbers.
func (s *InventoryServiceImpl) Summary(ctx context.Context, sess auth.Session) (inventory.Summary, []inventory.Item, error) {
	items, err := s.List(ctx, sess, "")
	if err != nil {
		return inventory.Summary{}, nil, err
	}
	return Summarize(items), items, nil
}

// Summarize totals items overall and per type. Ties for lowest and highest
// stock go to the first item listed.
func Summarize(items []inventory.Item) inventory.Summary {
	summary := inventory.Summary{
		StockValue: decimal.Zero,
		ByType:     make(map[inventory.ItemType]inventory.TypeTotals),
	}

	for i := range items {
		item := items[i]
		value := item.StockValue()

		summary.TotalItems++
		summary.TotalQuantity += item.Quantity
		summary.StockValue = summary.StockValue.Add(value)

		totals := summary.ByType[item.Type]
		totals.Items++
		totals.Quantity += item.Quantity
		totals.StockValue = totals.StockValue.Add(value)
		summary.ByType[item.Type] = totals

		if summary.LowestStock == nil || item.Quantity < summary.LowestStock.Quantity {
			summary.LowestStock = &items[i]
		}
		if summary.HighestStock == nil || item.Quantity > summary.HighestStock.Quantity {
			summary.HighestStock = &items[i]
		}
	}
	return summary
}

// Update implements inventory.InventoryService.
func (s *InventoryServiceImpl) Update(ctx context.Context, sess auth.Session, id string, req inventory.UpdateItemRequest) error {
	if _, ok := validator.IsValidID(id); !ok {
		return inventory.ErrItemNotFound
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.inventoryRepo.UpdateItem(ctx, sess, id, req); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to update item")
		if errors.Is(err, upstream.ErrNotFound) {
			return inventory.ErrItemNotFound
		}
		return fmt.Errorf("failed to update item: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Item updated successfully")
	return nil
}

// Archive implements inventory.InventoryService.
func (s *InventoryServiceImpl) Archive(ctx context.Context, sess auth.Session, id string) error {
	if _, ok := validator.IsValidID(id); !ok {
		return inventory.ErrItemNotFound
	}

	if err := s.inventoryRepo.ArchiveItem(ctx, sess, id); err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to archive item")
		if errors.Is(err, upstream.ErrNotFound) {
			return inventory.ErrItemNotFound
		}
		return fmt.Errorf("failed to archive item: %w", err)
	}

	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, "Item archived successfully")
	return nil
}
