package inventory

import "errors"

var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrInvalidItemType = errors.New("type must be 'supplement' or 'equipment'")
)
