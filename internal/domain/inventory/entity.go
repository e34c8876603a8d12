package inventory

import "github.com/shopspring/decimal"

type ItemType string

const (
	TypeSupplement ItemType = "supplement"
	TypeEquipment  ItemType = "equipment"
)

func (t ItemType) Valid() bool {
	return t == TypeSupplement || t == TypeEquipment
}

type Item struct {
	ID               string
	ItemCode         string
	Name             string
	ShortDescription string
	Type             ItemType
	Quantity         int
	Price            decimal.Decimal
}

// StockValue is price times quantity.
func (i Item) StockValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type TypeTotals struct {
	Items      int
	Quantity   int
	StockValue decimal.Decimal
}

type Summary struct {
	TotalItems    int
	TotalQuantity int
	StockValue    decimal.Decimal
	ByType        map[ItemType]TypeTotals
	// LowestStock and HighestStock are nil for an empty inventory.
	LowestStock  *Item
	HighestStock *Item
}
