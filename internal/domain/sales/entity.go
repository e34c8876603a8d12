package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tag string

const (
	TagMonthly Tag = "monthly"
	TagSession Tag = "session"
)

type Line struct {
	ExerciseName string
	Tag          Tag
}

// Membership is an exercise transaction: one or more memberships or sessions
// bought together.
type Membership struct {
	ID              string
	TransactionCode string
	TotalPrice      decimal.Decimal
	CreatedAt       time.Time
	Lines           []Line
}

// HasTag reports whether any line of the transaction carries tag.
func (m Membership) HasTag(tag Tag) bool {
	for _, l := range m.Lines {
		if l.Tag == tag {
			return true
		}
	}
	return false
}

func (m Membership) Services() []string {
	names := make([]string, 0, len(m.Lines))
	for _, l := range m.Lines {
		names = append(names, l.ExerciseName)
	}
	return names
}

// ProductSale is a cart checkout of inventory products.
type ProductSale struct {
	ID              string
	TransactionCode string
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
}

// Overview groups sales the way the sales report shows them. A transaction
// with both tags appears in both Monthly and Daily.
type Overview struct {
	Monthly      []Membership
	Daily        []Membership
	Products     []ProductSale
	MonthlyTotal decimal.Decimal
	DailyTotal   decimal.Decimal
	ProductTotal decimal.Decimal
}

func (o Overview) GrandTotal() decimal.Decimal {
	return o.MonthlyTotal.Add(o.DailyTotal).Add(o.ProductTotal)
}
