package customer

import "github.com/shopspring/decimal"

type Customer struct {
	ID             string
	FullName       string
	Gender         string
	Email          string
	ContactNo      string
	Address        string
	ChosenServices string
	Instructor     string
	Plan           string
	Amount         decimal.Decimal
	IsActive       bool
}
