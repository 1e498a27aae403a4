package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// Summary is the aggregate view of a set of expenses.
type Summary struct {
	Count      int
	Total      decimal.Decimal
	Average    decimal.Decimal
	ByCategory []CategoryAmount // sorted by amount desc, then name
}
