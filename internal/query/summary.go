package query

import (
	"github.com/shopspring/decimal"

	"expenses/internal/core"
)

// Summarize computes count, total, mean and per-category totals of items.
func Summarize(items []core.Expense) core.Summary {
	s := core.Summary{Total: decimal.Zero, Average: decimal.Zero}
	index := map[string]int{}
	for _, e := range items {
		s.Count++
		s.Total = s.Total.Add(e.Amount)
		i, ok := index[e.Category]
		if !ok {
			i = len(s.ByCategory)
			index[e.Category] = i
			s.ByCategory = append(s.ByCategory, core.CategoryAmount{Name: e.Category, Amount: decimal.Zero})
		}
		s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(e.Amount)
	}
	if s.Count > 0 {
		s.Average = s.Total.Div(decimal.NewFromInt(int64(s.Count)))
	}
	sortCategories(s.ByCategory)
	return s
}
