package query

import (
	"cmp"
	"slices"
	"strings"

	"expenses/internal/core"
)

// SortByDate returns a copy of items ordered by date, then id.
func SortByDate(items []core.Expense) []core.Expense {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b core.Expense) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func sortCategories(cats []core.CategoryAmount) {
	slices.SortStableFunc(cats, func(a, b core.CategoryAmount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
