// Package query holds the pure helpers used by the list, search and summary
// operations. None of them mutate their input.
package query

import (
	"strings"

	"expenses/internal/core"
)

// DateRange is an inclusive date interval. An empty bound is unbounded.
type DateRange struct {
	Start string
	End   string
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// Contains compares ISO dates as strings, which orders them correctly
// because they are zero padded.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// ByDate returns the expenses whose date lies within r.
func ByDate(items []core.Expense, r DateRange) []core.Expense {
	out := make([]core.Expense, 0, len(items))
	for _, e := range items {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// ByKeyword returns the expenses whose category or description contains
// keyword, ignoring case.
func ByKeyword(items []core.Expense, keyword string) []core.Expense {
	needle := strings.ToLower(keyword)
	out := make([]core.Expense, 0, len(items))
	for _, e := range items {
		hay := strings.ToLower(e.Category + " " + e.Description)
		if strings.Contains(hay, needle) {
			out = append(out, e)
		}
	}
	return out
}
