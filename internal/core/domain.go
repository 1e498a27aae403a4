package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted date form.
const DateLayout = "2006-01-02"

type (
	Expense struct {
		ID          int
		Date        string // ISO YYYY-MM-DD
		Amount      decimal.Decimal
		Category    string
		Description string
	}

	// Ledger is the in-memory collection of expenses. It is owned by the
	// menu loop and handed to each operation explicitly.
	Ledger struct {
		items []Expense
	}
)

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyDescription = errors.New("empty description")
)

// ParseDate returns the normalized ISO date for s, or false when s is not a
// calendar date in YYYY-MM-DD form.
func ParseDate(s string) (string, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

// CleanText replaces tabs with spaces and trims the result.
func CleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\t", " "))
}

func (e Expense) Validate() error {
	if e.ID < 1 {
		return ErrInvalidID
	}
	if d, ok := ParseDate(e.Date); !ok || d != e.Date {
		return ErrInvalidDate
	}
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if CleanText(e.Category) == "" {
		return ErrEmptyCategory
	}
	if CleanText(e.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// NewLedger returns a ledger holding a copy of items in the given order.
func NewLedger(items []Expense) *Ledger {
	return &Ledger{items: append([]Expense(nil), items...)}
}

// Expenses returns a copy of the stored expenses in insertion order.
func (l *Ledger) Expenses() []Expense {
	return append([]Expense(nil), l.items...)
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// NextID returns the highest id in the ledger plus one.
func (l *Ledger) NextID() int {
	highest := 0
	for _, e := range l.items {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest + 1
}

// Add validates the record, assigns the next id and appends it.
// The ledger is left untouched when validation fails.
func (l *Ledger) Add(date string, amount decimal.Decimal, category, description string) (Expense, error) {
	e := Expense{
		ID:          l.NextID(),
		Date:        date,
		Amount:      amount,
		Category:    CleanText(category),
		Description: CleanText(description),
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	l.items = append(l.items, e)
	return e, nil
}
