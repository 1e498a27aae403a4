// Package tracker implements the interactive expense operations and the
// numbered menu that drives them.
package tracker

import (
	"fmt"

	"expenses/internal/core"
	applog "expenses/internal/log"
	"expenses/internal/query"
)

// Store loads and saves the full expense collection.
type Store interface {
	Load() ([]core.Expense, error)
	Save(expenses []core.Expense) error
	Path() string
}

// Tracker runs operations against a ledger passed in by the caller. It never
// keeps a ledger of its own.
type Tracker struct {
	console *Console
	store   Store
	logger  *applog.Logger
}

func New(console *Console, store Store, logger *applog.Logger) *Tracker {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Tracker{
		console: console,
		store:   store,
		logger:  logger.WithComponent(applog.ComponentTracker),
	}
}

// Add prompts for each field in turn and appends the expense only when all
// of them are valid.
func (t *Tracker) Add(ledger *core.Ledger) error {
	t.printTitle("Add Expense")

	in, err := t.console.Prompt("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	date, ok := core.ParseDate(in)
	if !ok {
		t.console.Errorf("Invalid date. Use YYYY-MM-DD (example: 2026-02-20).")
		return nil
	}

	in, err = t.console.Prompt("Amount (non-negative): ")
	if err != nil {
		return err
	}
	amount, ok := core.ParseAmount(in)
	if !ok {
		t.console.Errorf("Invalid amount. Enter a non-negative number (example: 12.50).")
		return nil
	}

	in, err = t.console.Prompt("Category: ")
	if err != nil {
		return err
	}
	category := core.CleanText(in)
	if category == "" {
		t.console.Errorf("Category cannot be empty.")
		return nil
	}

	in, err = t.console.Prompt("Description: ")
	if err != nil {
		return err
	}
	description := core.CleanText(in)
	if description == "" {
		t.console.Errorf("Description cannot be empty.")
		return nil
	}

	e, err := ledger.Add(date, amount, category, description)
	if err != nil {
		t.console.Errorf("%v.", err)
		return nil
	}
	fields := applog.NewFields().
		WithOperation(applog.OpAdd).
		WithExpense(e.ID, e.Date, core.FormatAmount(e.Amount), e.Category, e.Description)
	t.logger.Debug("Expense added", fields.ToSlice()...)
	t.console.Successf("Added expense with ID %d.", e.ID)
	return nil
}

// List shows the expenses in an optional date range, oldest first.
func (t *Tracker) List(ledger *core.Ledger) error {
	t.printTitle("List Expenses")
	if ledger.Len() == 0 {
		t.console.Println("No expenses found.")
		return nil
	}

	r, ok, err := t.promptDateRange()
	if err != nil || !ok {
		return err
	}

	rows := query.SortByDate(query.ByDate(ledger.Expenses(), r))
	if len(rows) == 0 {
		t.console.Println("\nNo expenses match your filters.")
		return nil
	}
	t.printTable(rows)
	t.console.Printf("\nShowing %d expense(s).\n", len(rows))
	return nil
}

// Search shows the expenses whose category or description contains a
// keyword, optionally limited to a date range.
func (t *Tracker) Search(ledger *core.Ledger) error {
	t.printTitle("Search Expenses")
	if ledger.Len() == 0 {
		t.console.Println("No expenses found.")
		return nil
	}

	keyword, err := t.console.Prompt("Keyword (searches Category + Description): ")
	if err != nil {
		return err
	}
	if keyword == "" {
		t.console.Errorf("keyword cannot be empty.")
		return nil
	}

	r, ok, err := t.promptDateRange()
	if err != nil || !ok {
		return err
	}

	rows := query.SortByDate(query.ByKeyword(query.ByDate(ledger.Expenses(), r), keyword))
	if len(rows) == 0 {
		t.console.Println("\nNo expenses match your search.")
		return nil
	}
	t.printTable(rows)
	t.console.Printf("\nFound %d match(es).\n", len(rows))
	return nil
}

// Summary prints count, total, average and per-category totals.
func (t *Tracker) Summary(ledger *core.Ledger) error {
	t.printTitle("Summary")
	if ledger.Len() == 0 {
		t.console.Println("No expenses found.")
		return nil
	}

	r, ok, err := t.promptDateRange()
	if err != nil || !ok {
		return err
	}

	subset := query.ByDate(ledger.Expenses(), r)
	if len(subset) == 0 {
		t.console.Println("\nNo expenses match your filters.")
		return nil
	}
	t.printSummary(query.Summarize(subset))
	return nil
}

// Save writes the whole ledger to the store.
func (t *Tracker) Save(ledger *core.Ledger) error {
	if err := t.store.Save(ledger.Expenses()); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	t.console.Successf("Saved to %s.", t.store.Path())
	return nil
}

// Load returns a fresh ledger holding the store's contents.
func (t *Tracker) Load() (*core.Ledger, error) {
	items, err := t.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	return core.NewLedger(items), nil
}

// promptDateRange asks for optional bounds. ok is false when an entry was
// invalid; the error has been printed and the caller must stop.
func (t *Tracker) promptDateRange() (query.DateRange, bool, error) {
	var r query.DateRange

	in, err := t.console.Prompt("Start date (YYYY-MM-DD) [blank for none]: ")
	if err != nil {
		return r, false, err
	}
	if in != "" {
		d, ok := core.ParseDate(in)
		if !ok {
			t.console.Errorf("invalid start date.")
			return r, false, nil
		}
		r.Start = d
	}

	in, err = t.console.Prompt("End date (YYYY-MM-DD) [blank for none]: ")
	if err != nil {
		return r, false, err
	}
	if in != "" {
		d, ok := core.ParseDate(in)
		if !ok {
			t.console.Errorf("invalid end date.")
			return r, false, nil
		}
		r.End = d
	}

	if r.Start != "" && r.End != "" && r.Start > r.End {
		t.console.Errorf("start date cannot be after end date.")
		return r, false, nil
	}
	return r, true, nil
}
