package tracker

import (
	"strings"

	"expenses/internal/core"
)

const (
	tableHeader = "ID  Date       Amount   Category   Description"
	tableRule   = "--  ---------  -------  ---------  ------------------------------"
)

func (t *Tracker) printTable(rows []core.Expense) {
	t.console.Println()
	t.console.Println(tableHeader)
	t.console.Println(tableRule)
	for _, e := range rows {
		t.console.Printf("%-3d %-10s %7s  %-9s  %s\n", e.ID, e.Date, core.FormatAmount(e.Amount), e.Category, e.Description)
	}
}

func (t *Tracker) printSummary(s core.Summary) {
	t.console.Printf("\nCount: %d\n", s.Count)
	t.console.Printf("Total: %s\n", core.FormatAmount(s.Total))
	t.console.Printf("Average: %s\n", core.FormatAmount(s.Average))

	t.console.Println()
	t.console.Println("Totals by Category")
	t.console.Println("------------------")
	for _, c := range s.ByCategory {
		t.console.Printf("%-15s %s\n", c.Name, core.FormatAmount(c.Amount))
	}
}

func (t *Tracker) printTitle(title string) {
	t.console.Println()
	t.console.Println(title)
	t.console.Println(strings.Repeat("-", len(title)))
}
