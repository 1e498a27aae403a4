package tracker

import (
	"errors"
	"io"

	"expenses/internal/core"
	applog "expenses/internal/log"
)

func (t *Tracker) printMenu() {
	t.console.Println()
	t.console.Println("===== Expense Tracker =====")
	t.console.Println("1) Add expense")
	t.console.Println("2) List expenses")
	t.console.Println("3) Search expenses")
	t.console.Println("4) Summary")
	t.console.Println("5) Save")
	t.console.Println("6) Load")
	t.console.Println("7) Quit")
}

// Run loads the ledger once and serves menu choices until the user quits or
// the input ends. The ledger lives only in this loop; unsaved additions are
// gone when it returns. Filesystem failures end the loop with an error.
func (t *Tracker) Run() error {
	ledger, err := t.Load()
	if err != nil {
		return err
	}
	t.logger.Info("Tracker started", applog.FieldPath, t.store.Path(), applog.FieldCount, ledger.Len())

	for {
		t.printMenu()
		choice, err := t.console.Prompt("Choose an option (1-7): ")
		if err != nil {
			return t.stop(err)
		}

		switch choice {
		case "1":
			err = t.Add(ledger)
		case "2":
			err = t.List(ledger)
		case "3":
			err = t.Search(ledger)
		case "4":
			err = t.Summary(ledger)
		case "5":
			err = t.Save(ledger)
		case "6":
			var loaded *core.Ledger
			if loaded, err = t.Load(); err == nil {
				ledger = loaded
				t.console.Successf("Loaded from %s.", t.store.Path())
			}
		case "7":
			t.console.Println("Goodbye!")
			return nil
		default:
			t.console.Println("Invalid choice. Try again.")
		}
		if err != nil {
			return t.stop(err)
		}
	}
}

// stop turns the end of input into a normal exit.
func (t *Tracker) stop(err error) error {
	if errors.Is(err, io.EOF) {
		t.console.Println()
		t.console.Println("Goodbye!")
		t.logger.Info("Input closed", applog.FieldOperation, applog.OpShutdown)
		return nil
	}
	return err
}
