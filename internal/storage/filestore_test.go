package storage

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenses/internal/core"
	applog "expenses/internal/log"
)

func newStore(t *testing.T) (*FileStore, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Level: slog.LevelInfo, Output: &buf})
	path := filepath.Join(t.TempDir(), "data", "expenses.tsv")
	return NewFileStore(path, logger), &buf
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestLoadMissingFileCreatesHeaderOnly(t *testing.T) {
	s, _ := newStore(t)

	expenses, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, expenses)
	assert.Equal(t, Header+"\n", readFile(t, s.Path()))
}

func TestEnsureExistsIsIdempotent(t *testing.T) {
	s, _ := newStore(t)
	writeFile(t, s.Path(), Header+"\n1\t2026-01-01\t1.00\tFood\tLunch\n")

	require.NoError(t, s.EnsureExists())
	require.NoError(t, s.EnsureExists())
	assert.Equal(t, Header+"\n1\t2026-01-01\t1.00\tFood\tLunch\n", readFile(t, s.Path()))
}

func TestSaveWritesExpectedLine(t *testing.T) {
	s, _ := newStore(t)
	ledger := core.NewLedger(nil)
	_, err := ledger.Add("2026-02-20", decimal.RequireFromString("12.5"), "Food", "Lunch")
	require.NoError(t, err)

	require.NoError(t, s.Save(ledger.Expenses()))

	assert.Equal(t, Header+"\n1\t2026-02-20\t12.50\tFood\tLunch\n", readFile(t, s.Path()))
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	in := []core.Expense{
		{ID: 3, Date: "2026-03-01", Amount: decimal.RequireFromString("800"), Category: "Rent", Description: "March"},
		{ID: 1, Date: "2026-01-01", Amount: decimal.RequireFromString("0"), Category: "Gift", Description: "Free coffee"},
		{ID: 2, Date: "2026-02-15", Amount: decimal.RequireFromString("40.105"), Category: "Food", Description: "Groceries"},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Date, out[i].Date)
		assert.Equal(t, core.FormatAmount(in[i].Amount), core.FormatAmount(out[i].Amount))
		assert.Equal(t, in[i].Category, out[i].Category)
		assert.Equal(t, in[i].Description, out[i].Description)
	}
}

func TestSaveCollapsesTabs(t *testing.T) {
	s, _ := newStore(t)
	in := []core.Expense{
		{ID: 1, Date: "2026-01-01", Amount: decimal.NewFromInt(2), Category: "\tFood\t", Description: "fish\tand chips "},
	}
	require.NoError(t, s.Save(in))

	assert.Equal(t, Header+"\n1\t2026-01-01\t2.00\tFood\tfish and chips\n", readFile(t, s.Path()))
}

func TestSaveReplacesFileAndLeavesNoTemp(t *testing.T) {
	s, _ := newStore(t)
	writeFile(t, s.Path(), "garbage\n")

	require.NoError(t, s.Save(nil))

	assert.Equal(t, Header+"\n", readFile(t, s.Path()))
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadKeepsTabsInDescription(t *testing.T) {
	s, _ := newStore(t)
	writeFile(t, s.Path(), Header+"\n1\t2026-01-01\t5.00\tFood\tfish\tand chips\n")

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "fish\tand chips", out[0].Description)
}

func TestLoadWithoutHeader(t *testing.T) {
	s, _ := newStore(t)
	writeFile(t, s.Path(), "7\t2026-01-01\t5\tFood\tLunch\n\n8\t2026-01-02\t6\tFood\tDinner\n")

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 7, out[0].ID)
	assert.Equal(t, 8, out[1].ID)
}

func TestLoadSkipsAndReportsMalformedLines(t *testing.T) {
	s, logs := newStore(t)
	content := strings.Join([]string{
		"ID\tDATE\tAMOUNT\tCATEGORY\tDESCRIPTION",
		"1\t2026-01-01\t5.00\tFood\tLunch",
		"x\t2026-01-01\t5.00\tFood\tbad id",
		"2\t2026-01-01\tfive\tFood\tbad amount",
		"3\t2026-01-01\t5.00\tFood",
		"4\t2026-02-30\t5.00\tFood\tbad date",
		"5\t2026-01-01\t-1\tFood\tnegative",
		"1\t2026-01-02\t1.00\tFood\tduplicate",
		"   ",
		"6\t2026-01-03\t1.00\tFood\tok",
	}, "\n") + "\n"
	writeFile(t, s.Path(), content)

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 6, out[1].ID)

	text := logs.String()
	assert.Equal(t, 6, strings.Count(text, "Skipping malformed line"))
	for _, line := range []string{"line=3", "line=4", "line=5", "line=6", "line=7", "line=8"} {
		assert.Contains(t, text, line)
	}
	assert.Contains(t, text, "skipped=6")
}

func TestLoadUnreadablePathFails(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, nil)

	_, err := s.Load()
	assert.Error(t, err)
}
