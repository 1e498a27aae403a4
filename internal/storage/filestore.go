package storage

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"expenses/internal/core"
	applog "expenses/internal/log"
)

// Header is the first line of every data file.
const Header = "id\tdate\tamount\tcategory\tdescription"

const headerPrefix = "id\tdate\tamount"

// FileStore persists expenses as tab-separated values in a single file.
// Every load reads the whole file and every save rewrites it.
type FileStore struct {
	path   string
	logger *applog.Logger
}

func NewFileStore(path string, logger *applog.Logger) *FileStore {
	if logger == nil {
		logger = applog.Discard()
	}
	return &FileStore{
		path:   path,
		logger: logger.WithComponent(applog.ComponentStorage),
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// EnsureExists creates the data file, with only the header, and any missing
// parent directories. It does nothing when the file is already there.
func (s *FileStore) EnsureExists() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if os.IsExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create data file: %w", err)
	}
	if _, err := f.WriteString(Header + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close data file: %w", err)
	}
	s.logger.Info("Created data file", applog.FieldPath, s.path)
	return nil
}

// Load returns every well-formed record in file order. Malformed lines are
// skipped with a warning naming the line and the reason.
func (s *FileStore) Load() ([]core.Expense, error) {
	if err := s.EnsureExists(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var (
		expenses []core.Expense
		seen     = map[int]struct{}{}
		skipped  int
		lineNo   int
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 && strings.HasPrefix(strings.ToLower(line), headerPrefix) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := parseLine(line)
		if err == nil {
			if _, dup := seen[e.ID]; dup {
				err = fmt.Errorf("duplicate id %d", e.ID)
			}
		}
		if err != nil {
			skipped++
			s.logger.Warn("Skipping malformed line",
				applog.FieldPath, s.path,
				applog.FieldLine, lineNo,
				applog.FieldReason, err.Error())
			continue
		}
		seen[e.ID] = struct{}{}
		expenses = append(expenses, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan data file: %w", err)
	}

	s.logger.Info("Expenses loaded",
		applog.FieldPath, s.path,
		applog.FieldCount, len(expenses),
		applog.FieldSkipped, skipped)
	return expenses, nil
}

// Save replaces the data file with the header and one line per expense. The
// content is written to a temporary file in the same directory first and
// renamed over the target, so a failed write leaves the old file intact.
func (s *FileStore) Save(expenses []core.Expense) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(Header + "\n")
	for _, e := range expenses {
		buf.WriteString(formatLine(e))
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}

	s.logger.Info("Expenses saved", applog.FieldPath, s.path, applog.FieldCount, len(expenses))
	return nil
}

func parseLine(line string) (core.Expense, error) {
	// A description may carry literal tabs; everything after the fourth
	// separator belongs to it.
	parts := strings.SplitN(line, "\t", 5)
	if len(parts) < 5 {
		return core.Expense{}, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Expense{}, fmt.Errorf("bad id %q", parts[0])
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return core.Expense{}, fmt.Errorf("bad amount %q", parts[2])
	}
	e := core.Expense{
		ID:          id,
		Date:        strings.TrimSpace(parts[1]),
		Amount:      amount,
		Category:    parts[3],
		Description: parts[4],
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}

func formatLine(e core.Expense) string {
	return strings.Join([]string{
		strconv.Itoa(e.ID),
		e.Date,
		core.FormatAmount(e.Amount),
		core.CleanText(e.Category),
		core.CleanText(e.Description),
	}, "\t")
}
