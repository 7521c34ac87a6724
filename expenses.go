package etsy

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Go2Engle/EtsyTrackr/date"
)

// Expense is a shop cost recorded by hand, independent of statement data.
// Expenses only meet statement records in the reporting layer, where they
// reduce profit.
type Expense struct {
	ID          int       `json:"id"`
	Date        date.Date `json:"date"`
	Description string    `json:"description"`
	Amount      Amount    `json:"amount"`
	Category    string    `json:"category,omitempty"`
	// Receipt is the filename of an attached receipt within the store's
	// receipts directory, if any.
	Receipt string `json:"receipt,omitempty"`
}

// Expenses returns the recorded expenses whose date falls in rng, sorted by
// date descending. A zero range means all. A missing expense file is an
// empty ledger, not an error.
func (s *Store) Expenses(rng date.Range) ([]Expense, error) {
	all, err := s.readExpenses()
	if err != nil {
		return nil, err
	}
	filtered := all[:0]
	for _, e := range all {
		if rng.Contains(e.Date) {
			filtered = append(filtered, e)
		}
	}
	slices.SortStableFunc(filtered, func(a, z Expense) int {
		return z.Date.Compare(a.Date)
	})
	return filtered, nil
}

// AddExpense records a new expense and returns its id, the current maximum
// plus one. The expense is appended to the expense file.
func (s *Store) AddExpense(e Expense) (int, error) {
	all, err := s.readExpenses()
	if err != nil {
		return 0, err
	}
	e.ID = 1
	for _, x := range all {
		if x.ID >= e.ID {
			e.ID = x.ID + 1
		}
	}

	f, err := os.OpenFile(s.expensesFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("cannot open expense file: %w", err)
	}
	defer f.Close()
	if err := encodeExpense(f, e); err != nil {
		return 0, err
	}
	return e.ID, nil
}

// AttachReceipt copies a receipt file into the store's receipts directory
// under the name "receipt_<id><ext>" and links it to the expense.
func (s *Store) AttachReceipt(id int, path string) (string, error) {
	all, err := s.readExpenses()
	if err != nil {
		return "", err
	}
	i := slices.IndexFunc(all, func(e Expense) bool { return e.ID == id })
	if i < 0 {
		return "", fmt.Errorf("expense %d not found", id)
	}

	name := fmt.Sprintf("receipt_%d%s", id, filepath.Ext(path))
	if err := copyFile(path, filepath.Join(s.receiptsDir(), name)); err != nil {
		return "", err
	}
	all[i].Receipt = name
	if err := s.writeExpenses(all); err != nil {
		return "", err
	}
	return name, nil
}

// ReceiptPath returns the full path of a receipt file by name.
func (s *Store) ReceiptPath(name string) string {
	return filepath.Join(s.receiptsDir(), name)
}

// DeleteExpense removes an expense and its receipt file, if it has one.
func (s *Store) DeleteExpense(id int) error {
	all, err := s.readExpenses()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(all, func(e Expense) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("expense %d not found", id)
	}
	if receipt := all[i].Receipt; receipt != "" {
		path := s.ReceiptPath(receipt)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("cannot remove receipt %q: %w", path, err)
		}
	}
	all = slices.Delete(all, i, i+1)
	return s.writeExpenses(all)
}

// readExpenses decodes the expense file, one JSON object per line.
func (s *Store) readExpenses() ([]Expense, error) {
	f, err := os.Open(s.expensesFile())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open expense file: %w", err)
	}
	defer f.Close()
	return decodeExpenses(f)
}

func decodeExpenses(r io.Reader) ([]Expense, error) {
	var expenses []Expense
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var e Expense
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("cannot parse expense line %q: %w", string(line), err)
		}
		expenses = append(expenses, e)
	}
	return expenses, scanner.Err()
}

func encodeExpense(w io.Writer, e Expense) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cannot marshal expense %d: %w", e.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write expense %d: %w", e.ID, err)
	}
	return nil
}

// writeExpenses rewrites the whole expense file through a temporary file.
func (s *Store) writeExpenses(expenses []Expense) error {
	tmp, err := os.CreateTemp(s.root, expensesFileName+"*")
	if err != nil {
		return fmt.Errorf("cannot stage expense file: %w", err)
	}
	defer os.Remove(tmp.Name())
	for _, e := range expenses {
		if err := encodeExpense(tmp, e); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write expense file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.expensesFile()); err != nil {
		return fmt.Errorf("cannot replace expense file: %w", err)
	}
	return nil
}
