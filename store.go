package etsy

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Go2Engle/EtsyTrackr/date"
)

const (
	statementsDirName = "statements"
	receiptsDirName   = "receipts"
	expensesFileName  = "expenses.jsonl"

	processedPrefix = "processed_"
	processedExt    = ".csv"
)

// Store is the on-disk database: a storage root holding one processed
// statement file per calendar month, the expense ledger, and receipt files.
//
// The store does no internal locking. It is meant for a single process with
// one import running at a time; writes are last-writer-wins at whole-file
// granularity.
type Store struct {
	root string
}

// Open prepares the storage root, creating the layout if needed.
func Open(root string) (*Store, error) {
	s := &Store{root: root}
	for _, dir := range []string{s.statementsDir(), s.receiptsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create storage directory %q: %w", dir, err)
		}
	}
	return s, nil
}

func (s *Store) Root() string          { return s.root }
func (s *Store) statementsDir() string { return filepath.Join(s.root, statementsDirName) }
func (s *Store) receiptsDir() string   { return filepath.Join(s.root, receiptsDirName) }
func (s *Store) expensesFile() string  { return filepath.Join(s.root, expensesFileName) }

// ImportResult reports what an import produced.
type ImportResult struct {
	// Month is the calendar month the statement was filed under, "YYYY-MM".
	Month string
	// Path of the processed statement file written.
	Path string
	// Records is the number of consolidated records persisted.
	Records int
	// Stats counts processed, dropped and failed rows.
	Stats AggregateStats
	// RowErrors collects the per-row amount failures that were skipped.
	// The import still succeeded; callers decide if they care.
	RowErrors error
}

// ImportStatement ingests one raw statement export.
//
// The export is decoded, aggregated into consolidated records and persisted
// under the month of the first (newest) record, replacing any existing file
// for that month wholesale. On any error nothing is written: the processed
// file is staged in a temporary file and renamed into place.
func (s *Store) ImportStatement(r io.Reader) (*ImportResult, error) {
	rows, err := DecodeStatement(r)
	if err != nil {
		return nil, err
	}
	records, stats, rowErrs := Aggregate(rows)
	if len(records) == 0 {
		return nil, fmt.Errorf("statement produced no consolidated records (%d rows dropped)", stats.Dropped)
	}

	month := records[0].Date.Format(date.MonthKey)
	path := filepath.Join(s.statementsDir(), processedPrefix+month+processedExt)

	tmp, err := os.CreateTemp(s.statementsDir(), processedPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("cannot stage processed statement: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := EncodeRecords(tmp, records); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("cannot write processed statement: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("cannot replace processed statement %q: %w", path, err)
	}

	return &ImportResult{
		Month:     month,
		Path:      path,
		Records:   len(records),
		Stats:     stats,
		RowErrors: rowErrs,
	}, nil
}

// ImportFile imports a raw statement export from a file.
func (s *Store) ImportFile(path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open statement %q: %w", path, err)
	}
	defer f.Close()
	return s.ImportStatement(f)
}

// processedFiles lists the persisted per-month statement files.
func (s *Store) processedFiles() ([]string, error) {
	entries, err := os.ReadDir(s.statementsDir())
	if err != nil {
		return nil, fmt.Errorf("cannot list statements: %w", err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, processedPrefix) && strings.HasSuffix(name, processedExt) {
			files = append(files, filepath.Join(s.statementsDir(), name))
		}
	}
	slices.Sort(files)
	return files, nil
}

// ExistingOrderIDs returns the set of all order identifiers present in the
// persisted statements. Import flows use it to detect an export that was
// already processed. A statement file that fails to read is logged and
// skipped rather than failing the scan.
func (s *Store) ExistingOrderIDs() (map[string]bool, error) {
	files, err := s.processedFiles()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	for _, path := range files {
		records, err := s.readProcessed(path)
		if err != nil {
			log.Printf("skipping %s: %v", filepath.Base(path), err)
			continue
		}
		for _, rec := range records {
			if rec.DisplayID != "" {
				ids[rec.DisplayID] = true
			}
		}
	}
	return ids, nil
}

// ClearSales deletes every persisted statement file. Irreversible.
func (s *Store) ClearSales() error {
	files, err := s.processedFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("cannot remove %q: %w", path, err)
		}
	}
	return nil
}

// Summary loads every persisted statement, keeps the records whose date falls
// in rng, and returns them sorted by date descending. A zero range means all.
func (s *Store) Summary(rng date.Range) ([]*Record, error) {
	files, err := s.processedFiles()
	if err != nil {
		return nil, err
	}
	var all []*Record
	for _, path := range files {
		records, err := s.readProcessed(path)
		if err != nil {
			log.Printf("skipping %s: %v", filepath.Base(path), err)
			continue
		}
		for _, rec := range records {
			if rng.Contains(rec.Date) {
				all = append(all, rec)
			}
		}
	}
	slices.SortStableFunc(all, func(a, z *Record) int {
		return z.Date.Compare(a.Date)
	})
	return all, nil
}

func (s *Store) readProcessed(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeRecords(f)
}

// Migrate copies all store data (expenses, receipts, processed statements) to
// a new storage root and returns a Store on it. The old data is left behind.
func (s *Store) Migrate(newRoot string) (*Store, error) {
	if newRoot == s.root {
		return nil, fmt.Errorf("new storage location is the current one")
	}
	dst, err := Open(newRoot)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.expensesFile()); err == nil {
		if err := copyFile(s.expensesFile(), dst.expensesFile()); err != nil {
			return nil, err
		}
	}
	for _, dir := range []string{receiptsDirName, statementsDirName} {
		entries, err := os.ReadDir(filepath.Join(s.root, dir))
		if err != nil {
			return nil, fmt.Errorf("cannot list %q: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			src := filepath.Join(s.root, dir, e.Name())
			if err := copyFile(src, filepath.Join(newRoot, dir, e.Name())); err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %q: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", dst, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("cannot copy %q: %w", src, err)
	}
	return out.Close()
}
