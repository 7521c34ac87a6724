package etsy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Go2Engle/EtsyTrackr/date"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestImportStatement(t *testing.T) {
	s := newTestStore(t)
	res, err := s.ImportStatement(strings.NewReader(sampleStatement))
	if err != nil {
		t.Fatalf("ImportStatement: %v", err)
	}
	if res.Month != "2025-03" {
		t.Errorf("Month = %q, want 2025-03", res.Month)
	}
	if res.Records != 3 {
		t.Errorf("Records = %d, want 3", res.Records)
	}
	if filepath.Base(res.Path) != "processed_2025-03.csv" {
		t.Errorf("Path = %q, want processed_2025-03.csv", res.Path)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("processed file not written: %v", err)
	}
}

// Re-importing the same export replaces the month's file and leaves totals
// unchanged.
func TestImportStatementIdempotent(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ImportStatement(strings.NewReader(sampleStatement)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	first, err := s.Summary(date.Range{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if _, err := s.ImportStatement(strings.NewReader(sampleStatement)); err != nil {
		t.Fatalf("second import: %v", err)
	}
	second, err := s.Summary(date.Range{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("re-import changed record count: %d then %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Net.Equal(second[i].Net) {
			t.Errorf("record %q net changed on re-import", first[i].Key)
		}
	}
	files, err := s.processedFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("got %d processed files, want 1", len(files))
	}
}

func TestImportStatementEmpty(t *testing.T) {
	s := newTestStore(t)
	in := "Date,Type,Title,Info,Amount,Net\n" +
		"01-Mar-25,Deposit,Deposit sent to bank,,--,--\n"
	if _, err := s.ImportStatement(strings.NewReader(in)); err == nil {
		t.Fatal("expected an error for a statement yielding no records")
	}
	files, err := s.processedFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("failed import must write nothing, found %v", files)
	}
}

func TestExistingOrderIDs(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ImportStatement(strings.NewReader(sampleStatement)); err != nil {
		t.Fatalf("ImportStatement: %v", err)
	}
	ids, err := s.ExistingOrderIDs()
	if err != nil {
		t.Fatalf("ExistingOrderIDs: %v", err)
	}
	for _, want := range []string{"123", "Listing #42", "Label #7"} {
		if !ids[want] {
			t.Errorf("ids missing %q: %v", want, ids)
		}
	}
}

func TestClearSales(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ImportStatement(strings.NewReader(sampleStatement)); err != nil {
		t.Fatalf("ImportStatement: %v", err)
	}
	if err := s.ClearSales(); err != nil {
		t.Fatalf("ClearSales: %v", err)
	}
	records, err := s.Summary(date.Range{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records after clear, want 0", len(records))
	}
}

func TestSummaryRange(t *testing.T) {
	s := newTestStore(t)
	april := "Date,Type,Title,Info,Amount,Net\n" +
		"02-Apr-25,Sale,Order #900,,$40.00,$40.00\n"
	if _, err := s.ImportStatement(strings.NewReader(sampleStatement)); err != nil {
		t.Fatalf("march import: %v", err)
	}
	if _, err := s.ImportStatement(strings.NewReader(april)); err != nil {
		t.Fatalf("april import: %v", err)
	}

	all, err := s.Summary(date.Range{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d records over the open range, want 4", len(all))
	}
	// newest first across month files
	if all[0].Key != "900" {
		t.Errorf("all[0].Key = %q, want the April order first", all[0].Key)
	}

	march := date.MustParse("2025-03-01").StartOf(date.Monthly)
	rng := date.Range{From: march, To: march.EndOf(date.Monthly)}
	only, err := s.Summary(rng)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(only) != 3 {
		t.Errorf("got %d records for March, want 3", len(only))
	}
	for _, rec := range only {
		if rec.Key == "900" {
			t.Errorf("April order leaked into the March range")
		}
	}
}

func TestMigrate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ImportStatement(strings.NewReader(sampleStatement)); err != nil {
		t.Fatalf("ImportStatement: %v", err)
	}
	if _, err := s.AddExpense(Expense{Date: day("2025-03-10"), Description: "Boxes", Amount: AmountOf(12.5)}); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	dst, err := s.Migrate(t.TempDir())
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	records, err := dst.Summary(date.Range{})
	if err != nil {
		t.Fatalf("Summary on migrated store: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d migrated records, want 3", len(records))
	}
	expenses, err := dst.Expenses(date.Range{})
	if err != nil {
		t.Fatalf("Expenses on migrated store: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Description != "Boxes" {
		t.Errorf("migrated expenses = %+v", expenses)
	}

	if _, err := s.Migrate(s.Root()); err == nil {
		t.Error("expected an error migrating a store onto itself")
	}
}
