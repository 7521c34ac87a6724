package etsy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Go2Engle/EtsyTrackr/date"
)

func TestAddExpenseAssignsIDs(t *testing.T) {
	s := newTestStore(t)
	first, err := s.AddExpense(Expense{Date: day("2025-03-10"), Description: "Boxes", Amount: AmountOf(12.5)})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	second, err := s.AddExpense(Expense{Date: day("2025-03-12"), Description: "Tape", Amount: AmountOf(4), Category: "Supplies"})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if first != 1 || second != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first, second)
	}

	expenses, err := s.Expenses(date.Range{})
	if err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(expenses))
	}
	// newest first
	if expenses[0].Description != "Tape" || expenses[1].Description != "Boxes" {
		t.Errorf("order = %q, %q, want Tape then Boxes", expenses[0].Description, expenses[1].Description)
	}
}

func TestExpensesRange(t *testing.T) {
	s := newTestStore(t)
	for _, e := range []Expense{
		{Date: day("2025-02-20"), Description: "February", Amount: AmountOf(1)},
		{Date: day("2025-03-10"), Description: "March", Amount: AmountOf(2)},
	} {
		if _, err := s.AddExpense(e); err != nil {
			t.Fatalf("AddExpense: %v", err)
		}
	}
	march := day("2025-03-01")
	expenses, err := s.Expenses(date.Range{From: march, To: march.EndOf(date.Monthly)})
	if err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Description != "March" {
		t.Errorf("expenses = %+v, want only the March entry", expenses)
	}
}

func TestExpensesMissingFile(t *testing.T) {
	s := newTestStore(t)
	expenses, err := s.Expenses(date.Range{})
	if err != nil {
		t.Fatalf("Expenses on empty store: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("got %d expenses, want none", len(expenses))
	}
}

func TestAttachAndDeleteReceipt(t *testing.T) {
	s := newTestStore(t)
	id, err := s.AddExpense(Expense{Date: day("2025-03-10"), Description: "Boxes", Amount: AmountOf(12.5)})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	src := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(src, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}
	name, err := s.AttachReceipt(id, src)
	if err != nil {
		t.Fatalf("AttachReceipt: %v", err)
	}
	if name != "receipt_1.pdf" {
		t.Errorf("receipt name = %q, want receipt_1.pdf", name)
	}
	if _, err := os.Stat(s.ReceiptPath(name)); err != nil {
		t.Errorf("receipt file not copied: %v", err)
	}

	expenses, err := s.Expenses(date.Range{})
	if err != nil {
		t.Fatal(err)
	}
	if expenses[0].Receipt != name {
		t.Errorf("expense Receipt = %q, want %q", expenses[0].Receipt, name)
	}

	if err := s.DeleteExpense(id); err != nil {
		t.Fatalf("DeleteExpense: %v", err)
	}
	if _, err := os.Stat(s.ReceiptPath(name)); !os.IsNotExist(err) {
		t.Errorf("receipt file should be gone, stat err = %v", err)
	}
	expenses, err = s.Expenses(date.Range{})
	if err != nil {
		t.Fatal(err)
	}
	if len(expenses) != 0 {
		t.Errorf("got %d expenses after delete, want none", len(expenses))
	}
}

func TestDeleteExpenseUnknown(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteExpense(42); err == nil {
		t.Fatal("expected an error deleting a missing expense")
	}
}
