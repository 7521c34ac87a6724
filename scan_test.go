package etsy

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScanExports(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"etsy_statement_2025_3.csv",
		"etsy_statement_2025_11.csv",
		"ETSY_STATEMENT_2024_12.CSV",
		"etsy_statement_2025.csv", // no month
		"bank_statement_2025_3.csv",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ScanExports(dir)
	if err != nil {
		t.Fatalf("ScanExports: %v", err)
	}
	want := map[string]string{
		"2025-03": "etsy_statement_2025_3.csv",
		"2025-11": "etsy_statement_2025_11.csv",
		"2024-12": "ETSY_STATEMENT_2024_12.CSV",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d months %v, want %d", len(got), got, len(want))
	}
	for month, name := range want {
		if filepath.Base(got[month]) != name {
			t.Errorf("month %s = %q, want %q", month, got[month], name)
		}
	}
}

// When a month was downloaded twice the newest file wins, regardless of the
// browser's " (n)" suffix.
func TestScanExportsNewestWins(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "etsy_statement_2025_3.csv")
	redownload := filepath.Join(dir, "etsy_statement_2025_3 (1).csv")
	for _, path := range []string{old, redownload} {
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	then := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, then, then); err != nil {
		t.Fatal(err)
	}

	got, err := ScanExports(dir)
	if err != nil {
		t.Fatalf("ScanExports: %v", err)
	}
	if got["2025-03"] != redownload {
		t.Errorf("2025-03 = %q, want the newer re-download", got["2025-03"])
	}
}

func TestScanExportsMissingDir(t *testing.T) {
	if _, err := ScanExports(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
