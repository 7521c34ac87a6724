package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	etsy "github.com/Go2Engle/EtsyTrackr"
	"github.com/Go2Engle/EtsyTrackr/date"
	"github.com/google/subcommands"
)

type importCmd struct {
	scan string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import raw Etsy statement exports" }
func (*importCmd) Usage() string {
	return `etr import <statement.csv>...
etr import -scan <dir>

  Imports raw monthly statement exports. Each statement is consolidated into
  one record per order (plus standalone listing fee and shipping label
  records) and stored under its calendar month, replacing any previous import
  of that month.

  With -scan, the directory is searched for files named
  etsy_statement_<year>_<month>.csv and every month found is imported; when a
  month was downloaded several times the newest file wins.

Usage Examples:
# Import one downloaded statement.
$ etr import ~/Downloads/etsy_statement_2025_3.csv

# Import everything in the Downloads folder.
$ etr import -scan ~/Downloads
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scan, "scan", "", "Directory to scan for statement exports.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	var paths []string
	if c.scan != "" {
		byMonth, err := etsy.ScanExports(c.scan)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning %q: %v\n", c.scan, err)
			return subcommands.ExitFailure
		}
		for _, path := range byMonth {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		if len(paths) == 0 {
			fmt.Fprintf(os.Stderr, "No statement exports found in %q.\n", c.scan)
			return subcommands.ExitSuccess
		}
	}
	paths = append(paths, f.Args()...)
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to import: give statement files or -scan a directory.")
		return subcommands.ExitUsageError
	}

	known, err := store.ExistingOrderIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading existing statements: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, path := range paths {
		res, err := store.ImportFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Imported %s: %d records for %s (%d rows, %d dropped)\n",
			path, res.Records, res.Month, res.Stats.Rows, res.Stats.Dropped)
		if res.Stats.Failed > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d rows skipped:\n%v\n", res.Stats.Failed, res.RowErrors)
		}
		if dup := countKnown(store, res, known); dup > 0 {
			fmt.Printf("Note: %d of these orders were already in the store (month replaced).\n", dup)
		}
	}
	return status
}

// countKnown counts imported records whose identifier was already stored
// before this run.
func countKnown(store *etsy.Store, res *etsy.ImportResult, known map[string]bool) int {
	d, err := date.Parse(res.Month + "-01")
	if err != nil {
		return 0
	}
	records, err := store.Summary(date.NewRange(d, date.Monthly))
	if err != nil {
		return 0
	}
	n := 0
	for _, rec := range records {
		if known[rec.DisplayID] {
			n++
		}
	}
	return n
}
