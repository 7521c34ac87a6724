// Package cmd implements the CLI application to track an Etsy shop's finances.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	etsy "github.com/Go2Engle/EtsyTrackr"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare all subcommands, then Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "statements")
	c.Register(&clearCmd{}, "statements")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&salesCmd{}, "reports")

	c.Register(&expenseAddCmd{}, "expenses")
	c.Register(&expenseListCmd{}, "expenses")
	c.Register(&expenseDeleteCmd{}, "expenses")
	c.Register(&expenseReceiptCmd{}, "expenses")

	c.Register(&migrateCmd{}, "storage")
	c.Register(&topicCmd{}, "")
	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storageDir = flag.String("storage", defaultStorageDir(), "Path to the storage root holding statements, expenses and receipts")

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".etsytrackr"
	}
	return filepath.Join(home, ".etsytrackr")
}

// OpenStore opens the app's storage root, creating the layout on first use.
func OpenStore() (*etsy.Store, error) {
	return etsy.Open(*storageDir)
}
