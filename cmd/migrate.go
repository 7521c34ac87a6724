package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "copy the store to a new location" }
func (*migrateCmd) Usage() string {
	return `etr migrate <new-root>

  Copies statements, expenses and receipts to a new storage root, for example
  a synced folder. The old data stays in place until you remove it; point the
  -storage flag (or your shell alias) at the new root afterwards.

Usage Examples:
$ etr migrate ~/Dropbox/etsytrackr
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (c *migrateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one destination directory is required.")
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	dst, err := store.Migrate(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error migrating store: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Store copied to %s. Run with -storage %q from now on.\n", dst.Root(), dst.Root())
	return subcommands.ExitSuccess
}
