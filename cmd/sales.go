package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Go2Engle/EtsyTrackr/renderer"
	"github.com/google/subcommands"
)

type salesCmd struct {
	rangeFlags
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list consolidated statement records" }
func (*salesCmd) Usage() string {
	return `etr sales [-month <YYYY-MM> | -year <YYYY> | -from <date> -to <date>]

  Lists the consolidated statement records, newest first: one line per order,
  listing fee or shipping label, with sale amount, fees and net.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := c.Range()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	records, err := store.Summary(rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(rng, records))
	return subcommands.ExitSuccess
}
