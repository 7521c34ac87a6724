package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Go2Engle/EtsyTrackr/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	rangeFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the shop dashboard" }
func (*summaryCmd) Usage() string {
	return `etr summary [-month <YYYY-MM> | -year <YYYY> | -from <date> -to <date>]

  Displays the shop dashboard: sales, fees, taxes, net income, recorded
  expenses and profit, with daily sales and outflow series.

Usage Examples:
# Everything imported so far.
$ etr summary

# One month.
$ etr summary -month 2025-03
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report, err := store.Report(rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(report))
	return subcommands.ExitSuccess
}
