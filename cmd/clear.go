package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all imported statement data" }
func (*clearCmd) Usage() string {
	return `etr clear [-f]

  Deletes every processed statement file. Expenses and receipts are kept.
  Irreversible; re-import the raw exports to rebuild the data.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Do not ask for confirmation.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Print("Delete all imported statement data? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.ClearSales(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing statements: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("All statement data deleted.")
	return subcommands.ExitSuccess
}
