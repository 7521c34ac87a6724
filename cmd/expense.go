package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	etsy "github.com/Go2Engle/EtsyTrackr"
	"github.com/Go2Engle/EtsyTrackr/date"
	"github.com/Go2Engle/EtsyTrackr/renderer"
	"github.com/google/subcommands"
)

// --- expense add ---

type expenseAddCmd struct {
	on       string
	amount   string
	category string
}

func (*expenseAddCmd) Name() string     { return "expense-add" }
func (*expenseAddCmd) Synopsis() string { return "record a shop expense" }
func (*expenseAddCmd) Usage() string {
	return `etr expense-add -amount <amount> [-on <date>] [-category <name>] <description>

  Records a shop cost that never appears on an Etsy statement. Expenses reduce
  profit in the reports.

Usage Examples:
$ etr expense-add -on 2025-03-10 -category Supplies -amount 12.50 "Shipping boxes"
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", date.Today().String(), "Date of the expense.")
	f.StringVar(&c.amount, "amount", "", "Amount spent, e.g. 12.50.")
	f.StringVar(&c.category, "category", "", "Free-form category, e.g. Supplies.")
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.TrimSpace(strings.Join(f.Args(), " "))
	if description == "" {
		fmt.Fprintln(os.Stderr, "Error: a description is required.")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := etsy.ParseAmount(c.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -amount must be a positive amount, got %q.\n", c.amount)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	id, err := store.AddExpense(etsy.Expense{
		Date:        on,
		Description: description,
		Amount:      amount,
		Category:    c.category,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording expense: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %d: %s %s\n", id, amount, description)
	return subcommands.ExitSuccess
}

// --- expense list ---

type expenseListCmd struct {
	rangeFlags
}

func (*expenseListCmd) Name() string     { return "expense-list" }
func (*expenseListCmd) Synopsis() string { return "list recorded expenses" }
func (*expenseListCmd) Usage() string {
	return `etr expense-list [-month <YYYY-MM> | -year <YYYY> | -from <date> -to <date>]

  Lists recorded expenses, newest first, with a totals row.
`
}

func (c *expenseListCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *expenseListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	expenses, err := store.Expenses(rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ExpensesMarkdown(rng, expenses))
	return subcommands.ExitSuccess
}

// --- expense delete ---

type expenseDeleteCmd struct{}

func (*expenseDeleteCmd) Name() string     { return "expense-delete" }
func (*expenseDeleteCmd) Synopsis() string { return "delete a recorded expense" }
func (*expenseDeleteCmd) Usage() string {
	return `etr expense-delete <id>

  Deletes a recorded expense and its attached receipt, if any.
`
}

func (*expenseDeleteCmd) SetFlags(*flag.FlagSet) {}

func (c *expenseDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one expense id is required.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid expense id %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteExpense(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting expense: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted expense %d.\n", id)
	return subcommands.ExitSuccess
}

// --- expense receipt ---

type expenseReceiptCmd struct{}

func (*expenseReceiptCmd) Name() string     { return "expense-receipt" }
func (*expenseReceiptCmd) Synopsis() string { return "attach a receipt file to an expense" }
func (*expenseReceiptCmd) Usage() string {
	return `etr expense-receipt <id> <file>

  Copies a receipt file into the store and links it to the expense. The
  original file can then be deleted.
`
}

func (*expenseReceiptCmd) SetFlags(*flag.FlagSet) {}

func (c *expenseReceiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: an expense id and a receipt file are required.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid expense id %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	name, err := store.AttachReceipt(id, f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error attaching receipt: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Attached receipt %s to expense %d.\n", name, id)
	return subcommands.ExitSuccess
}
