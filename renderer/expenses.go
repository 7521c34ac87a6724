package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	etsy "github.com/Go2Engle/EtsyTrackr"
	"github.com/Go2Engle/EtsyTrackr/date"
	md "github.com/nao1215/markdown"
)

// ExpensesMarkdown renders the expense ledger as a table, newest first, with
// a totals row.
func ExpensesMarkdown(rng date.Range, expenses []etsy.Expense) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses (%s)", rangeTitle(rng)))
	if len(expenses) == 0 {
		doc.PlainText("No expenses recorded in this range.")
		return doc.String()
	}

	var total etsy.Amount
	rows := make([][]string, 0, len(expenses)+1)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		receipt := ""
		if e.Receipt != "" {
			receipt = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Date.String(),
			e.Description,
			e.Category,
			e.Amount.String(),
			receipt,
		})
	}
	rows = append(rows, []string{"", "", "**Total**", "", total.String(), ""})
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Description", "Category", "Amount", "Receipt"},
		Rows:   rows,
	})
	return doc.String()
}
