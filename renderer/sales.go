package renderer

import (
	"bytes"
	"fmt"

	etsy "github.com/Go2Engle/EtsyTrackr"
	"github.com/Go2Engle/EtsyTrackr/date"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders consolidated statement records as a table, newest
// first, with a totals row.
func SalesMarkdown(rng date.Range, records []*etsy.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sales (%s)", rangeTitle(rng)))
	if len(records) == 0 {
		doc.PlainText("No statement data in this range.")
		return doc.String()
	}

	var totalSale, totalFees, totalNet etsy.Amount
	rows := make([][]string, 0, len(records)+1)
	for _, rec := range records {
		totalSale = totalSale.Add(rec.SaleAmount)
		totalFees = totalFees.Add(rec.Fees())
		totalNet = totalNet.Add(rec.Net)
		rows = append(rows, []string{
			rec.Date.String(),
			rec.DisplayID,
			rec.Items,
			rec.SaleAmount.String(),
			rec.Fees().String(),
			rec.Net.String(),
		})
	}
	rows = append(rows, []string{
		"", "", "**Total**",
		totalSale.String(), totalFees.String(), totalNet.String(),
	})
	doc.Table(md.TableSet{
		Header: []string{"Date", "Order", "Items", "Sale", "Fees", "Net"},
		Rows:   rows,
	})
	return doc.String()
}
