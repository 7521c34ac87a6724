// Package renderer turns store data into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	etsy "github.com/Go2Engle/EtsyTrackr"
	"github.com/Go2Engle/EtsyTrackr/date"
	md "github.com/nao1215/markdown"
)

// rangeTitle names a date range for report headings.
func rangeTitle(rng date.Range) string {
	if rng.IsZero() {
		return "all time"
	}
	return rng.Identifier()
}

// DashboardMarkdown renders the shop dashboard for a report.
func DashboardMarkdown(r *etsy.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Shop Dashboard (%s)", rangeTitle(r.Range)))

	doc.H2("Sales")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Sales", r.TotalSales.String()},
			{"Orders", fmt.Sprintf("%d", r.TotalOrders)},
			{"Average Order Value", r.AverageOrderValue.String()},
			{"Shipping Labels", r.TotalShipping.String()},
			{"Sales Tax", r.TotalTax.String()},
		},
	})

	doc.H2("Fees")
	doc.Table(md.TableSet{
		Header: []string{"Category", "Amount"},
		Rows: [][]string{
			{"Transaction & Processing", r.TotalFees.String()},
			{"Listing Fees", r.TotalListingFees.String()},
			{"Advertising", r.TotalAdsFees.String()},
		},
	})

	doc.H2("Profit")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Net Income", r.NetIncome.String()},
			{"Profit Margin", fmt.Sprintf("%.1f%%", r.ProfitMargin)},
			{"Expenses", r.TotalExpenses.String()},
			{"Profit", r.Profit.String()},
		},
	})

	if len(r.DailySales) > 0 {
		doc.H2("Daily Sales")
		rows := make([][]string, 0, len(r.DailySales))
		for _, p := range r.DailySales {
			rows = append(rows, []string{p.Date.String(), p.Amount.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Sales"},
			Rows:   rows,
		})
	}

	if len(r.DailyOutflows) > 0 {
		doc.H2("Daily Outflows")
		rows := make([][]string, 0, len(r.DailyOutflows))
		for _, o := range r.DailyOutflows {
			rows = append(rows, []string{o.Date.String(), o.EtsyFees.String(), o.Expenses.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Etsy Fees", "Expenses"},
			Rows:   rows,
		})
	}

	return doc.String()
}
