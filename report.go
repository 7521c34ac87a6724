package etsy

import (
	"slices"

	"github.com/Go2Engle/EtsyTrackr/date"
)

// Report is the read-side composition consumed by the dashboard: aggregate
// metrics over consolidated records plus expenses for the same range. This is
// arithmetic over already-aggregated data.
type Report struct {
	Range date.Range

	// TotalSales is the sum of sale amounts, and TotalOrders the number of
	// records with a positive sale amount.
	TotalSales        Amount
	TotalOrders       int
	AverageOrderValue Amount

	TotalShipping    Amount
	TotalTax         Amount
	TotalFees        Amount // transaction and processing fees
	TotalListingFees Amount
	TotalAdsFees     Amount // offsite and Etsy ads

	// NetIncome is the sum of record nets; ProfitMargin is NetIncome over
	// TotalSales, as a percentage.
	NetIncome    Amount
	ProfitMargin float64

	TotalExpenses Amount
	// Profit is NetIncome minus TotalExpenses.
	Profit Amount

	// DailySales holds per-day sale totals, oldest first, for charting.
	DailySales []DailyAmount
	// DailyOutflows holds per-day fee and expense magnitudes, oldest first.
	DailyOutflows []DailyOutflow
}

// DailyAmount is one point of a per-day series.
type DailyAmount struct {
	Date   date.Date
	Amount Amount
}

// DailyOutflow separates a day's Etsy fees from recorded expenses.
type DailyOutflow struct {
	Date     date.Date
	EtsyFees Amount
	Expenses Amount
}

// BuildReport computes the dashboard metrics for records and expenses,
// assumed already filtered to rng.
func BuildReport(rng date.Range, records []*Record, expenses []Expense) *Report {
	r := &Report{Range: rng}

	sales := make(map[date.Date]Amount)
	outflows := make(map[date.Date]*DailyOutflow)
	outflow := func(on date.Date) *DailyOutflow {
		o, ok := outflows[on]
		if !ok {
			o = &DailyOutflow{Date: on}
			outflows[on] = o
		}
		return o
	}

	for _, rec := range records {
		r.TotalSales = r.TotalSales.Add(rec.SaleAmount)
		if rec.SaleAmount.IsPositive() {
			r.TotalOrders++
		}
		r.TotalShipping = r.TotalShipping.Add(rec.ShippingFee)
		r.TotalTax = r.TotalTax.Add(rec.SalesTax)
		r.TotalFees = r.TotalFees.Add(rec.Fees())
		r.TotalListingFees = r.TotalListingFees.Add(rec.ListingFee)
		r.TotalAdsFees = r.TotalAdsFees.Add(rec.OffsiteAdsFee).Add(rec.EtsyAdsFee)
		r.NetIncome = r.NetIncome.Add(rec.Net)

		if !rec.SaleAmount.IsZero() {
			sales[rec.Date] = sales[rec.Date].Add(rec.SaleAmount)
		}
		if fees := rec.Fees().Add(rec.ListingFee).Add(rec.OffsiteAdsFee).Add(rec.EtsyAdsFee); !fees.IsZero() {
			o := outflow(rec.Date)
			o.EtsyFees = o.EtsyFees.Add(fees.Abs())
		}
	}

	if r.TotalOrders > 0 {
		r.AverageOrderValue = r.TotalSales.Div(r.TotalOrders)
	}
	if r.TotalSales.IsPositive() {
		r.ProfitMargin = r.NetIncome.Float64() / r.TotalSales.Float64() * 100
	}

	for _, e := range expenses {
		r.TotalExpenses = r.TotalExpenses.Add(e.Amount)
		o := outflow(e.Date)
		o.Expenses = o.Expenses.Add(e.Amount)
	}
	r.Profit = r.NetIncome.Sub(r.TotalExpenses)

	for on, amount := range sales {
		r.DailySales = append(r.DailySales, DailyAmount{Date: on, Amount: amount})
	}
	slices.SortFunc(r.DailySales, func(a, z DailyAmount) int {
		return a.Date.Compare(z.Date)
	})
	for _, o := range outflows {
		r.DailyOutflows = append(r.DailyOutflows, *o)
	}
	slices.SortFunc(r.DailyOutflows, func(a, z DailyOutflow) int {
		return a.Date.Compare(z.Date)
	})
	return r
}

// Report loads the statement summary and expenses for rng and computes the
// dashboard metrics.
func (s *Store) Report(rng date.Range) (*Report, error) {
	records, err := s.Summary(rng)
	if err != nil {
		return nil, err
	}
	expenses, err := s.Expenses(rng)
	if err != nil {
		return nil, err
	}
	return BuildReport(rng, records, expenses), nil
}
