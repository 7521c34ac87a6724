package etsy

import (
	"math"
	"strings"
	"testing"

	"github.com/Go2Engle/EtsyTrackr/date"
)

func TestBuildReport(t *testing.T) {
	records := []*Record{
		{
			Key: "123", Date: day("2025-03-01"),
			SaleAmount:         AmountOf(25),
			SalesTax:           AmountOf(-2.10),
			ItemTransactionFee: AmountOf(-1.63),
			ProcessingFee:      AmountOf(-1.05),
			Net:                AmountOf(20.22),
		},
		{
			Key: "456", Date: day("2025-03-02"),
			SaleAmount: AmountOf(15),
			Net:        AmountOf(15),
		},
		{
			Key: "Listing_42", Date: day("2025-03-02"),
			ListingFee: AmountOf(-0.20),
			Net:        AmountOf(-0.20),
		},
		{
			Key: "Label_7", Date: day("2025-03-03"),
			ShippingFee: AmountOf(-4.39),
			Net:         AmountOf(-4.39),
		},
	}
	expenses := []Expense{
		{ID: 1, Date: day("2025-03-02"), Description: "Boxes", Amount: AmountOf(12.5)},
	}

	r := BuildReport(date.Range{}, records, expenses)

	if !r.TotalSales.Equal(AmountOf(40)) {
		t.Errorf("TotalSales = %s, want 40", r.TotalSales.Cell())
	}
	if r.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2: listing and label records are not orders", r.TotalOrders)
	}
	if !r.AverageOrderValue.Equal(AmountOf(20)) {
		t.Errorf("AverageOrderValue = %s, want 20", r.AverageOrderValue.Cell())
	}
	if !r.TotalShipping.Equal(AmountOf(-4.39)) {
		t.Errorf("TotalShipping = %s, want -4.39", r.TotalShipping.Cell())
	}
	if !r.TotalTax.Equal(AmountOf(-2.10)) {
		t.Errorf("TotalTax = %s, want -2.10", r.TotalTax.Cell())
	}
	if !r.TotalFees.Equal(AmountOf(-2.68)) {
		t.Errorf("TotalFees = %s, want -2.68", r.TotalFees.Cell())
	}
	if !r.TotalListingFees.Equal(AmountOf(-0.20)) {
		t.Errorf("TotalListingFees = %s, want -0.20", r.TotalListingFees.Cell())
	}
	if !r.NetIncome.Equal(AmountOf(30.63)) {
		t.Errorf("NetIncome = %s, want 30.63", r.NetIncome.Cell())
	}
	if want := 30.63 / 40 * 100; math.Abs(r.ProfitMargin-want) > 1e-9 {
		t.Errorf("ProfitMargin = %g, want %g", r.ProfitMargin, want)
	}
	if !r.TotalExpenses.Equal(AmountOf(12.5)) {
		t.Errorf("TotalExpenses = %s, want 12.5", r.TotalExpenses.Cell())
	}
	if !r.Profit.Equal(AmountOf(18.13)) {
		t.Errorf("Profit = %s, want 18.13", r.Profit.Cell())
	}
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(date.Range{}, nil, nil)
	if r.TotalOrders != 0 || !r.AverageOrderValue.IsZero() || r.ProfitMargin != 0 {
		t.Errorf("empty report = %+v, want all zero", r)
	}
}

func TestBuildReportDailySeries(t *testing.T) {
	records := []*Record{
		{Key: "b", Date: day("2025-03-02"), SaleAmount: AmountOf(10), Net: AmountOf(10)},
		{Key: "a", Date: day("2025-03-01"), SaleAmount: AmountOf(5), ItemTransactionFee: AmountOf(-1), Net: AmountOf(4)},
		{Key: "c", Date: day("2025-03-01"), SaleAmount: AmountOf(7), Net: AmountOf(7)},
	}
	expenses := []Expense{
		{ID: 1, Date: day("2025-03-02"), Description: "Tape", Amount: AmountOf(4)},
	}
	r := BuildReport(date.Range{}, records, expenses)

	if len(r.DailySales) != 2 {
		t.Fatalf("got %d daily sales points, want 2", len(r.DailySales))
	}
	// oldest first, same-day sales summed
	if r.DailySales[0].Date != day("2025-03-01") || !r.DailySales[0].Amount.Equal(AmountOf(12)) {
		t.Errorf("DailySales[0] = %+v, want 12 on 2025-03-01", r.DailySales[0])
	}
	if r.DailySales[1].Date != day("2025-03-02") || !r.DailySales[1].Amount.Equal(AmountOf(10)) {
		t.Errorf("DailySales[1] = %+v, want 10 on 2025-03-02", r.DailySales[1])
	}

	if len(r.DailyOutflows) != 2 {
		t.Fatalf("got %d outflow points, want 2", len(r.DailyOutflows))
	}
	// fees are reported as positive magnitudes
	if o := r.DailyOutflows[0]; o.Date != day("2025-03-01") || !o.EtsyFees.Equal(AmountOf(1)) {
		t.Errorf("DailyOutflows[0] = %+v, want fees 1 on 2025-03-01", o)
	}
	if o := r.DailyOutflows[1]; !o.Expenses.Equal(AmountOf(4)) {
		t.Errorf("DailyOutflows[1] = %+v, want expenses 4", o)
	}
}

func TestStoreReport(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ImportStatement(strings.NewReader(sampleStatement)); err != nil {
		t.Fatalf("ImportStatement: %v", err)
	}
	if _, err := s.AddExpense(Expense{Date: day("2025-03-10"), Description: "Boxes", Amount: AmountOf(12.5)}); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	r, err := s.Report(date.Range{})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !r.TotalSales.Equal(AmountOf(25)) {
		t.Errorf("TotalSales = %s, want 25", r.TotalSales.Cell())
	}
	if !r.TotalExpenses.Equal(AmountOf(12.5)) {
		t.Errorf("TotalExpenses = %s, want 12.5", r.TotalExpenses.Cell())
	}
	if !r.Profit.Equal(r.NetIncome.Sub(r.TotalExpenses)) {
		t.Errorf("Profit = %s, want NetIncome minus expenses", r.Profit.Cell())
	}
}
