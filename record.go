package etsy

import (
	"fmt"
	"strings"

	"github.com/Go2Engle/EtsyTrackr/date"
)

const refundMarker = "[REFUNDED] "

// Record is one consolidated economic unit: an order, a standalone listing
// fee event, or a standalone shipping label purchase. It accumulates every
// statement row sharing its key.
//
// Net always equals the sum of the category fields.
type Record struct {
	// Key discriminates records within one import batch: the order id itself,
	// "Listing_<id>" or "Label_<id>".
	Key string
	// Date is the date of the first row contributing to the record.
	Date date.Date
	// DisplayID is the human readable identifier shown in reports.
	DisplayID string
	// Items describes what was sold, populated incrementally.
	Items string

	SaleAmount             Amount
	ShippingFee            Amount
	SalesTax               Amount
	ShippingTransactionFee Amount
	ItemTransactionFee     Amount
	ProcessingFee          Amount
	ListingFee             Amount
	OffsiteAdsFee          Amount
	EtsyAdsFee             Amount

	// Net is the running total across all categories.
	Net Amount
}

func newOrderRecord(id string, on date.Date) *Record {
	return &Record{Key: id, DisplayID: id, Date: on}
}

func newListingRecord(id string, on date.Date) *Record {
	return &Record{
		Key:       "Listing_" + id,
		DisplayID: "Listing #" + id,
		Date:      on,
		Items:     "Listing Fee",
	}
}

func newLabelRecord(id string, on date.Date) *Record {
	return &Record{
		Key:       "Label_" + id,
		DisplayID: "Label #" + id,
		Date:      on,
		Items:     "Shipping Label",
	}
}

// setSale installs the authoritative sale (or refund) amount: a later sale
// row for the same order replaces the previous one instead of accumulating.
// Net moves by the difference so it stays the exact sum of the categories.
func (r *Record) setSale(amount Amount) {
	r.Net = r.Net.Sub(r.SaleAmount).Add(amount)
	r.SaleAmount = amount
}

// markRefunded prefixes Items with the refund marker, exactly once.
func (r *Record) markRefunded() {
	switch {
	case r.Items == "":
		r.Items = refundMarker + "Order"
	case !strings.HasPrefix(r.Items, refundMarker):
		r.Items = refundMarker + r.Items
	}
}

// add accumulates amount into the category field for kind, and into Net.
// The mapping is total over every fee and tax kind.
func (r *Record) add(kind Kind, amount Amount) {
	switch kind {
	case ListingFeeRow:
		r.ListingFee = r.ListingFee.Add(amount)
	case ShippingLabelRow:
		r.ShippingFee = r.ShippingFee.Add(amount)
	case ShippingTransactionFeeRow:
		r.ShippingTransactionFee = r.ShippingTransactionFee.Add(amount)
	case ItemTransactionFeeRow:
		r.ItemTransactionFee = r.ItemTransactionFee.Add(amount)
	case ProcessingFeeRow:
		r.ProcessingFee = r.ProcessingFee.Add(amount)
	case OffsiteAdsFeeRow:
		r.OffsiteAdsFee = r.OffsiteAdsFee.Add(amount)
	case EtsyAdsFeeRow:
		r.EtsyAdsFee = r.EtsyAdsFee.Add(amount)
	case TaxRow:
		r.SalesTax = r.SalesTax.Add(amount)
	default:
		panic(fmt.Sprintf("kind %v has no record field", kind))
	}
	r.Net = r.Net.Add(amount)
}

// CategorySum returns the sum of all category fields. It equals Net by
// construction; reports and tests use it to check the invariant.
func (r *Record) CategorySum() Amount {
	sum := r.SaleAmount
	sum = sum.Add(r.ShippingFee)
	sum = sum.Add(r.SalesTax)
	sum = sum.Add(r.ShippingTransactionFee)
	sum = sum.Add(r.ItemTransactionFee)
	sum = sum.Add(r.ProcessingFee)
	sum = sum.Add(r.ListingFee)
	sum = sum.Add(r.OffsiteAdsFee)
	sum = sum.Add(r.EtsyAdsFee)
	return sum
}

// Fees returns the sum of the transaction and processing fee categories, the
// "Etsy fees" figure surfaced on the dashboard.
func (r *Record) Fees() Amount {
	return r.ItemTransactionFee.Add(r.ShippingTransactionFee).Add(r.ProcessingFee)
}
