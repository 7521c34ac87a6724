package etsy

import "strings"

// Kind is the semantic classification of a statement row. It determines which
// Record field the row's amount lands in.
type Kind int

const (
	// Unclassified rows match no known type/title combination and are dropped.
	Unclassified Kind = iota
	// ListingFeeRow creates or feeds a standalone Listing_* record.
	ListingFeeRow
	// ShippingLabelRow creates a standalone Label_* record.
	ShippingLabelRow
	// SaleRow carries the authoritative sale amount for an order.
	SaleRow
	// RefundRow replaces the sale amount and marks the order refunded.
	RefundRow
	// ShippingTransactionFeeRow is Etsy's transaction fee on shipping.
	ShippingTransactionFeeRow
	// ItemTransactionFeeRow is Etsy's transaction fee on an item.
	ItemTransactionFeeRow
	// ProcessingFeeRow is the payment processing fee.
	ProcessingFeeRow
	// OffsiteAdsFeeRow is the fee for an offsite-ads attributed order.
	OffsiteAdsFeeRow
	// EtsyAdsFeeRow is an Etsy Ads spend row.
	EtsyAdsFeeRow
	// TaxRow is sales tax collected from (or refunded to) the buyer.
	TaxRow
)

func (k Kind) String() string {
	switch k {
	case ListingFeeRow:
		return "listing fee"
	case ShippingLabelRow:
		return "shipping label"
	case SaleRow:
		return "sale"
	case RefundRow:
		return "refund"
	case ShippingTransactionFeeRow:
		return "shipping transaction fee"
	case ItemTransactionFeeRow:
		return "item transaction fee"
	case ProcessingFeeRow:
		return "processing fee"
	case OffsiteAdsFeeRow:
		return "offsite ads fee"
	case EtsyAdsFeeRow:
		return "etsy ads fee"
	case TaxRow:
		return "tax"
	default:
		return "unclassified"
	}
}

// Classified is a row plus its classification outcome: the kind and the
// identifiers extracted from the free-text columns.
type Classified struct {
	Kind Kind
	Row  Row

	// OrderID routes the row into an order record. Empty when the row is
	// standalone (listing fee, shipping label) or carries no identifier.
	OrderID string
	// ListingID is set for ListingFeeRow.
	ListingID string
	// LabelID is set for ShippingLabelRow.
	LabelID string
	// ItemHint is the trailing text of an item transaction fee title, used as
	// a fallback item description.
	ItemHint string
}

// Classify determines the semantic kind of a statement row.
//
// Matching order is significant: listing-fee and shipping-label rows create
// their own standalone records, so they are intercepted before order-keyed
// routing even when an "Order #" token appears in their text.
func Classify(row Row) Classified {
	c := Classified{Kind: Unclassified, Row: row}

	if row.Type == Fee && (strings.Contains(row.Title, "Listing fee") || strings.Contains(row.Title, "Credit for listing fee")) {
		c.Kind = ListingFeeRow
		c.ListingID = extractListingID(row.Info)
		return c
	}

	if row.Type == Shipping && strings.Contains(strings.ToLower(row.Title), "shipping label") {
		c.Kind = ShippingLabelRow
		c.LabelID = extractLabelID(row.Info)
		return c
	}

	c.OrderID = extractOrderID(row.Title, row.Info)

	switch row.Type {
	case Sale:
		c.Kind = SaleRow
	case Refund:
		c.Kind = RefundRow
	case Fee:
		c.Kind, c.ItemHint = classifyFee(row.Title)
	case Tax:
		if strings.Contains(row.Title, "Sales tax paid by buyer") || strings.Contains(row.Title, "Refund to buyer for sales tax") {
			c.Kind = TaxRow
		}
	}
	return c
}

// classifyFee splits generic Fee rows by title substring. For item transaction
// fees it also returns the trailing title text as an item description hint.
func classifyFee(title string) (Kind, string) {
	switch {
	case strings.Contains(title, "Transaction fee: Shipping"),
		strings.Contains(title, "Credit for transaction fee on shipping"):
		return ShippingTransactionFeeRow, ""
	case strings.Contains(title, "Transaction fee:"):
		return ItemTransactionFeeRow, trailing(title, "Transaction fee:")
	case strings.Contains(title, "Credit for transaction fee on"):
		return ItemTransactionFeeRow, trailing(title, "Credit for transaction fee on")
	case strings.Contains(title, "Processing fee"),
		strings.Contains(title, "Credit for processing fee"):
		return ProcessingFeeRow, ""
	case strings.Contains(strings.ToLower(title), "offsite ads"):
		return OffsiteAdsFeeRow, ""
	case strings.Contains(strings.ToLower(title), "etsy ads"):
		return EtsyAdsFeeRow, ""
	default:
		return Unclassified, ""
	}
}

// trailing returns the trimmed text following the last occurrence of marker.
func trailing(title, marker string) string {
	i := strings.LastIndex(title, marker)
	return strings.TrimSpace(title[i+len(marker):])
}
