package etsy

import (
	"fmt"

	"github.com/Go2Engle/EtsyTrackr/date"
)

// RowType is the transaction type column of a statement export.
type RowType int

const (
	// Other is any type value not recognized below. Rows of this type never
	// classify and end up dropped.
	Other RowType = iota
	Sale
	Refund
	Fee
	Tax
	Shipping
)

func (t RowType) String() string {
	switch t {
	case Sale:
		return "Sale"
	case Refund:
		return "Refund"
	case Fee:
		return "Fee"
	case Tax:
		return "Tax"
	case Shipping:
		return "Shipping"
	default:
		return "other"
	}
}

// ParseRowType parses the Type column of a statement export.
func ParseRowType(s string) (RowType, error) {
	switch s {
	case "Sale":
		return Sale, nil
	case "Refund":
		return Refund, nil
	case "Fee":
		return Fee, nil
	case "Tax":
		return Tax, nil
	case "Shipping":
		return Shipping, nil
	default:
		return 0, fmt.Errorf("unknown row type: %q", s)
	}
}

// Row is one line of a statement export: a single ledger event.
//
// Amount and Net are kept as raw cells; they are parsed lazily because many
// row kinds only ever read one of the two.
type Row struct {
	Date   date.Date
	Type   RowType
	Title  string
	Info   string
	Amount string
	Net    string
}
