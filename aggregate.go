package etsy

import (
	"errors"
	"log"
	"slices"
)

// AggregateStats counts what happened to each row of an import batch.
// Dropped rows are a deliberate no-op (cross-order overhead rows carry no
// identifier) but are counted so silent data loss stays visible.
type AggregateStats struct {
	Rows    int // rows processed
	Dropped int // rows with no recognized classification or identifier
	Failed  int // rows skipped because an amount cell would not parse
}

// Batch folds classified rows into a keyed collection of records. State is
// scoped to a single import; nothing survives across statement files.
type Batch struct {
	records map[string]*Record
	keys    []string // insertion order, for a stable sort
	stats   AggregateStats
}

func NewBatch() *Batch {
	return &Batch{records: make(map[string]*Record)}
}

func (b *Batch) Stats() AggregateStats { return b.stats }

// put registers rec under its key, preserving the position of a replaced key.
func (b *Batch) put(rec *Record) {
	if _, exists := b.records[rec.Key]; !exists {
		b.keys = append(b.keys, rec.Key)
	}
	b.records[rec.Key] = rec
}

// Fold applies one classified row to the batch state.
//
// A row that yields no key under any rule is dropped and counted; the batch
// is otherwise unchanged. A malformed amount cell returns a *ParseError and
// leaves the batch untouched: amounts are parsed before any record is created
// or mutated.
func (b *Batch) Fold(c Classified) error {
	b.stats.Rows++

	switch c.Kind {
	case ListingFeeRow:
		if c.ListingID == "" {
			b.stats.Dropped++
			return nil
		}
		net, err := ParseAmount(c.Row.Net)
		if err != nil {
			return err
		}
		rec, ok := b.records["Listing_"+c.ListingID]
		if !ok {
			rec = newListingRecord(c.ListingID, c.Row.Date)
			b.put(rec)
		}
		rec.add(ListingFeeRow, net)
		return nil

	case ShippingLabelRow:
		if c.LabelID == "" {
			b.stats.Dropped++
			return nil
		}
		net, err := ParseAmount(c.Row.Net)
		if err != nil {
			return err
		}
		// A label id is unique per file: the record is always created fresh.
		rec := newLabelRecord(c.LabelID, c.Row.Date)
		rec.add(ShippingLabelRow, net)
		b.put(rec)
		return nil

	case Unclassified:
		b.stats.Dropped++
		return nil
	}

	// Everything else routes by order id.
	if c.OrderID == "" {
		b.stats.Dropped++
		return nil
	}

	switch c.Kind {
	case SaleRow, RefundRow:
		amount, err := ParseAmount(c.Row.Amount)
		if err != nil {
			return err
		}
		rec := b.order(c.OrderID, c.Row)
		rec.setSale(amount)
		if c.Kind == RefundRow {
			rec.markRefunded()
		}
	default:
		net, err := ParseAmount(c.Row.Net)
		if err != nil {
			return err
		}
		rec := b.order(c.OrderID, c.Row)
		rec.add(c.Kind, net)
		if c.Kind == ItemTransactionFeeRow && rec.Items == "" && c.ItemHint != "" {
			rec.Items = c.ItemHint
		}
	}
	return nil
}

// order returns the record for an order id, creating it on first sight.
func (b *Batch) order(id string, row Row) *Record {
	rec, ok := b.records[id]
	if !ok {
		rec = newOrderRecord(id, row.Date)
		b.put(rec)
	}
	return rec
}

// Records returns the consolidated records, sorted by date descending.
// Records sharing a date keep their first-seen order.
func (b *Batch) Records() []*Record {
	out := make([]*Record, 0, len(b.keys))
	for _, key := range b.keys {
		out = append(out, b.records[key])
	}
	slices.SortStableFunc(out, func(a, z *Record) int {
		return z.Date.Compare(a.Date)
	})
	return out
}

// Aggregate classifies and folds a whole statement file.
//
// Rows with malformed amount cells are skipped, logged and counted; the
// remaining rows still aggregate, and the per-row failures are returned
// joined so the caller can decide whether to reject the file.
func Aggregate(rows []Row) ([]*Record, AggregateStats, error) {
	b := NewBatch()
	var rowErrs []error
	for _, row := range rows {
		if err := b.Fold(Classify(row)); err != nil {
			b.stats.Failed++
			log.Printf("skipping row %q on %s: %v", row.Title, row.Date, err)
			rowErrs = append(rowErrs, err)
		}
	}
	if b.stats.Dropped > 0 {
		log.Printf("dropped %d of %d rows with no matching record", b.stats.Dropped, b.stats.Rows)
	}
	return b.Records(), b.Stats(), errors.Join(rowErrs...)
}
