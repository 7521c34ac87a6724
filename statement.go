package etsy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Go2Engle/EtsyTrackr/date"
)

// this file handles the two tabular formats: the raw statement export Etsy
// produces, and the processed per-month record files this tool persists.

// ErrDateFormat reports a statement file whose date column matches none of
// the accepted layouts. The import fails wholesale: partially parsed dates
// would silently misfile records.
var ErrDateFormat = errors.New("no accepted date format matches the statement's date column")

// recordHeader is the column set of a processed statement file.
var recordHeader = []string{
	"Date", "Order ID", "Items",
	"Sale Amount", "Shipping Fee", "Sales Tax",
	"Shipping Transaction Fee", "Item Transaction Fee", "Processing Fee",
	"Listing Fee", "Offsite Ads Fee", "Etsy Ads Fee",
	"Net",
}

// DecodeStatement reads a raw statement export.
//
// The export is a CSV file with at least the columns Date, Type, Title, Info,
// Amount and Net, located by header name (case-insensitive). The date column
// is parsed with the first layout of [date.StatementLayouts] that parses
// every row; if none does, the decode fails with [ErrDateFormat].
//
// Rows with an unrecognized Type are kept (as [Other]) so the aggregation can
// count them as dropped.
func DecodeStatement(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read statement header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"date", "type"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("statement is missing the %q column", required)
		}
	}
	cell := func(line []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(line) {
			return ""
		}
		return strings.TrimSpace(line[i])
	}

	type rawRow struct {
		date string
		row  Row
	}
	var raws []rawRow
	for {
		line, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read statement line: %w", err)
		}
		typ, err := ParseRowType(cell(line, "type"))
		if err != nil {
			typ = Other
		}
		raws = append(raws, rawRow{
			date: cell(line, "date"),
			row: Row{
				Type:   typ,
				Title:  cell(line, "title"),
				Info:   cell(line, "info"),
				Amount: cell(line, "amount"),
				Net:    cell(line, "net"),
			},
		})
	}

	cells := make([]string, 0, len(raws))
	for _, raw := range raws {
		cells = append(cells, raw.date)
	}
	layout, err := detectDateLayout(cells)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(raws))
	for _, raw := range raws {
		d, err := date.ParseStatement(layout, raw.date)
		if err != nil {
			// detectDateLayout already parsed this cell.
			return nil, err
		}
		row := raw.row
		row.Date = d
		rows = append(rows, row)
	}
	return rows, nil
}

// detectDateLayout returns the first accepted layout that parses every date
// cell of the file.
func detectDateLayout(cells []string) (string, error) {
	for _, layout := range date.StatementLayouts {
		ok := true
		for _, cell := range cells {
			if _, err := date.ParseStatement(layout, cell); err != nil {
				ok = false
				break
			}
		}
		if ok {
			return layout, nil
		}
	}
	return "", ErrDateFormat
}

// EncodeRecords writes consolidated records as a processed statement file.
// Amounts are written as plain decimal numbers, dates in ISO format.
func EncodeRecords(w io.Writer, records []*Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return fmt.Errorf("cannot write record header: %w", err)
	}
	for _, rec := range records {
		line := []string{
			rec.Date.String(), rec.DisplayID, rec.Items,
			rec.SaleAmount.Cell(), rec.ShippingFee.Cell(), rec.SalesTax.Cell(),
			rec.ShippingTransactionFee.Cell(), rec.ItemTransactionFee.Cell(), rec.ProcessingFee.Cell(),
			rec.ListingFee.Cell(), rec.OffsiteAdsFee.Cell(), rec.EtsyAdsFee.Cell(),
			rec.Net.Cell(),
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("cannot write record %q: %w", rec.Key, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeRecords reads back a processed statement file.
//
// Files written before the ads fee columns existed decode fine: a missing
// column reads as zero, keeping every Record field always present.
func DecodeRecords(r io.Reader) ([]*Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read record header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	cell := func(line []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(line) {
			return ""
		}
		return line[i]
	}
	amount := func(line []string, name string) (Amount, error) {
		return ParseAmount(cell(line, name))
	}

	var records []*Record
	for {
		line, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read record line: %w", err)
		}
		d, err := date.Parse(cell(line, "Date"))
		if err != nil {
			return nil, fmt.Errorf("cannot read record date: %w", err)
		}
		rec := &Record{
			Date:      d,
			DisplayID: cell(line, "Order ID"),
			Items:     cell(line, "Items"),
		}
		rec.Key = keyFromDisplayID(rec.DisplayID)
		fields := []struct {
			name string
			dst  *Amount
		}{
			{"Sale Amount", &rec.SaleAmount},
			{"Shipping Fee", &rec.ShippingFee},
			{"Sales Tax", &rec.SalesTax},
			{"Shipping Transaction Fee", &rec.ShippingTransactionFee},
			{"Item Transaction Fee", &rec.ItemTransactionFee},
			{"Processing Fee", &rec.ProcessingFee},
			{"Listing Fee", &rec.ListingFee},
			{"Offsite Ads Fee", &rec.OffsiteAdsFee},
			{"Etsy Ads Fee", &rec.EtsyAdsFee},
			{"Net", &rec.Net},
		}
		for _, f := range fields {
			a, err := amount(line, f.name)
			if err != nil {
				return nil, fmt.Errorf("cannot read record %q column %q: %w", rec.DisplayID, f.name, err)
			}
			*f.dst = a
		}
		records = append(records, rec)
	}
	return records, nil
}

// keyFromDisplayID reverses the display form back into the record key.
func keyFromDisplayID(displayID string) string {
	switch {
	case strings.HasPrefix(displayID, "Listing #"):
		return "Listing_" + strings.TrimPrefix(displayID, "Listing #")
	case strings.HasPrefix(displayID, "Label #"):
		return "Label_" + strings.TrimPrefix(displayID, "Label #")
	default:
		return displayID
	}
}
