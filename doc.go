// Package etsy implements the statement ingestion and reconciliation engine
// behind EtsyTrackr. It turns the raw, semi-structured transaction ledger
// that Etsy exports (one row per sale, refund, fee, tax or shipping label
// event) into coherent per-order financial records.
//
// The core functionalities include:
//   - Statement Decoding: Reading raw CSV exports with their several date
//     formats and currency-formatted amount cells.
//   - Row Classification: Mapping each ledger row to a semantic kind (sale,
//     refund, fee subtype, tax, listing fee, shipping label) with the
//     identifiers extracted from its free-text columns.
//   - Order Aggregation: Folding classified rows into one consolidated record
//     per order, listing fee event or shipping label purchase, with correctly
//     signed, categorized monetary fields whose sum is always the net.
//   - Statement Store: Persisting consolidated records as one file per
//     calendar month, with wholesale overwrite on re-import, duplicate
//     detection by order identifier, and cross-month summaries.
//   - Reporting: Aggregate metrics (sales, fees, net income, profit after
//     expenses) over summaries plus the hand-recorded expense ledger.
//
// This package serves as the foundational logic for the `etr` command-line
// tool; rendering and interaction live outside it.
package etsy
