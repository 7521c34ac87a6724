package etsy

import "strings"

// Identifiers are embedded in the free-text Title and Info columns as
// "<marker> <token>", e.g. "Order #3141592653". The token is everything up to
// the next whitespace after the last occurrence of the marker.

const (
	orderMarker   = "Order #"
	listingMarker = "Listing #"
	labelMarker   = "Label #"
)

// extractAfter returns the first whitespace-delimited token following the
// last occurrence of marker in text, or "" if the marker is absent or the
// marker is not followed by a token.
func extractAfter(text, marker string) string {
	i := strings.LastIndex(text, marker)
	if i < 0 {
		return ""
	}
	rest := strings.TrimSpace(text[i+len(marker):])
	if rest == "" {
		return ""
	}
	if j := strings.IndexFunc(rest, isSpace); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// extractOrderID extracts an order identifier from the Title, falling back to
// the Info column.
func extractOrderID(title, info string) string {
	if id := extractAfter(title, orderMarker); id != "" {
		return id
	}
	return extractAfter(info, orderMarker)
}

// extractListingID extracts a listing identifier from the Info column.
func extractListingID(info string) string { return extractAfter(info, listingMarker) }

// extractLabelID extracts a shipping label identifier from the Info column.
func extractLabelID(info string) string { return extractAfter(info, labelMarker) }
