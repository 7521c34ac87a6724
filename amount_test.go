package etsy

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		cell string
		want float64
	}{
		{cell: "$1,234.56", want: 1234.56},
		{cell: "$25.00", want: 25},
		{cell: "-$1.50", want: -1.5},
		{cell: "-7.5", want: -7.5},
		{cell: "--", want: 0},
		{cell: "", want: 0},
		{cell: "  $3.00 ", want: 3},
		{cell: "$12,345,678.90", want: 12345678.9},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.cell)
		if err != nil {
			t.Errorf("ParseAmount(%q): unexpected error %v", tc.cell, err)
			continue
		}
		if !got.Equal(AmountOf(tc.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %v", tc.cell, got.Cell(), tc.want)
		}
	}
}

func TestParseAmountError(t *testing.T) {
	for _, cell := range []string{"N/A", "$", "1.2.3", "twelve"} {
		_, err := ParseAmount(cell)
		if err == nil {
			t.Errorf("ParseAmount(%q): expected an error", cell)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseAmount(%q): error is %T, want *ParseError", cell, err)
			continue
		}
		if perr.Cell != cell {
			t.Errorf("ParseAmount(%q): ParseError.Cell = %q", cell, perr.Cell)
		}
	}
}

func TestAmountString(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{cell: "1234.56", want: "$1,234.56"},
		{cell: "25", want: "$25.00"},
		{cell: "-1.5", want: "-$1.50"},
		{cell: "--", want: "$0.00"},
	}
	for _, tc := range tests {
		if got := MustAmount(tc.cell).String(); got != tc.want {
			t.Errorf("Amount(%q).String() = %q, want %q", tc.cell, got, tc.want)
		}
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := MustAmount("0.1")
	sum := Amount{}
	for range 10 {
		sum = sum.Add(a)
	}
	// decimal arithmetic is exact where binary floats are not
	if !sum.Equal(AmountOf(1)) {
		t.Errorf("10 * 0.1 = %s, want 1", sum.Cell())
	}

	if got := AmountOf(25).Div(4); !got.Equal(MustAmount("6.25")) {
		t.Errorf("25 / 4 = %s, want 6.25", got.Cell())
	}
}
