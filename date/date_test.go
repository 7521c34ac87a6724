package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	// day 0 of March is the last day of February.
	d := New(2024, time.March, 0)
	if got, want := d.String(), "2024-02-29"; got != want {
		t.Errorf("New(2024, March, 0) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "2025-01-31", want: "2025-01-31"},
		{in: "2025-7-1", want: "2025-07-01"},
		{in: "31-Jan-25", err: true},
		{in: "", err: true},
	}
	for _, tc := range tests {
		d, err := Parse(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("Parse(%q): expected an error, got %s", tc.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.in, err)
			continue
		}
		if d.String() != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, d, tc.want)
		}
	}
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		layout string
		in     string
		want   string
	}{
		{layout: "02-Jan-06", in: "01-Mar-25", want: "2025-03-01"},
		{layout: "2-Jan-06", in: "1-Mar-25", want: "2025-03-01"},
		{layout: "January 2, 2006", in: "March 1, 2025", want: "2025-03-01"},
		{layout: DateFormat, in: "2025-03-01", want: "2025-03-01"},
	}
	for _, tc := range tests {
		d, err := ParseStatement(tc.layout, tc.in)
		if err != nil {
			t.Errorf("ParseStatement(%q, %q): unexpected error %v", tc.layout, tc.in, err)
			continue
		}
		if d.String() != tc.want {
			t.Errorf("ParseStatement(%q, %q) = %s, want %s", tc.layout, tc.in, d, tc.want)
		}
	}

	if _, err := ParseStatement("02-Jan-06", "March 1, 2025"); err == nil {
		t.Error("ParseStatement with mismatched layout: expected an error")
	}
}

func TestStartEndOf(t *testing.T) {
	d := MustParse("2025-03-15")
	if got, want := d.StartOf(Monthly), MustParse("2025-03-01"); got != want {
		t.Errorf("StartOf(Monthly) = %s, want %s", got, want)
	}
	if got, want := d.EndOf(Monthly), MustParse("2025-03-31"); got != want {
		t.Errorf("EndOf(Monthly) = %s, want %s", got, want)
	}
	if got, want := d.StartOf(Yearly), MustParse("2025-01-01"); got != want {
		t.Errorf("StartOf(Yearly) = %s, want %s", got, want)
	}
	if got, want := d.EndOf(Yearly), MustParse("2025-12-31"); got != want {
		t.Errorf("EndOf(Yearly) = %s, want %s", got, want)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{From: MustParse("2025-03-01"), To: MustParse("2025-03-31")}

	for _, in := range []string{"2025-03-01", "2025-03-15", "2025-03-31"} {
		if !r.Contains(MustParse(in)) {
			t.Errorf("Contains(%s) = false, want true", in)
		}
	}
	for _, out := range []string{"2025-02-28", "2025-04-01"} {
		if r.Contains(MustParse(out)) {
			t.Errorf("Contains(%s) = true, want false", out)
		}
	}

	// open ranges
	var all Range
	if !all.Contains(MustParse("1999-01-01")) {
		t.Error("zero Range must contain any date")
	}
	after := Range{From: MustParse("2025-01-01")}
	if after.Contains(MustParse("2024-12-31")) {
		t.Error("open-ended Range must still enforce From")
	}
}

func TestRangeIdentifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Range{}, "all"},
		{NewRange(MustParse("2025-03-15"), Monthly), "2025-03"},
		{NewRange(MustParse("2025-03-15"), Yearly), "2025"},
		{Range{From: MustParse("2025-03-02"), To: MustParse("2025-03-02")}, "2025-03-02"},
		{Range{From: MustParse("2025-03-02"), To: MustParse("2025-04-10")}, "2025-03-02_2025-04-10"},
	}
	for _, tc := range tests {
		if got := tc.r.Identifier(); got != tc.want {
			t.Errorf("Identifier(%v) = %q, want %q", tc.r, got, tc.want)
		}
	}
}
