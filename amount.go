package etsy

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// currency is the only currency appearing in Etsy statement exports.
const currency = money.USD

// missingValue is the sentinel Etsy uses for an empty amount cell.
const missingValue = "--"

// Amount represents a monetary value from a statement, in USD.
//
// It is kept as an exact decimal: rounding to cents is a presentation
// concern, handled in String only.
type Amount struct {
	value decimal.Decimal
}

func AmountOf[T float32 | float64 | int | int32 | int64](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported decimal type %T", value))
	}
}

// ParseError reports an amount cell that could not be parsed as a number.
// It always propagates to the caller: silently coercing a bad cell to zero
// would corrupt totals without detection.
type ParseError struct {
	Cell string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable amount %q: %v", e.Cell, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseAmount converts a statement amount cell into an Amount.
//
// An empty cell or the "--" sentinel yields zero. Otherwise the cell is
// cleaned of currency formatting ("$" and thousands separators) and parsed
// as a decimal number, so "$1,234.56" and "-$1.50" are both valid.
func ParseAmount(cell string) (Amount, error) {
	s := strings.TrimSpace(cell)
	if s == "" || s == missingValue {
		return Amount{}, nil
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, &ParseError{Cell: cell, Err: err}
	}
	return Amount{value: value}, nil
}

// MustAmount is like ParseAmount but panics on error. For tests and literals.
func MustAmount(cell string) Amount {
	a, err := ParseAmount(cell)
	if err != nil {
		panic(err.Error())
	}
	return a
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount         { return Amount{value: a.value.Abs()} }

func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsPositive() bool    { return a.value.IsPositive() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }

// Div divides the amount by an integer count, for averages.
func (a Amount) Div(n int) Amount {
	return Amount{value: a.value.Div(decimal.NewFromInt(int64(n)))}
}

// Float64 returns the closest float64 value. Reporting only.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// Cell returns the plain numeric representation persisted in statement files.
func (a Amount) Cell() string { return a.value.String() }

// MarshalJSON writes the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

// UnmarshalJSON accepts both quoted and unquoted numbers.
func (a *Amount) UnmarshalJSON(data []byte) error { return a.value.UnmarshalJSON(data) }

// String returns the amount formatted for display, e.g. "$1,234.56".
func (a Amount) String() string {
	cur := money.New(0, currency).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}
