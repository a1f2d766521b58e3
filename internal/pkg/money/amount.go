// Package money holds the monetary value type shared by employees and payroll.
//
// Amount wraps shopspring/decimal so arithmetic stays exact, serializes as a bare
// JSON number and decodes leniently: numbers are taken as is, strings are read up to
// their longest numeric prefix, and anything else (null, booleans, objects, garbage)
// becomes zero. Amount is never null and never NaN.
package money

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Amount struct {
	decimal.Decimal
}

var Zero = Amount{Decimal: decimal.Zero}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

func New(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// Parse reads the leading numeric part of s. Unparseable input yields Zero.
func Parse(s string) Amount {
	match := numericPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return Zero
	}
	match = strings.TrimSuffix(strings.Replace(match, ".e", "e", 1), ".")
	match = strings.Replace(match, ".E", "E", 1)

	d, err := decimal.NewFromString(match)
	if err != nil {
		return Zero
	}
	return Amount{Decimal: d}
}

// OrZero returns a, or Zero when a is nil.
func OrZero(a *Amount) Amount {
	if a == nil {
		return Zero
	}
	return *a
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*a = Zero
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*a = Zero
			return nil
		}
		*a = Parse(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*a = Parse(string(b))
	default:
		*a = Zero
	}
	return nil
}

// Float64 is used by renderers that need a plain float (spreadsheets, PDFs).
func (a Amount) Float64() float64 {
	return a.Decimal.InexactFloat64()
}

// NumericValue implements pgtype.NumericValuer so pgx encodes NUMERIC in binary,
// including in CopyFrom.
func (a Amount) NumericValue() (pgtype.Numeric, error) {
	return pgtype.Numeric{Int: a.Coefficient(), Exp: a.Exponent(), Valid: true}, nil
}

// ScanNumeric implements pgtype.NumericScanner. NULL, NaN and infinities scan as Zero.
func (a *Amount) ScanNumeric(n pgtype.Numeric) error {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		*a = Zero
		return nil
	}
	*a = Amount{Decimal: decimal.NewFromBigInt(n.Int, n.Exp)}
	return nil
}
