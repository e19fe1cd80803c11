// Package money implements two-decimal currency amounts backed by integer cents.
//
// Amounts are persisted into DECIMAL(10,2) columns as their exact text form
// ("108.50"), so no driver ever sees a float on the write path.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned for input that is not a non-negative decimal
// with at most two fractional digits fitting DECIMAL(10,2).
var ErrInvalidAmount = errors.New("invalid amount")

const (
	centsPerUnit = 100

	// MaxCents is the largest amount a DECIMAL(10,2) column holds (99999999.99).
	MaxCents = 9_999_999_999
)

// Money is an amount in cents.
type Money int64

// FromCents builds an amount from a count of cents.
func FromCents(cents int64) Money {
	return Money(cents)
}

// Parse reads a user-entered amount such as "100", "12.5" or "12.50".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || !isDigits(whole) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if hasFrac {
		if frac == "" || !isDigits(frac) {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
		}
		if len(frac) > 2 {
			return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
		}
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > MaxCents/centsPerUnit {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}

	return Money(units*centsPerUnit + cents), nil
}

// MustParse is Parse for package-level constants. It panics on bad input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) IsZero() bool {
	return m == 0
}

// String renders the amount with exactly two decimals.
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/centsPerUnit, cents%centsPerUnit)
}

// Format prefixes the amount with a currency label, e.g. "Rs. 108.50".
func (m Money) Format(label string) string {
	if label == "" {
		return m.String()
	}
	return label + " " + m.String()
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner. Drivers hand DECIMAL values back in different
// shapes: MySQL as []byte, pgx as string, and SQLite as int64 or float64 after
// numeric affinity conversion.
func (m *Money) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = 0
		return nil
	case int64:
		*m = Money(v * centsPerUnit)
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, v)
		}
		return m.scanText(strconv.FormatFloat(v, 'f', 2, 64))
	case []byte:
		return m.scanText(string(v))
	case string:
		return m.scanText(v)
	default:
		return fmt.Errorf("money: cannot scan %T", value)
	}
}

func (m *Money) scanText(s string) error {
	negative := strings.HasPrefix(s, "-")
	parsed, err := Parse(strings.TrimPrefix(s, "-"))
	if err != nil {
		return err
	}
	if negative {
		parsed = -parsed
	}
	*m = parsed
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
