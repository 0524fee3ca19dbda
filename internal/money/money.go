package money

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidMoney = errors.New("invalid money amount")
)

// DollarsToCents converts a dollar value (like 12.34) to cents as int64 safely.
// Use ONLY when you must parse user-entered decimal dollars.
// Prefer sending cents directly from the client.
func DollarsToCents(dollars float64) (int64, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, ErrInvalidMoney
	}
	if dollars < 0 {
		return 0, ErrInvalidMoney
	}
	// Prevent overflow: int64 max ~9e18 => dollars max ~9e16
	if dollars > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidMoney)
	}
	cents := int64(math.Round(dollars * 100.0))
	if cents < 0 {
		return 0, ErrInvalidMoney
	}
	return cents, nil
}

// CentsToDollarsString formats cents as a plain decimal string without floats.
func CentsToDollarsString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	d := cents / 100
	c := cents % 100
	return fmt.Sprintf("%s%d.%02d", sign, d, c)
}
