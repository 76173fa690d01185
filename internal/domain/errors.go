package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCategory is returned when an enumerated input (tier, vehicle type,
	// filing status, ...) is not one of the supported variants
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidInput is returned for negative, non-finite or out-of-range
	// numeric input
	ErrInvalidInput = errors.New("invalid input")
)

// MaxAmount bounds every numeric input. Larger values are rejected before any
// arithmetic touches them.
var MaxAmount = decimal.New(1, 12)

const (
	// maxIntegerDigits is the digit count of MaxAmount
	maxIntegerDigits = 13
	// minExponent limits inputs to 28 decimal places
	minExponent = -28
)

// InvalidCategory builds an ErrInvalidCategory error naming the field and value
func InvalidCategory(field, value string) error {
	return fmt.Errorf("%w: unsupported %s %q", ErrInvalidCategory, field, value)
}

// RequireNonNegative rejects negative amounts and amounts outside
// [0, MaxAmount]. Comparing, printing or multiplying a decimal rescales its
// coefficient, so the exponent is checked first: 1e100000000 would otherwise
// expand to a hundred-million-digit integer.
func RequireNonNegative(field string, v decimal.Decimal) error {
	exp := v.Exponent()
	if exp < minExponent {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidInput, field, -minExponent)
	}
	if exp > maxIntegerDigits || int64(v.NumDigits())+int64(exp) > maxIntegerDigits {
		return fmt.Errorf("%w: %s is out of range (limit %s)", ErrInvalidInput, field, MaxAmount.String())
	}
	if v.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative (got %s)", ErrInvalidInput, field, v.String())
	}
	if v.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: %s is out of range (limit %s)", ErrInvalidInput, field, MaxAmount.String())
	}
	return nil
}

// DecimalFromFloat converts a float to a decimal, rejecting NaN, infinities
// and negative values.
func DecimalFromFloat(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, field)
	}
	d := decimal.NewFromFloat(v)
	if err := RequireNonNegative(field, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
