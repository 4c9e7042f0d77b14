package domain

import (
	"github.com/holiman/uint256"
)

// Amount is a non-negative quantity of the native currency in its smallest
// unit. It is a fixed 256-bit value type, so copies never alias.
type Amount = uint256.Int

// NewAmount returns an Amount holding v.
func NewAmount(v uint64) Amount {
	return *uint256.NewInt(v)
}

// ParseAmount parses a base-10 string without sign or fraction.
func ParseAmount(s string) (Amount, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return *v, nil
}

// AddAmounts returns a+b or ErrAmountOverflow when the sum does not fit.
func AddAmounts(a, b Amount) (Amount, error) {
	var sum Amount
	if _, overflow := sum.AddOverflow(&a, &b); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return sum, nil
}

// SubAmounts returns a-b or ErrAmountOverflow when b > a.
func SubAmounts(a, b Amount) (Amount, error) {
	var diff Amount
	if _, underflow := diff.SubOverflow(&a, &b); underflow {
		return Amount{}, ErrAmountOverflow
	}
	return diff, nil
}

// FormatAmount renders a in base 10. It takes a copy, so it also works on
// values that are not addressable, such as function results.
func FormatAmount(a Amount) string {
	return a.Dec()
}
