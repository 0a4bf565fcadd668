// Package core holds the domain entities of the finance tracker and the
// value objects shared by the analytics engine.
//
// This file contains helpers for parsing and rendering monetary amounts.
// Amounts are carried as fixed-precision decimals end to end; conversion to
// a floating display value happens only at presentation time.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to an amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rejects negative values. Zero is allowed: the transaction invariant is
// amount >= 0, stricter rules (contributions, targets) are enforced by the
// entity validators.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParsePositiveAmount is ParseAmount with a strictly-positive requirement,
// used for savings contributions and plan targets.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// DisplayValue rounds an amount to two decimals and returns it as a float
// for JSON payloads and spreadsheet cells.
func DisplayValue(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
