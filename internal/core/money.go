// Package core provides the expense model and the validators for user input.
//
// This file contains the amount parsing and formatting helpers. Amounts are
// kept as decimals so per-category totals always add up to the grand total.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts s to a non-negative decimal amount.
//
// Surrounding whitespace is ignored and zero is accepted. Returns false for
// anything that is not a number or is negative.
//
// Examples:
//
//	ParseAmount("12.50") -> 12.5, true
//	ParseAmount("0")     -> 0, true
//	ParseAmount("-1")    -> 0, false
//	ParseAmount("abc")   -> 0, false
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// FormatAmount renders d with exactly two decimal digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
