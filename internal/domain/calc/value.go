package calc

import "github.com/shopspring/decimal"

// Blank is the "no value" sentinel used across the calculation engine. It is
// deliberately distinct from zero: a blank field is one the operator has not
// filled in yet, and every derived field downstream of a blank stays blank
// instead of flashing a premature "0" mid-entry.
const Blank = ""

// parseRequired parses s as a decimal operand. Blank, zero, and malformed
// input all report ok=false, which callers translate into the blank sentinel.
func parseRequired(s string) (decimal.Decimal, bool) {
	if s == Blank {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsZero() {
		return decimal.Zero, false
	}
	return d, true
}

// parseOrZero parses s as a decimal, treating blank or malformed input as
// zero. Only NetTotal uses this relaxed form.
func parseOrZero(s string) decimal.Decimal {
	if s == Blank {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders a decimal for display and storage: integer values without a
// fractional part, everything else to exactly two decimal places.
func Format(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(2)
}

// FormatRatio renders a split ratio as a percentage-like figure for receipts:
// 0.6 prints as "60".
func FormatRatio(ratio string) string {
	d, ok := parseRequired(ratio)
	if !ok {
		return Blank
	}
	return Format(d.Mul(decimal.NewFromInt(100)).Round(0))
}

// FormatHarvestRate renders a palm harvest rate for receipts, scaled by a
// thousand: 0.05 prints as "50".
func FormatHarvestRate(rate string) string {
	d, ok := parseRequired(rate)
	if !ok {
		return Blank
	}
	return Format(d.Mul(decimal.NewFromInt(1000)))
}

// roundAmount rounds to the nearest integer, halves away from zero. Operands
// in this domain are non-negative, so this matches the historical rounding of
// stored totals.
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
