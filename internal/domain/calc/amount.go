package calc

import "github.com/shopspring/decimal"

// Numeric helpers for transaction-line derived fields. Every helper takes
// operator-entered decimal strings and returns decimal strings, with Blank as
// the "undefined" result. All helpers except NetTotal apply the same guard:
// any required operand that is blank, zero, or unparseable yields Blank.

// Amount computes weight × price rounded to the nearest integer.
func Amount(weight, price string) string {
	w, ok := parseRequired(weight)
	if !ok {
		return Blank
	}
	p, ok := parseRequired(price)
	if !ok {
		return Blank
	}
	return Format(roundAmount(w.Mul(p)))
}

// SplitAmount computes one party's share: total × ratio rounded to the
// nearest integer.
func SplitAmount(totalAmount, ratio string) string {
	t, ok := parseRequired(totalAmount)
	if !ok {
		return Blank
	}
	r, ok := parseRequired(ratio)
	if !ok {
		return Blank
	}
	return Format(roundAmount(t.Mul(r)))
}

// SplitComplement computes the employee ratio from the farmer ratio,
// rendered to two decimal places (0.6 gives "0.40").
func SplitComplement(farmerRatio string) string {
	r, ok := parseRequired(farmerRatio)
	if !ok {
		return Blank
	}
	return decimal.NewFromInt(1).Sub(r).StringFixed(2)
}

// TransportFeeResult carries the three outputs of the transport-fee rule.
type TransportFeeResult struct {
	FeeAmount      string
	FarmerAmount   string
	EmployeeAmount string
}

// TransportFee computes the per-weight transport fee and the fee-adjusted
// farmer/employee amounts: the fee is added to the farmer's share and
// subtracted from the employee's.
func TransportFee(farmerAmount, employeeAmount, weight, feeRate string) TransportFeeResult {
	fa, okFA := parseRequired(farmerAmount)
	ea, okEA := parseRequired(employeeAmount)
	w, okW := parseRequired(weight)
	rate, okR := parseRequired(feeRate)
	if !okFA || !okEA || !okW || !okR {
		return TransportFeeResult{FeeAmount: Blank, FarmerAmount: Blank, EmployeeAmount: Blank}
	}
	fee := roundAmount(w.Mul(rate))
	return TransportFeeResult{
		FeeAmount:      Format(fee),
		FarmerAmount:   Format(fa.Add(fee)),
		EmployeeAmount: Format(ea.Sub(fee)),
	}
}

// HarvestSplitResult carries the outputs of the palm harvest-rate rule.
type HarvestSplitResult struct {
	Deduction      string
	FarmerAmount   string
	EmployeeAmount string
}

// HarvestSplit computes the harvesting-labour deduction (rate × weight,
// rounded) paid to the employee, and the farmer's remainder of the total.
func HarvestSplit(harvestRate, weight, totalAmount string) HarvestSplitResult {
	r, okR := parseRequired(harvestRate)
	w, okW := parseRequired(weight)
	t, okT := parseRequired(totalAmount)
	if !okR || !okW || !okT {
		return HarvestSplitResult{Deduction: Blank, FarmerAmount: Blank, EmployeeAmount: Blank}
	}
	deduction := roundAmount(r.Mul(w))
	return HarvestSplitResult{
		Deduction:      Format(deduction),
		FarmerAmount:   Format(t.Sub(deduction)),
		EmployeeAmount: Format(deduction),
	}
}

// PromotionAmount computes the referral/delivery commission: rate × weight
// rounded to the nearest integer.
func PromotionAmount(promotionRate, weight string) string {
	r, ok := parseRequired(promotionRate)
	if !ok {
		return Blank
	}
	w, ok := parseRequired(weight)
	if !ok {
		return Blank
	}
	return Format(roundAmount(r.Mul(w)))
}

// VehicleNetWeight computes the produce weight from a vehicle weigh-in and
// weigh-out, without rounding.
func VehicleNetWeight(weighIn, weighOut string) string {
	in, ok := parseRequired(weighIn)
	if !ok {
		return Blank
	}
	out, ok := parseRequired(weighOut)
	if !ok {
		return Blank
	}
	return Format(in.Sub(out))
}

// NetTotal computes totalAmount + promotionAmount. Unlike every other helper
// it treats blank operands as zero, so a line with no promotion still carries
// its total forward.
func NetTotal(totalAmount, promotionAmount string) string {
	return Format(parseOrZero(totalAmount).Add(parseOrZero(promotionAmount)))
}
