package calc

import "github.com/supthawee/farmgate-api/internal/domain/enum"

// The recompute engine. Each Set* method is one named recompute rule: it
// writes the changed input field onto the line and synchronously rewrites
// every derived field downstream of it. Rules are idempotent and never fail —
// unparseable or missing operands degrade to Blank, so the engine is safe to
// run on half-entered lines.

// SetWeight records a directly entered weight and recomputes the total and
// everything downstream of it.
func (l *Line) SetWeight(weight string) {
	l.Weight = weight
	l.recomputeTotal()
}

// SetPrice records a unit price and recomputes the total and everything
// downstream of it.
func (l *Line) SetPrice(price string) {
	l.Price = price
	l.recomputeTotal()
}

func (l *Line) recomputeTotal() {
	l.SetTotalAmount(Amount(l.Weight, l.Price))
}

// SetTotalAmount records a total and reallocates it: with no split and no
// harvest rate the farmer keeps the whole amount, otherwise both shares are
// recomputed from the current ratios. The net total always follows.
func (l *Line) SetTotalAmount(total string) {
	l.TotalAmount = total
	if l.SplitMode == enum.SplitModeNone && !l.IsHarvestRate {
		l.FarmerAmount = total
		l.EmployeeAmount = Blank
	} else {
		l.FarmerAmount = SplitAmount(total, l.FarmerRatio)
		l.EmployeeAmount = SplitAmount(total, l.EmployeeRatio)
	}
	l.TotalNetAmount = NetTotal(l.TotalAmount, l.PromotionAmount)
}

// SetSplitMode applies a split preset. Ratios come from the preset table;
// custom and none have no preset and leave the ratios blank. Switching to
// none clears the share amounts and the employee assignment. A real split
// mode with no total yet keeps the employee and leaves the shares blank
// until a total arrives, and forces the harvest-rate flag off, keeping the
// two allocation modes mutually exclusive.
func (l *Line) SetSplitMode(mode enum.SplitMode) {
	l.SplitMode = mode
	if mode != enum.SplitModeNone && l.IsHarvestRate {
		l.IsHarvestRate = false
		l.HarvestRate = Blank
	}
	l.FarmerRatio, l.EmployeeRatio = mode.Ratios()

	if mode != enum.SplitModeNone && l.TotalAmount != Blank {
		l.FarmerAmount = SplitAmount(l.TotalAmount, l.FarmerRatio)
		l.EmployeeAmount = SplitAmount(l.TotalAmount, l.EmployeeRatio)
	} else {
		l.FarmerAmount = Blank
		l.EmployeeAmount = Blank
		if mode == enum.SplitModeNone {
			l.EmployeeID = ""
		}
	}
}

// SetFarmerRatio records a hand-entered farmer ratio (custom mode): the
// employee ratio becomes its complement, the farmer share is recomputed, and
// an active transport fee is re-derived from the new share.
func (l *Line) SetFarmerRatio(ratio string) {
	l.FarmerRatio = ratio
	l.EmployeeRatio = SplitComplement(ratio)
	l.FarmerAmount = SplitAmount(l.TotalAmount, ratio)
	if l.IsTransportationFee {
		l.recomputeTransportFee()
	}
}

// SetEmployeeRatio records a hand-entered employee ratio (custom mode),
// recomputes the employee share, and re-derives an active transport fee.
func (l *Line) SetEmployeeRatio(ratio string) {
	l.EmployeeRatio = ratio
	l.EmployeeAmount = SplitAmount(l.TotalAmount, ratio)
	if l.IsTransportationFee {
		l.recomputeTransportFee()
	}
}

// SetTransportationFeeEnabled toggles the transport-fee flag. Turning it off
// clears the fee rate and both adjusted amounts; the base farmer/employee
// shares are untouched.
func (l *Line) SetTransportationFeeEnabled(on bool) {
	l.IsTransportationFee = on
	if !on {
		l.TransportationFee = Blank
		l.TransportationFeeAmount = Blank
		l.TransportationFeeFarmerAmount = Blank
		l.TransportationFeeEmployeeAmount = Blank
	}
}

// SetTransportationFee records a fee rate and writes the fee amount plus the
// fee-adjusted farmer/employee amounts.
func (l *Line) SetTransportationFee(rate string) {
	l.TransportationFee = rate
	l.recomputeTransportFee()
}

func (l *Line) recomputeTransportFee() {
	res := TransportFee(l.FarmerAmount, l.EmployeeAmount, l.Weight, l.TransportationFee)
	l.TransportationFeeAmount = res.FeeAmount
	l.TransportationFeeFarmerAmount = res.FarmerAmount
	l.TransportationFeeEmployeeAmount = res.EmployeeAmount
}

// SetHarvestRateEnabled toggles the palm harvest-rate flag. Turning it on
// forces the split mode to none (mutual exclusion). Turning it off reverts
// the line to a plain sale: rate, employee assignment, promotion fields and
// paid types are reset and the farmer keeps the full total again.
func (l *Line) SetHarvestRateEnabled(on bool) {
	l.IsHarvestRate = on
	if on {
		l.SplitMode = enum.SplitModeNone
		l.FarmerRatio = Blank
		l.EmployeeRatio = Blank
		return
	}
	l.HarvestRate = Blank
	l.EmployeeID = ""
	l.FarmerAmount = l.TotalAmount
	l.EmployeeAmount = Blank
	l.PromotionRate = Blank
	l.PromotionAmount = Blank
	l.FarmerPaidType = enum.PaidTypeCash
	l.EmployeePaidType = enum.PaidTypeCash
	l.TotalNetAmount = l.TotalAmount
}

// SetHarvestRate records a harvest rate and splits the total into the
// employee's deduction and the farmer's remainder.
func (l *Line) SetHarvestRate(rate string) {
	l.HarvestRate = rate
	res := HarvestSplit(rate, l.Weight, l.TotalAmount)
	l.FarmerAmount = res.FarmerAmount
	l.EmployeeAmount = res.EmployeeAmount
}

// SetPromotionRate records a promotion (delivery commission) rate, derives
// its amount from the line weight, and refreshes the net total.
func (l *Line) SetPromotionRate(rate string) {
	l.PromotionRate = rate
	l.PromotionAmount = PromotionAmount(rate, l.Weight)
	l.TotalNetAmount = NetTotal(l.TotalAmount, l.PromotionAmount)
}

// SetVehicle toggles the vehicle weigh-in/out mode. While on, the weight is
// derived from the two vehicle weights and direct entry is ignored.
func (l *Line) SetVehicle(on bool) {
	l.IsVehicle = on
	if on {
		l.SetWeight(VehicleNetWeight(l.WeightVehicleIn, l.WeightVehicleOut))
	}
}

// SetWeightVehicleIn records a weigh-in and, in vehicle mode, re-derives the
// line weight and everything downstream.
func (l *Line) SetWeightVehicleIn(weighIn string) {
	l.WeightVehicleIn = weighIn
	if l.IsVehicle {
		l.SetWeight(VehicleNetWeight(l.WeightVehicleIn, l.WeightVehicleOut))
	}
}

// SetWeightVehicleOut records a weigh-out and, in vehicle mode, re-derives
// the line weight and everything downstream.
func (l *Line) SetWeightVehicleOut(weighOut string) {
	l.WeightVehicleOut = weighOut
	if l.IsVehicle {
		l.SetWeight(VehicleNetWeight(l.WeightVehicleIn, l.WeightVehicleOut))
	}
}
