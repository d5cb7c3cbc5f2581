package calc_test

import (
	"testing"

	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
)

func TestSimpleCashSale(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("10")
	l.SetWeight("100")

	if l.TotalAmount != "1000" {
		t.Fatalf("TotalAmount = %q, want 1000", l.TotalAmount)
	}
	if l.FarmerAmount != "1000" {
		t.Errorf("FarmerAmount = %q, want 1000", l.FarmerAmount)
	}
	if l.EmployeeAmount != "" {
		t.Errorf("EmployeeAmount = %q, want blank", l.EmployeeAmount)
	}
	if l.TotalNetAmount != "1000" {
		t.Errorf("TotalNetAmount = %q, want 1000", l.TotalNetAmount)
	}
	if l.FarmerPaidType != enum.PaidTypeCash || l.EmployeePaidType != enum.PaidTypeCash {
		t.Errorf("paid types = %q/%q, want cash/cash", l.FarmerPaidType, l.EmployeePaidType)
	}
}

func TestSplitPresetWithTransportFee(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("5")
	l.SetWeight("200")
	l.SetSplitMode(enum.SplitMode64)

	if l.FarmerRatio != "0.6" || l.EmployeeRatio != "0.4" {
		t.Fatalf("ratios = %q/%q, want 0.6/0.4", l.FarmerRatio, l.EmployeeRatio)
	}
	if l.FarmerAmount != "600" || l.EmployeeAmount != "400" {
		t.Fatalf("shares = %q/%q, want 600/400", l.FarmerAmount, l.EmployeeAmount)
	}

	l.SetTransportationFeeEnabled(true)
	l.SetTransportationFee("1")

	if l.TransportationFeeAmount != "200" {
		t.Errorf("fee amount = %q, want 200", l.TransportationFeeAmount)
	}
	if l.TransportationFeeFarmerAmount != "800" {
		t.Errorf("farmer after fee = %q, want 800", l.TransportationFeeFarmerAmount)
	}
	if l.TransportationFeeEmployeeAmount != "200" {
		t.Errorf("employee after fee = %q, want 200", l.TransportationFeeEmployeeAmount)
	}
	if got := l.EffectiveFarmerAmount(); got != "800" {
		t.Errorf("EffectiveFarmerAmount = %q, want 800", got)
	}
	if got := l.EffectiveEmployeeAmount(); got != "200" {
		t.Errorf("EffectiveEmployeeAmount = %q, want 200", got)
	}

	l.SetTransportationFeeEnabled(false)
	if l.TransportationFee != "" || l.TransportationFeeAmount != "" ||
		l.TransportationFeeFarmerAmount != "" || l.TransportationFeeEmployeeAmount != "" {
		t.Errorf("fee fields not cleared after toggle off: %+v", l)
	}
	if l.FarmerAmount != "600" || l.EmployeeAmount != "400" {
		t.Errorf("base shares changed by fee toggle: %q/%q", l.FarmerAmount, l.EmployeeAmount)
	}
}

func TestSplitPresetIdempotent(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("5")
	l.SetWeight("200")

	l.SetSplitMode(enum.SplitMode64)
	once := l
	l.SetSplitMode(enum.SplitMode64)
	if l != once {
		t.Errorf("re-applying the same split mode changed the line:\n first %+v\nsecond %+v", once, l)
	}
}

func TestSplitModeNoneClearsShares(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("5")
	l.SetWeight("200")
	l.SetSplitMode(enum.SplitMode64)
	l.EmployeeID = "emp-1"

	l.SetSplitMode(enum.SplitModeNone)
	if l.FarmerRatio != "" || l.EmployeeRatio != "" {
		t.Errorf("ratios = %q/%q, want blank", l.FarmerRatio, l.EmployeeRatio)
	}
	if l.FarmerAmount != "" || l.EmployeeAmount != "" {
		t.Errorf("shares = %q/%q, want blank", l.FarmerAmount, l.EmployeeAmount)
	}
	if l.EmployeeID != "" {
		t.Errorf("EmployeeID = %q, want cleared", l.EmployeeID)
	}
}

func TestSplitModeBeforeTotalKeepsEmployee(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.EmployeeID = "emp-1"

	l.SetSplitMode(enum.SplitMode64)
	if l.EmployeeID != "emp-1" {
		t.Fatalf("EmployeeID = %q, want emp-1 retained", l.EmployeeID)
	}
	if l.FarmerAmount != "" || l.EmployeeAmount != "" {
		t.Errorf("shares = %q/%q, want blank until a total exists", l.FarmerAmount, l.EmployeeAmount)
	}

	l.SetPrice("5")
	l.SetWeight("200")
	if l.FarmerAmount != "600" || l.EmployeeAmount != "400" {
		t.Errorf("shares = %q/%q, want 600/400", l.FarmerAmount, l.EmployeeAmount)
	}
}

func TestCustomRatio(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("10")
	l.SetWeight("100")
	l.SetSplitMode(enum.SplitModeCustom)

	l.SetFarmerRatio("0.7")
	if l.EmployeeRatio != "0.30" {
		t.Errorf("EmployeeRatio = %q, want 0.30", l.EmployeeRatio)
	}
	if l.FarmerAmount != "700" {
		t.Errorf("FarmerAmount = %q, want 700", l.FarmerAmount)
	}
	l.SetEmployeeRatio("0.30")
	if l.EmployeeAmount != "300" {
		t.Errorf("EmployeeAmount = %q, want 300", l.EmployeeAmount)
	}
}

func TestHarvestRateSplit(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("5")
	l.SetWeight("1000")
	if l.TotalAmount != "5000" {
		t.Fatalf("TotalAmount = %q, want 5000", l.TotalAmount)
	}

	l.SetHarvestRateEnabled(true)
	l.EmployeeID = "emp-1"
	l.SetHarvestRate("0.05")

	if l.FarmerAmount != "4950" {
		t.Errorf("FarmerAmount = %q, want 4950", l.FarmerAmount)
	}
	if l.EmployeeAmount != "50" {
		t.Errorf("EmployeeAmount = %q, want 50", l.EmployeeAmount)
	}
}

func TestHarvestOffResetsLine(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("5")
	l.SetWeight("1000")
	l.SetHarvestRateEnabled(true)
	l.EmployeeID = "emp-1"
	l.SetHarvestRate("0.05")
	l.PromotionTarget = enum.PromotionTargetSum
	l.SetPromotionRate("0.1")
	l.FarmerPaidType = enum.PaidTypeBankTransfer

	l.SetHarvestRateEnabled(false)

	if l.IsHarvestRate || l.HarvestRate != "" {
		t.Errorf("harvest fields not cleared: %v %q", l.IsHarvestRate, l.HarvestRate)
	}
	if l.EmployeeID != "" {
		t.Errorf("EmployeeID = %q, want cleared", l.EmployeeID)
	}
	if l.FarmerAmount != "5000" || l.EmployeeAmount != "" {
		t.Errorf("shares = %q/%q, want 5000/blank", l.FarmerAmount, l.EmployeeAmount)
	}
	if l.PromotionRate != "" || l.PromotionAmount != "" {
		t.Errorf("promotion fields not cleared: %q %q", l.PromotionRate, l.PromotionAmount)
	}
	if l.FarmerPaidType != enum.PaidTypeCash || l.EmployeePaidType != enum.PaidTypeCash {
		t.Errorf("paid types = %q/%q, want cash/cash", l.FarmerPaidType, l.EmployeePaidType)
	}
	if l.TotalNetAmount != "5000" {
		t.Errorf("TotalNetAmount = %q, want 5000", l.TotalNetAmount)
	}
}

func TestHarvestAndSplitMutuallyExclusive(t *testing.T) {
	sequences := []struct {
		name string
		run  func(l *calc.Line)
	}{
		{"harvest then split", func(l *calc.Line) {
			l.SetHarvestRateEnabled(true)
			l.SetHarvestRate("0.05")
			l.SetSplitMode(enum.SplitMode64)
		}},
		{"split then harvest", func(l *calc.Line) {
			l.SetSplitMode(enum.SplitMode64)
			l.SetHarvestRateEnabled(true)
		}},
		{"alternating", func(l *calc.Line) {
			l.SetSplitMode(enum.SplitMode5545)
			l.SetHarvestRateEnabled(true)
			l.SetSplitMode(enum.SplitModeHalf)
			l.SetHarvestRateEnabled(true)
		}},
	}
	for _, tt := range sequences {
		t.Run(tt.name, func(t *testing.T) {
			l := calc.NewLine("g1", 1)
			l.SetPrice("10")
			l.SetWeight("100")
			tt.run(&l)
			if l.IsHarvestRate && l.SplitMode != enum.SplitModeNone {
				t.Errorf("harvest flag and split mode %q both active", l.SplitMode)
			}
			if l.IsHarvestRate && (l.FarmerRatio != "" || l.EmployeeRatio != "") {
				t.Errorf("harvest active but ratios = %q/%q", l.FarmerRatio, l.EmployeeRatio)
			}
		})
	}
}

func TestPromotionSumTarget(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("1")
	l.SetWeight("1000")
	l.PromotionTarget = enum.PromotionTargetSum
	l.SetPromotionRate("0.1")

	if l.PromotionAmount != "100" {
		t.Errorf("PromotionAmount = %q, want 100", l.PromotionAmount)
	}
	if l.TotalNetAmount != "1100" {
		t.Errorf("TotalNetAmount = %q, want 1100", l.TotalNetAmount)
	}

	// Clearing the rate drops the amount and restores the plain net total.
	l.SetPromotionRate("")
	if l.PromotionAmount != "" || l.TotalNetAmount != "1000" {
		t.Errorf("after clearing rate: promo=%q net=%q, want blank/1000", l.PromotionAmount, l.TotalNetAmount)
	}
}

func TestVehicleWeightDerivation(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetPrice("10")
	l.SetVehicle(true)
	l.SetWeightVehicleIn("120")
	l.SetWeightVehicleOut("20")

	if l.Weight != "100" {
		t.Fatalf("Weight = %q, want 100", l.Weight)
	}
	if l.TotalAmount != "1000" {
		t.Errorf("TotalAmount = %q, want 1000", l.TotalAmount)
	}

	// Weigh-out above weigh-in gives a negative net weight, carried as-is.
	l.SetWeightVehicleOut("150")
	if l.Weight != "-30" {
		t.Errorf("Weight = %q, want -30", l.Weight)
	}
}

func TestBlankInputsNeverProduceNaN(t *testing.T) {
	l := calc.NewLine("g1", 1)
	l.SetWeight("100")
	// no price yet
	if l.TotalAmount != "" {
		t.Errorf("TotalAmount = %q, want blank without a price", l.TotalAmount)
	}
	if l.TotalNetAmount != "0" {
		t.Errorf("TotalNetAmount = %q, want 0", l.TotalNetAmount)
	}
	l.SetSplitMode(enum.SplitMode64)
	if l.FarmerAmount != "" || l.EmployeeAmount != "" {
		t.Errorf("shares = %q/%q, want blank while total is blank", l.FarmerAmount, l.EmployeeAmount)
	}
}
