package calc_test

import (
	"testing"

	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
)

func palmLine(lineNo int, productID, weight, price string) calc.Line {
	l := calc.NewLine("g1", lineNo)
	l.ProductID = productID
	l.SetPrice(price)
	l.SetWeight(weight)
	return l
}

func TestBroadcastHarvest(t *testing.T) {
	lines := []calc.Line{
		palmLine(1, "palm", "1000", "5"),
		palmLine(2, "palm", "500", "5"),
		palmLine(3, "latex", "100", "20"),
	}
	cfg := calc.HarvestBroadcast{
		EmployeeID:       "emp-1",
		HarvestRate:      "0.05",
		PromotionTarget:  enum.PromotionTargetSplit,
		PromotionRate:    "0.1",
		FarmerPaidType:   enum.PaidTypeBankTransfer,
		EmployeePaidType: enum.PaidTypeCash,
	}

	out := calc.BroadcastHarvest(lines, "palm", cfg)

	// Input slice untouched.
	if lines[0].IsHarvestRate {
		t.Fatal("BroadcastHarvest mutated its input")
	}

	for _, l := range out[:2] {
		if !l.IsHarvestRate || l.HarvestRate != "0.05" {
			t.Errorf("line %d: harvest not applied: %v %q", l.LineNo, l.IsHarvestRate, l.HarvestRate)
		}
		if l.EmployeeID != "emp-1" {
			t.Errorf("line %d: EmployeeID = %q, want emp-1", l.LineNo, l.EmployeeID)
		}
		if l.SplitMode != enum.SplitModeNone {
			t.Errorf("line %d: SplitMode = %q, want none", l.LineNo, l.SplitMode)
		}
		if l.FarmerPaidType != enum.PaidTypeBankTransfer {
			t.Errorf("line %d: FarmerPaidType = %q", l.LineNo, l.FarmerPaidType)
		}
	}
	if out[0].FarmerAmount != "4950" || out[0].EmployeeAmount != "50" {
		t.Errorf("line 1 shares = %q/%q, want 4950/50", out[0].FarmerAmount, out[0].EmployeeAmount)
	}
	if out[1].FarmerAmount != "2475" || out[1].EmployeeAmount != "25" {
		t.Errorf("line 2 shares = %q/%q, want 2475/25", out[1].FarmerAmount, out[1].EmployeeAmount)
	}
	if out[0].PromotionAmount != "100" || out[1].PromotionAmount != "50" {
		t.Errorf("promotion amounts = %q/%q, want 100/50", out[0].PromotionAmount, out[1].PromotionAmount)
	}

	// The latex line passes through unchanged.
	if out[2] != lines[2] {
		t.Errorf("non-matching line changed:\n before %+v\n after %+v", lines[2], out[2])
	}
}

func TestClearHarvestRestoresLines(t *testing.T) {
	lines := []calc.Line{
		palmLine(1, "palm", "1000", "5"),
		palmLine(2, "latex", "100", "20"),
	}
	cfg := calc.HarvestBroadcast{
		EmployeeID:       "emp-1",
		HarvestRate:      "0.05",
		PromotionTarget:  enum.PromotionTargetSplit,
		PromotionRate:    "0.1",
		FarmerPaidType:   enum.PaidTypeCash,
		EmployeePaidType: enum.PaidTypeBankTransfer,
	}

	applied := calc.BroadcastHarvest(lines, "palm", cfg)
	cleared := calc.ClearHarvest(applied, "palm")

	got := cleared[0]
	if got.IsHarvestRate || got.HarvestRate != "" || got.EmployeeID != "" {
		t.Errorf("harvest fields survived clear: %v %q %q", got.IsHarvestRate, got.HarvestRate, got.EmployeeID)
	}
	if got.FarmerAmount != "5000" || got.EmployeeAmount != "" {
		t.Errorf("shares = %q/%q, want 5000/blank", got.FarmerAmount, got.EmployeeAmount)
	}
	if got.PromotionRate != "" || got.PromotionAmount != "" {
		t.Errorf("promotion fields survived clear: %q %q", got.PromotionRate, got.PromotionAmount)
	}
	if got.FarmerPaidType != enum.PaidTypeCash || got.EmployeePaidType != enum.PaidTypeCash {
		t.Errorf("paid types = %q/%q, want cash/cash", got.FarmerPaidType, got.EmployeePaidType)
	}
	if got.TotalNetAmount != "5000" {
		t.Errorf("TotalNetAmount = %q, want 5000", got.TotalNetAmount)
	}
	if cleared[1] != lines[1] {
		t.Errorf("non-matching line changed by clear")
	}
}
