package calc_test

import (
	"testing"

	"github.com/supthawee/farmgate-api/internal/domain/calc"
)

func TestAmount_Rounding(t *testing.T) {
	tests := []struct {
		weight, price, want string
	}{
		{"100", "10", "1000"},
		{"10.5", "3", "32"},   // 31.5 rounds up
		{"10.5", "2.9", "30"}, // 30.45 rounds down
		{"200", "5", "1000"},
		{"1", "1", "1"},
	}
	for _, tt := range tests {
		if got := calc.Amount(tt.weight, tt.price); got != tt.want {
			t.Errorf("Amount(%q, %q) = %q, want %q", tt.weight, tt.price, got, tt.want)
		}
	}
}

func TestHelpers_BlankPropagation(t *testing.T) {
	// Blank, zero, and non-numeric operands all yield the blank sentinel,
	// never a panic and never "NaN".
	bad := []string{"", "0", "abc", "1.2.3"}
	for _, b := range bad {
		if got := calc.Amount(b, "10"); got != "" {
			t.Errorf("Amount(%q, 10) = %q, want blank", b, got)
		}
		if got := calc.Amount("10", b); got != "" {
			t.Errorf("Amount(10, %q) = %q, want blank", b, got)
		}
		if got := calc.SplitAmount(b, "0.6"); got != "" {
			t.Errorf("SplitAmount(%q, 0.6) = %q, want blank", b, got)
		}
		if got := calc.SplitComplement(b); got != "" {
			t.Errorf("SplitComplement(%q) = %q, want blank", b, got)
		}
		if got := calc.PromotionAmount(b, "100"); got != "" {
			t.Errorf("PromotionAmount(%q, 100) = %q, want blank", b, got)
		}
		if got := calc.VehicleNetWeight(b, "10"); got != "" {
			t.Errorf("VehicleNetWeight(%q, 10) = %q, want blank", b, got)
		}
		res := calc.TransportFee("100", "50", b, "2")
		if res.FeeAmount != "" || res.FarmerAmount != "" || res.EmployeeAmount != "" {
			t.Errorf("TransportFee with weight %q = %+v, want all blank", b, res)
		}
		hr := calc.HarvestSplit(b, "1000", "5000")
		if hr.Deduction != "" || hr.FarmerAmount != "" || hr.EmployeeAmount != "" {
			t.Errorf("HarvestSplit with rate %q = %+v, want all blank", b, hr)
		}
	}
}

func TestNetTotal_TreatsBlankAsZero(t *testing.T) {
	tests := []struct {
		total, promotion, want string
	}{
		{"1000", "100", "1100"},
		{"1000", "", "1000"},
		{"", "100", "100"},
		{"", "", "0"},
		{"1000", "junk", "1000"},
	}
	for _, tt := range tests {
		if got := calc.NetTotal(tt.total, tt.promotion); got != tt.want {
			t.Errorf("NetTotal(%q, %q) = %q, want %q", tt.total, tt.promotion, got, tt.want)
		}
	}
}

func TestSplitComplement(t *testing.T) {
	tests := []struct {
		ratio, want string
	}{
		{"0.6", "0.40"},
		{"0.55", "0.45"},
		{"0.58", "0.42"},
		{"0.5", "0.50"},
	}
	for _, tt := range tests {
		if got := calc.SplitComplement(tt.ratio); got != tt.want {
			t.Errorf("SplitComplement(%q) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestTransportFee_RoundTrip(t *testing.T) {
	res := calc.TransportFee("100", "50", "20", "2")
	if res.FeeAmount != "40" {
		t.Errorf("FeeAmount = %q, want 40", res.FeeAmount)
	}
	if res.FarmerAmount != "140" {
		t.Errorf("FarmerAmount = %q, want 140", res.FarmerAmount)
	}
	if res.EmployeeAmount != "10" {
		t.Errorf("EmployeeAmount = %q, want 10", res.EmployeeAmount)
	}
}

func TestHarvestSplit(t *testing.T) {
	res := calc.HarvestSplit("0.05", "1000", "5000")
	if res.Deduction != "50" {
		t.Errorf("Deduction = %q, want 50", res.Deduction)
	}
	if res.FarmerAmount != "4950" {
		t.Errorf("FarmerAmount = %q, want 4950", res.FarmerAmount)
	}
	if res.EmployeeAmount != "50" {
		t.Errorf("EmployeeAmount = %q, want 50", res.EmployeeAmount)
	}
}

func TestVehicleNetWeight(t *testing.T) {
	if got := calc.VehicleNetWeight("120", "20"); got != "100" {
		t.Errorf("VehicleNetWeight(120, 20) = %q, want 100", got)
	}
	if got := calc.VehicleNetWeight("10.5", "2"); got != "8.50" {
		t.Errorf("VehicleNetWeight(10.5, 2) = %q, want 8.50", got)
	}
}

func TestFormatRatio(t *testing.T) {
	if got := calc.FormatRatio("0.6"); got != "60" {
		t.Errorf("FormatRatio(0.6) = %q, want 60", got)
	}
	if got := calc.FormatHarvestRate("0.05"); got != "50" {
		t.Errorf("FormatHarvestRate(0.05) = %q, want 50", got)
	}
}
