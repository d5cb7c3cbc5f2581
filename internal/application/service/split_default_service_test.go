package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
)

func f64(v float64) *float64 { return &v }

func TestApplyToLineSplitPreset(t *testing.T) {
	svc := service.NewSplitDefaultService(newFakeSplitRepo())

	l := calc.NewLine("g", 1)
	l.SetWeight("200")
	l.SetPrice("5")

	def := &entity.SplitDefault{SplitMode: enum.SplitMode64}
	svc.ApplyToLine(def, &l)

	if l.SplitMode != enum.SplitMode64 {
		t.Errorf("split mode = %s", l.SplitMode)
	}
	if l.FarmerAmount != "600" || l.EmployeeAmount != "400" {
		t.Errorf("shares = %s/%s, want 600/400", l.FarmerAmount, l.EmployeeAmount)
	}
	// Fields absent from the default leave the line untouched.
	if l.IsTransportationFee || l.PromotionRate != calc.Blank {
		t.Error("absent default fields leaked onto the line")
	}
	if l.FarmerPaidType != enum.PaidTypeCash || l.EmployeePaidType != enum.PaidTypeCash {
		t.Error("paid types changed without being present on the default")
	}
}

func TestApplyToLineCustomRatios(t *testing.T) {
	svc := service.NewSplitDefaultService(newFakeSplitRepo())

	l := calc.NewLine("g", 1)
	l.SetWeight("100")
	l.SetPrice("10")

	def := &entity.SplitDefault{
		SplitMode:     enum.SplitModeCustom,
		FarmerRatio:   f64(0.7),
		EmployeeRatio: f64(0.3),
	}
	svc.ApplyToLine(def, &l)

	if l.FarmerAmount != "700" || l.EmployeeAmount != "300" {
		t.Errorf("shares = %s/%s, want 700/300", l.FarmerAmount, l.EmployeeAmount)
	}
}

func TestApplyToLineHarvestDefault(t *testing.T) {
	svc := service.NewSplitDefaultService(newFakeSplitRepo())

	l := calc.NewLine("g", 1)
	l.SetWeight("1000")
	l.SetPrice("5")

	bank := enum.PaidTypeBankTransfer
	def := &entity.SplitDefault{
		IsHarvestRate:    true,
		HarvestRate:      f64(0.05),
		EmployeePaidType: &bank,
	}
	svc.ApplyToLine(def, &l)

	if !l.IsHarvestRate || l.SplitMode != enum.SplitModeNone {
		t.Error("harvest default did not engage harvest mode")
	}
	if l.FarmerAmount != "4950" || l.EmployeeAmount != "50" {
		t.Errorf("shares = %s/%s, want 4950/50", l.FarmerAmount, l.EmployeeAmount)
	}
	if l.EmployeePaidType != enum.PaidTypeBankTransfer {
		t.Errorf("employee paid type = %s", l.EmployeePaidType)
	}
	if l.FarmerPaidType != enum.PaidTypeCash {
		t.Errorf("farmer paid type = %s, default did not carry one", l.FarmerPaidType)
	}
}

func TestApplyToLineTransportOverlay(t *testing.T) {
	svc := service.NewSplitDefaultService(newFakeSplitRepo())

	l := calc.NewLine("g", 1)
	l.SetWeight("100")
	l.SetPrice("10")

	on := true
	def := &entity.SplitDefault{
		SplitMode:           enum.SplitMode64,
		IsTransportationFee: &on,
		TransportationFee:   f64(2),
	}
	svc.ApplyToLine(def, &l)

	if !l.IsTransportationFee {
		t.Error("transport flag not applied")
	}
	if l.TransportationFeeAmount != "200" {
		t.Errorf("fee amount = %s, want 200", l.TransportationFeeAmount)
	}
}

func TestUpsertIfMissingCapturesAllocation(t *testing.T) {
	repo := newFakeSplitRepo()
	svc := service.NewSplitDefaultService(repo)
	employeeID, productID := uuid.New(), uuid.New()

	l := calc.NewLine("g", 1)
	l.SetWeight("100")
	l.SetPrice("10")
	l.SetSplitMode(enum.SplitMode5545)
	l.SetTransportationFeeEnabled(true)
	l.SetTransportationFee("1")

	if err := svc.UpsertIfMissing(context.Background(), employeeID, productID, &l); err != nil {
		t.Fatalf("UpsertIfMissing: %v", err)
	}

	def, _ := repo.GetByPair(context.Background(), employeeID, productID)
	if def == nil {
		t.Fatal("no default captured")
	}
	if def.SplitMode != enum.SplitMode5545 {
		t.Errorf("split mode = %s", def.SplitMode)
	}
	if def.FarmerRatio == nil || *def.FarmerRatio != 0.55 {
		t.Errorf("farmer ratio = %v", def.FarmerRatio)
	}
	if def.IsTransportationFee == nil || !*def.IsTransportationFee {
		t.Error("transport flag not captured")
	}
	if def.TransportationFee == nil || *def.TransportationFee != 1 {
		t.Errorf("transport rate = %v", def.TransportationFee)
	}
}

func TestUpsertIfMissingNeverOverwrites(t *testing.T) {
	repo := newFakeSplitRepo()
	svc := service.NewSplitDefaultService(repo)
	employeeID, productID := uuid.New(), uuid.New()

	existing := &entity.SplitDefault{EmployeeID: employeeID, ProductID: productID, SplitMode: enum.SplitModeHalf}
	if err := repo.Create(context.Background(), existing); err != nil {
		t.Fatalf("seed: %v", err)
	}

	l := calc.NewLine("g", 1)
	l.SetWeight("100")
	l.SetPrice("10")
	l.SetSplitMode(enum.SplitMode64)

	if err := svc.UpsertIfMissing(context.Background(), employeeID, productID, &l); err != nil {
		t.Fatalf("UpsertIfMissing: %v", err)
	}

	def, _ := repo.GetByPair(context.Background(), employeeID, productID)
	if def.SplitMode != enum.SplitModeHalf {
		t.Errorf("existing default was overwritten: %s", def.SplitMode)
	}
}

func TestUpsertIfMissingSkipsPlainLines(t *testing.T) {
	repo := newFakeSplitRepo()
	svc := service.NewSplitDefaultService(repo)

	l := calc.NewLine("g", 1)
	l.SetWeight("100")
	l.SetPrice("10")

	if err := svc.UpsertIfMissing(context.Background(), uuid.New(), uuid.New(), &l); err != nil {
		t.Fatalf("UpsertIfMissing: %v", err)
	}
	if repo.creates != 0 {
		t.Error("plain cash line captured a default")
	}
}

func TestUpdateSplitDefaultKeepsDiscriminatorConsistent(t *testing.T) {
	repo := newFakeSplitRepo()
	svc := service.NewSplitDefaultService(repo)

	def := &entity.SplitDefault{
		EmployeeID:  uuid.New(),
		ProductID:   uuid.New(),
		SplitMode:   enum.SplitMode64,
		FarmerRatio: f64(0.6),
	}
	if err := repo.Create(context.Background(), def); err != nil {
		t.Fatalf("seed: %v", err)
	}

	on := true
	updated, err := svc.UpdateSplitDefault(context.Background(), &service.UpdateSplitDefaultInput{
		ID:            def.ID,
		IsHarvestRate: &on,
		HarvestRate:   f64(0.05),
	})
	if err != nil {
		t.Fatalf("UpdateSplitDefault: %v", err)
	}

	if updated.SplitMode != enum.SplitModeNone {
		t.Errorf("split mode = %s, want none once harvest is on", updated.SplitMode)
	}
	if updated.FarmerRatio != nil {
		t.Error("ratios survive the switch to harvest mode")
	}

	mode := enum.SplitModeHalf
	updated, err = svc.UpdateSplitDefault(context.Background(), &service.UpdateSplitDefaultInput{
		ID:            def.ID,
		SplitMode:     &mode,
		IsHarvestRate: new(bool),
	})
	if err != nil {
		t.Fatalf("UpdateSplitDefault: %v", err)
	}
	if updated.IsHarvestRate || updated.HarvestRate != nil {
		t.Error("harvest fields survive the switch back to a split mode")
	}
}
