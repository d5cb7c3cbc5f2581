package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/apperror"
)

// SplitDefaultService remembers and replays per-(employee, product) allocation
// configurations
type SplitDefaultService struct {
	splitRepo repository.SplitDefaultRepository
}

// NewSplitDefaultService creates a new split default service
func NewSplitDefaultService(splitRepo repository.SplitDefaultRepository) *SplitDefaultService {
	return &SplitDefaultService{splitRepo: splitRepo}
}

// Lookup finds the remembered default for an (employee, product) pair, nil
// when the pair has none
func (s *SplitDefaultService) Lookup(ctx context.Context, employeeID, productID uuid.UUID) (*entity.SplitDefault, error) {
	return s.splitRepo.GetByPair(ctx, employeeID, productID)
}

// List returns every remembered default
func (s *SplitDefaultService) List(ctx context.Context) ([]entity.SplitDefault, error) {
	return s.splitRepo.List(ctx)
}

// ListByEmployee returns every remembered default for one employee
func (s *SplitDefaultService) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.SplitDefault, error) {
	return s.splitRepo.ListByEmployee(ctx, employeeID)
}

// ApplyToLine replays a remembered default onto a line through the recompute
// rules. The allocation discriminator runs first (harvest rate or split mode,
// never both), then each optional field present on the default overlays the
// line; absent fields leave the line untouched.
func (s *SplitDefaultService) ApplyToLine(def *entity.SplitDefault, line *calc.Line) {
	if def.IsHarvestRate {
		line.SetHarvestRateEnabled(true)
		if def.HarvestRate != nil {
			line.SetHarvestRate(floatText(*def.HarvestRate))
		}
	} else if def.SplitMode != enum.SplitModeNone {
		line.SetSplitMode(def.SplitMode)
		if def.SplitMode == enum.SplitModeCustom {
			if def.FarmerRatio != nil {
				line.SetFarmerRatio(floatText(*def.FarmerRatio))
			}
			if def.EmployeeRatio != nil {
				line.SetEmployeeRatio(floatText(*def.EmployeeRatio))
			}
		}
	}

	if def.IsTransportationFee != nil {
		line.SetTransportationFeeEnabled(*def.IsTransportationFee)
		if *def.IsTransportationFee && def.TransportationFee != nil {
			line.SetTransportationFee(floatText(*def.TransportationFee))
		}
	}
	if def.PromotionTarget != nil {
		line.PromotionTarget = *def.PromotionTarget
	}
	if def.PromotionRate != nil {
		line.SetPromotionRate(floatText(*def.PromotionRate))
	}
	if def.FarmerPaidType != nil {
		line.FarmerPaidType = *def.FarmerPaidType
	}
	if def.EmployeePaidType != nil {
		line.EmployeePaidType = *def.EmployeePaidType
	}
}

// UpsertIfMissing captures a line's allocation configuration for its
// (employee, product) pair, but only when the pair has no remembered default
// yet. Existing defaults are never overwritten at capture time; the operator
// edits them explicitly.
func (s *SplitDefaultService) UpsertIfMissing(ctx context.Context, employeeID, productID uuid.UUID, line *calc.Line) error {
	if !line.HasAllocation() {
		return nil
	}

	existing, err := s.splitRepo.GetByPair(ctx, employeeID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	def := &entity.SplitDefault{
		EmployeeID:    employeeID,
		ProductID:     productID,
		SplitMode:     line.SplitMode,
		IsHarvestRate: line.IsHarvestRate,
		HarvestRate:   textFloat(line.HarvestRate),
		FarmerRatio:   textFloat(line.FarmerRatio),
		EmployeeRatio: textFloat(line.EmployeeRatio),
	}
	if line.IsTransportationFee {
		on := true
		def.IsTransportationFee = &on
		def.TransportationFee = textFloat(line.TransportationFee)
	}
	if line.PromotionRate != calc.Blank {
		def.PromotionRate = textFloat(line.PromotionRate)
		if line.PromotionTarget != "" {
			target := line.PromotionTarget
			def.PromotionTarget = &target
		}
	}
	if line.FarmerPaidType != enum.PaidTypeCash {
		pt := line.FarmerPaidType
		def.FarmerPaidType = &pt
	}
	if line.EmployeePaidType != enum.PaidTypeCash {
		pt := line.EmployeePaidType
		def.EmployeePaidType = &pt
	}

	return s.splitRepo.Create(ctx, def)
}

// UpdateSplitDefaultInput represents the explicit edit of a remembered default
type UpdateSplitDefaultInput struct {
	ID                  uuid.UUID
	SplitMode           *enum.SplitMode
	IsHarvestRate       *bool
	HarvestRate         *float64
	FarmerRatio         *float64
	EmployeeRatio       *float64
	IsTransportationFee *bool
	TransportationFee   *float64
	PromotionTarget     *enum.PromotionTarget
	PromotionRate       *float64
	FarmerPaidType      *enum.PaidType
	EmployeePaidType    *enum.PaidType
}

// UpdateSplitDefault edits a remembered default. The allocation discriminator
// stays consistent: turning the harvest rate on forces the split mode to none,
// and choosing a real split mode turns the harvest rate off.
func (s *SplitDefaultService) UpdateSplitDefault(ctx context.Context, input *UpdateSplitDefaultInput) (*entity.SplitDefault, error) {
	def, err := s.splitRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, apperror.NewNotFoundError("Split default")
	}

	if input.SplitMode != nil {
		if !input.SplitMode.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid split mode")
		}
		def.SplitMode = *input.SplitMode
	}
	if input.IsHarvestRate != nil {
		def.IsHarvestRate = *input.IsHarvestRate
	}
	if input.HarvestRate != nil {
		def.HarvestRate = input.HarvestRate
	}
	if input.FarmerRatio != nil {
		def.FarmerRatio = input.FarmerRatio
	}
	if input.EmployeeRatio != nil {
		def.EmployeeRatio = input.EmployeeRatio
	}
	if input.IsTransportationFee != nil {
		def.IsTransportationFee = input.IsTransportationFee
	}
	if input.TransportationFee != nil {
		def.TransportationFee = input.TransportationFee
	}
	if input.PromotionTarget != nil {
		def.PromotionTarget = input.PromotionTarget
	}
	if input.PromotionRate != nil {
		def.PromotionRate = input.PromotionRate
	}
	if input.FarmerPaidType != nil {
		def.FarmerPaidType = input.FarmerPaidType
	}
	if input.EmployeePaidType != nil {
		def.EmployeePaidType = input.EmployeePaidType
	}

	if def.IsHarvestRate {
		def.SplitMode = enum.SplitModeNone
		def.FarmerRatio = nil
		def.EmployeeRatio = nil
	} else if def.SplitMode != enum.SplitModeNone {
		def.HarvestRate = nil
	}

	if err := s.splitRepo.Update(ctx, def); err != nil {
		return nil, err
	}

	return def, nil
}

// DeleteSplitDefault removes a remembered default
func (s *SplitDefaultService) DeleteSplitDefault(ctx context.Context, id uuid.UUID) error {
	def, err := s.splitRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if def == nil {
		return apperror.NewNotFoundError("Split default")
	}

	return s.splitRepo.Delete(ctx, id)
}

// floatText renders a stored numeric in the engine's decimal-string form
func floatText(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// textFloat parses an engine decimal string into a nullable stored numeric;
// blank and unparseable values store as absent
func textFloat(s string) *float64 {
	if s == calc.Blank {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
