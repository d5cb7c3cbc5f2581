package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/apperror"
	"github.com/supthawee/farmgate-api/pkg/pagination"
	"github.com/supthawee/farmgate-api/pkg/patch"
)

// TransactionService handles purchase groups and their lines
type TransactionService struct {
	groupRepo   repository.TransactionGroupRepository
	lineRepo    repository.TransactionLineRepository
	licenseRepo repository.CarLicenseRepository
	splitSvc    *SplitDefaultService
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	groupRepo repository.TransactionGroupRepository,
	lineRepo repository.TransactionLineRepository,
	licenseRepo repository.CarLicenseRepository,
	splitSvc *SplitDefaultService,
) *TransactionService {
	return &TransactionService{
		groupRepo:   groupRepo,
		lineRepo:    lineRepo,
		licenseRepo: licenseRepo,
		splitSvc:    splitSvc,
	}
}

// CreateGroupInput represents the create group input
type CreateGroupInput struct {
	FarmerID *uuid.UUID
	Name     *string
}

// CreateGroup opens a new pending group for a farmer visit, seeded with one
// empty line so the editor has a row to type into.
func (s *TransactionService) CreateGroup(ctx context.Context, input *CreateGroupInput) (*entity.TransactionGroup, error) {
	group := &entity.TransactionGroup{
		FarmerID: input.FarmerID,
		Name:     input.Name,
		Status:   enum.TransactionStatusPending,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	first := &entity.TransactionLine{
		GroupID: group.ID,
		LineNo:  1,
	}
	first.ApplyCalc(calc.NewLine(group.ID.String(), 1))
	if err := s.lineRepo.Create(ctx, first); err != nil {
		return nil, err
	}
	group.Lines = []entity.TransactionLine{*first}

	return group, nil
}

// GetGroup retrieves a group with its farmer and lines
func (s *TransactionService) GetGroup(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	group, err := s.groupRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Transaction group")
	}
	return group, nil
}

// ListGroups lists groups, optionally filtered by status and farmer
func (s *TransactionService) ListGroups(ctx context.Context, params *pagination.PaginationParams, status *enum.TransactionStatus, farmerID *uuid.UUID) (*pagination.PaginatedResult[entity.TransactionGroup], error) {
	if status != nil && !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid status filter")
	}

	groups, total, err := s.groupRepo.List(ctx, params, status, farmerID)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(groups, pag), nil
}

// UpdateGroupInput represents the update group input
type UpdateGroupInput struct {
	ID       uuid.UUID
	FarmerID patch.Field[uuid.UUID]
	Name     patch.Field[string]
}

// UpdateGroup updates a group's farmer assignment and note
func (s *TransactionService) UpdateGroup(ctx context.Context, input *UpdateGroupInput) (*entity.TransactionGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Transaction group")
	}

	if input.FarmerID.Present() {
		if id, ok := input.FarmerID.Value(); ok {
			group.FarmerID = &id
		} else {
			group.FarmerID = nil
		}
	}
	if input.Name.Present() {
		if name, ok := input.Name.Value(); ok {
			group.Name = &name
		} else {
			group.Name = nil
		}
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// DeleteGroup removes a group and its lines. Deleting a group that is already
// gone is a soft no-op; the sweep may have raced the operator to it.
func (s *TransactionService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return nil
	}

	return s.groupRepo.Delete(ctx, id)
}

// AddLine appends an empty line to a group
func (s *TransactionService) AddLine(ctx context.Context, groupID uuid.UUID) (*entity.TransactionLine, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Transaction group")
	}

	lineNo, err := s.lineRepo.NextLineNo(ctx, groupID)
	if err != nil {
		return nil, err
	}

	line := &entity.TransactionLine{
		GroupID: groupID,
		LineNo:  lineNo,
	}
	line.ApplyCalc(calc.NewLine(groupID.String(), lineNo))
	if err := s.lineRepo.Create(ctx, line); err != nil {
		return nil, err
	}

	return line, nil
}

// DeleteLine removes a line. A line that is already gone is a soft no-op.
func (s *TransactionService) DeleteLine(ctx context.Context, id uuid.UUID) error {
	line, err := s.lineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if line == nil {
		return nil
	}

	return s.lineRepo.Delete(ctx, id)
}

// LinePatch is one entry of a bulk line save: optional per-field changes for
// the line with the given ID. Each field is three-valued: absent leaves the
// stored value alone, null clears it, a value sets it.
type LinePatch struct {
	ID uuid.UUID

	EmployeeID patch.Field[uuid.UUID]
	ProductID  patch.Field[uuid.UUID]

	IsVehicle        patch.Field[bool]
	CarLicenseID     patch.Field[uuid.UUID]
	CarLicense       patch.Field[string]
	WeightVehicleIn  patch.Field[float64]
	WeightVehicleOut patch.Field[float64]

	Weight patch.Field[float64]
	Price  patch.Field[float64]

	SplitMode     patch.Field[enum.SplitMode]
	FarmerRatio   patch.Field[float64]
	EmployeeRatio patch.Field[float64]

	IsHarvestRate patch.Field[bool]
	HarvestRate   patch.Field[float64]

	IsTransportationFee patch.Field[bool]
	TransportationFee   patch.Field[float64]

	PromotionTarget patch.Field[enum.PromotionTarget]
	PromotionRate   patch.Field[float64]

	FarmerPaidType   patch.Field[enum.PaidType]
	EmployeePaidType patch.Field[enum.PaidType]
}

// BulkUpdateLines saves an array of per-line patches. Every referenced line
// must exist or the whole call fails before anything is written; persistence
// after that point is line-by-line, so a mid-batch failure leaves earlier
// lines updated. Returns the updated lines in input order.
func (s *TransactionService) BulkUpdateLines(ctx context.Context, patches []LinePatch) ([]entity.TransactionLine, error) {
	if len(patches) == 0 {
		return []entity.TransactionLine{}, nil
	}

	ids := make([]uuid.UUID, 0, len(patches))
	for _, p := range patches {
		ids = append(ids, p.ID)
	}
	existing, err := s.lineRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.TransactionLine, len(existing))
	for i := range existing {
		byID[existing[i].ID] = &existing[i]
	}
	for _, p := range patches {
		if _, ok := byID[p.ID]; !ok {
			return nil, apperror.NewNotFoundError("Transaction line")
		}
	}

	updated := make([]entity.TransactionLine, 0, len(patches))
	for i := range patches {
		p := &patches[i]
		line := byID[p.ID]

		c := line.ToCalc()
		if err := s.applyLinePatch(ctx, &c, p); err != nil {
			return updated, err
		}
		line.ApplyCalc(c)

		if err := s.lineRepo.Update(ctx, line); err != nil {
			return updated, err
		}
		updated = append(updated, *line)
	}

	return updated, nil
}

// applyLinePatch runs one patch through the recompute rules in dependency
// order: assignments first (completing the employee/product pair replays the
// remembered split default), then weights, then the allocation and fee rules.
func (s *TransactionService) applyLinePatch(ctx context.Context, c *calc.Line, p *LinePatch) error {
	hadPair := c.EmployeeID != "" && c.ProductID != ""

	if p.EmployeeID.Present() {
		if id, ok := p.EmployeeID.Value(); ok {
			c.EmployeeID = id.String()
		} else {
			c.EmployeeID = ""
		}
	}
	if p.ProductID.Present() {
		if id, ok := p.ProductID.Value(); ok {
			c.ProductID = id.String()
		} else {
			c.ProductID = ""
		}
	}

	// Whichever of employee/product lands second triggers the default lookup.
	if !hadPair && c.EmployeeID != "" && c.ProductID != "" {
		employeeID, err1 := uuid.Parse(c.EmployeeID)
		productID, err2 := uuid.Parse(c.ProductID)
		if err1 == nil && err2 == nil {
			def, err := s.splitSvc.Lookup(ctx, employeeID, productID)
			if err != nil {
				return err
			}
			if def != nil {
				s.splitSvc.ApplyToLine(def, c)
			}
		}
	}

	if p.CarLicenseID.Present() {
		if id, ok := p.CarLicenseID.Value(); ok {
			c.CarLicenseID = id.String()
		} else {
			c.CarLicenseID = ""
		}
	}
	if p.CarLicense.Present() {
		c.CarLicense = p.CarLicense.Or("")
	}
	if p.IsVehicle.Present() {
		c.SetVehicle(p.IsVehicle.Or(false))
	}
	if p.WeightVehicleIn.Present() {
		c.SetWeightVehicleIn(patchText(p.WeightVehicleIn))
	}
	if p.WeightVehicleOut.Present() {
		c.SetWeightVehicleOut(patchText(p.WeightVehicleOut))
	}

	// Direct weight entry is ignored while the vehicle derivation owns it.
	if p.Weight.Present() && !c.IsVehicle {
		c.SetWeight(patchText(p.Weight))
	}
	if p.Price.Present() {
		c.SetPrice(patchText(p.Price))
	}

	if p.SplitMode.Present() {
		mode := p.SplitMode.Or(enum.SplitModeNone)
		if !mode.IsValid() {
			return apperror.NewBadRequestError("Invalid split mode")
		}
		c.SetSplitMode(mode)
	}
	if p.FarmerRatio.Present() {
		c.SetFarmerRatio(patchText(p.FarmerRatio))
	}
	if p.EmployeeRatio.Present() {
		c.SetEmployeeRatio(patchText(p.EmployeeRatio))
	}

	if p.IsHarvestRate.Present() {
		c.SetHarvestRateEnabled(p.IsHarvestRate.Or(false))
	}
	if p.HarvestRate.Present() {
		c.SetHarvestRate(patchText(p.HarvestRate))
	}

	if p.IsTransportationFee.Present() {
		c.SetTransportationFeeEnabled(p.IsTransportationFee.Or(false))
	}
	if p.TransportationFee.Present() {
		c.SetTransportationFee(patchText(p.TransportationFee))
	}

	if p.PromotionTarget.Present() {
		if target, ok := p.PromotionTarget.Value(); ok {
			if !target.IsValid() {
				return apperror.NewBadRequestError("Invalid promotion target")
			}
			c.PromotionTarget = target
		} else {
			c.PromotionTarget = ""
		}
	}
	if p.PromotionRate.Present() {
		c.SetPromotionRate(patchText(p.PromotionRate))
	}

	if p.FarmerPaidType.Present() {
		pt := p.FarmerPaidType.Or(enum.PaidTypeCash)
		if !pt.IsValid() {
			return apperror.NewBadRequestError("Invalid paid type")
		}
		c.FarmerPaidType = pt
	}
	if p.EmployeePaidType.Present() {
		pt := p.EmployeePaidType.Or(enum.PaidTypeCash)
		if !pt.IsValid() {
			return apperror.NewBadRequestError("Invalid paid type")
		}
		c.EmployeePaidType = pt
	}

	return nil
}

// patchText renders a numeric patch field in the engine's decimal-string
// form; a cleared field becomes the blank sentinel.
func patchText(f patch.Field[float64]) string {
	if v, ok := f.Value(); ok {
		return floatText(v)
	}
	return calc.Blank
}

// SubmitGroup finalizes a pending group: submit-time validation, a one-way
// status transition, split-default capture per line and car-license
// last-used stamps. Submitting an already-submitted group returns it
// unchanged.
func (s *TransactionService) SubmitGroup(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	group, err := s.groupRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Transaction group")
	}
	if group.Status == enum.TransactionStatusSubmitted {
		return group, nil
	}

	var fieldErrors []apperror.FieldError
	for _, line := range group.Lines {
		c := line.ToCalc()
		if c.HasAllocation() && c.EmployeeID == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "employee_id",
				Message: "An employee must be chosen when a split or harvest rate is active",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	now := time.Now()
	group.Status = enum.TransactionStatusSubmitted
	group.SubmittedAt = &now
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	for i := range group.Lines {
		line := &group.Lines[i]
		if line.EmployeeID != nil && line.ProductID != nil {
			c := line.ToCalc()
			if err := s.splitSvc.UpsertIfMissing(ctx, *line.EmployeeID, *line.ProductID, &c); err != nil {
				return nil, err
			}
		}
		if line.CarLicenseID != nil {
			if err := s.licenseRepo.TouchLastUsed(ctx, *line.CarLicenseID, now); err != nil {
				return nil, err
			}
		}
	}

	return group, nil
}

// HarvestBroadcastInput is the group-level palm control: one configuration
// fanned out to every line of the designated product.
type HarvestBroadcastInput struct {
	GroupID   uuid.UUID
	ProductID uuid.UUID
	Enabled   bool

	EmployeeID       *uuid.UUID
	HarvestRate      *float64
	PromotionTarget  *enum.PromotionTarget
	PromotionRate    *float64
	FarmerPaidType   *enum.PaidType
	EmployeePaidType *enum.PaidType
}

// BroadcastHarvest fans the harvest configuration out to every line of the
// product within the group, or reverses a previous broadcast when disabled.
// Writes are line-by-line, as in the bulk save.
func (s *TransactionService) BroadcastHarvest(ctx context.Context, input *HarvestBroadcastInput) (*entity.TransactionGroup, error) {
	group, err := s.groupRepo.GetWithLines(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperror.NewNotFoundError("Transaction group")
	}

	lines := make([]calc.Line, len(group.Lines))
	for i := range group.Lines {
		lines[i] = group.Lines[i].ToCalc()
	}

	productID := input.ProductID.String()
	if input.Enabled {
		cfg := calc.HarvestBroadcast{
			FarmerPaidType:   enum.PaidTypeCash,
			EmployeePaidType: enum.PaidTypeCash,
		}
		if input.EmployeeID != nil {
			cfg.EmployeeID = input.EmployeeID.String()
		}
		if input.HarvestRate != nil {
			cfg.HarvestRate = floatText(*input.HarvestRate)
		}
		if input.PromotionTarget != nil {
			cfg.PromotionTarget = *input.PromotionTarget
		}
		if input.PromotionRate != nil {
			cfg.PromotionRate = floatText(*input.PromotionRate)
		}
		if input.FarmerPaidType != nil {
			cfg.FarmerPaidType = *input.FarmerPaidType
		}
		if input.EmployeePaidType != nil {
			cfg.EmployeePaidType = *input.EmployeePaidType
		}
		lines = calc.BroadcastHarvest(lines, productID, cfg)
	} else {
		lines = calc.ClearHarvest(lines, productID)
	}

	for i := range group.Lines {
		line := &group.Lines[i]
		line.ApplyCalc(lines[i])
		if err := s.lineRepo.Update(ctx, line); err != nil {
			return nil, err
		}
	}

	return group, nil
}

// LineFeedItem is one row of the transaction table: a line joined with its
// group context for display.
type LineFeedItem struct {
	Line         entity.TransactionLine
	GroupID      uuid.UUID
	GroupName    *string
	GroupStatus  enum.TransactionStatus
	GroupCreated time.Time
	FarmerName   string
	ProductName  string
	EmployeeName string
}

// ListLineFeed returns all lines joined with group, farmer, product and
// employee context, newest group first.
func (s *TransactionService) ListLineFeed(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[LineFeedItem], error) {
	lines, total, err := s.lineRepo.ListRecent(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(lineFeedItems(lines), pag), nil
}

// ListLineFeedCursor pages the same feed by opaque keyset cursor, newest
// line first. The repository fetches one row past the limit so the response
// can report whether another page exists.
func (s *TransactionService) ListLineFeedCursor(ctx context.Context, params *pagination.CursorParams) (*pagination.CursorPaginatedResult[LineFeedItem], error) {
	params.Validate()
	cursor, err := params.Decode()
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	lines, err := s.lineRepo.ListRecentAfter(ctx, cursor, params.Limit+1)
	if err != nil {
		return nil, err
	}

	pag, items := pagination.NewCursorPagination(lineFeedItems(lines), params.Limit,
		func(it LineFeedItem) string { return it.Line.ID.String() },
		func(it LineFeedItem) time.Time { return it.Line.CreatedAt })
	return pagination.NewCursorPaginatedResult(items, pag), nil
}

func lineFeedItems(lines []entity.TransactionLine) []LineFeedItem {
	items := make([]LineFeedItem, 0, len(lines))
	for _, line := range lines {
		item := LineFeedItem{
			Line:         line,
			GroupID:      line.GroupID,
			GroupName:    line.Group.Name,
			GroupStatus:  line.Group.Status,
			GroupCreated: line.Group.CreatedAt,
		}
		if line.Group.Farmer != nil {
			item.FarmerName = line.Group.Farmer.Name
		}
		if line.Product != nil {
			item.ProductName = line.Product.Name
		}
		if line.Employee != nil {
			item.EmployeeName = line.Employee.Name
		}
		items = append(items, item)
	}
	return items
}
