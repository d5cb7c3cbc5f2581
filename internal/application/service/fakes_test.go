package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/pagination"
)

// In-memory repositories for service tests.

type fakeGroupRepo struct {
	groups map[uuid.UUID]*entity.TransactionGroup
	lines  *fakeLineRepo
	// vanished ids stay listed but fail point lookups, simulating a record
	// deleted between a listing and its processing
	vanished map[uuid.UUID]bool
}

func newFakeGroupRepo(lines *fakeLineRepo) *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:   make(map[uuid.UUID]*entity.TransactionGroup),
		lines:    lines,
		vanished: make(map[uuid.UUID]bool),
	}
}

func (r *fakeGroupRepo) Create(_ context.Context, group *entity.TransactionGroup) error {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now()
	}
	copied := *group
	r.groups[group.ID] = &copied
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	group, ok := r.groups[id]
	if !ok || r.vanished[id] {
		return nil, nil
	}
	copied := *group
	return &copied, nil
}

func (r *fakeGroupRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	group, err := r.GetByID(ctx, id)
	if group == nil || err != nil {
		return group, err
	}
	group.Lines, _ = r.lines.ListByGroup(ctx, id)
	return group, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, group *entity.TransactionGroup) error {
	copied := *group
	r.groups[group.ID] = &copied
	return nil
}

func (r *fakeGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = r.lines.DeleteByGroup(ctx, id)
	delete(r.groups, id)
	return nil
}

func (r *fakeGroupRepo) List(_ context.Context, _ *pagination.PaginationParams, status *enum.TransactionStatus, farmerID *uuid.UUID) ([]entity.TransactionGroup, int64, error) {
	var out []entity.TransactionGroup
	for _, group := range r.groups {
		if status != nil && group.Status != *status {
			continue
		}
		if farmerID != nil && (group.FarmerID == nil || *group.FarmerID != *farmerID) {
			continue
		}
		out = append(out, *group)
	}
	return out, int64(len(out)), nil
}

func (r *fakeGroupRepo) ListPendingCreatedBefore(_ context.Context, cutoff time.Time, limit int) ([]entity.TransactionGroup, error) {
	var out []entity.TransactionGroup
	for _, group := range r.groups {
		if group.Status == enum.TransactionStatusPending && group.CreatedAt.Before(cutoff) {
			out = append(out, *group)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeGroupRepo) CountPendingCreatedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var count int64
	for _, group := range r.groups {
		if group.Status == enum.TransactionStatusPending && group.CreatedAt.Before(cutoff) {
			count++
		}
	}
	return count, nil
}

type fakeLineRepo struct {
	lines   map[uuid.UUID]*entity.TransactionLine
	updates int
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{lines: make(map[uuid.UUID]*entity.TransactionLine)}
}

func (r *fakeLineRepo) Create(_ context.Context, line *entity.TransactionLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	if line.CreatedAt.IsZero() {
		line.CreatedAt = time.Now()
	}
	copied := *line
	r.lines[line.ID] = &copied
	return nil
}

func (r *fakeLineRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.TransactionLine, error) {
	line, ok := r.lines[id]
	if !ok {
		return nil, nil
	}
	copied := *line
	return &copied, nil
}

func (r *fakeLineRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.TransactionLine, error) {
	var out []entity.TransactionLine
	for _, id := range ids {
		if line, ok := r.lines[id]; ok {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (r *fakeLineRepo) Update(_ context.Context, line *entity.TransactionLine) error {
	copied := *line
	r.lines[line.ID] = &copied
	r.updates++
	return nil
}

func (r *fakeLineRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lines, id)
	return nil
}

func (r *fakeLineRepo) DeleteByGroup(_ context.Context, groupID uuid.UUID) error {
	for id, line := range r.lines {
		if line.GroupID == groupID {
			delete(r.lines, id)
		}
	}
	return nil
}

func (r *fakeLineRepo) ListByGroup(_ context.Context, groupID uuid.UUID) ([]entity.TransactionLine, error) {
	var out []entity.TransactionLine
	for _, line := range r.lines {
		if line.GroupID == groupID {
			out = append(out, *line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNo < out[j].LineNo })
	return out, nil
}

func (r *fakeLineRepo) NextLineNo(ctx context.Context, groupID uuid.UUID) (int, error) {
	lines, _ := r.ListByGroup(ctx, groupID)
	max := 0
	for _, line := range lines {
		if line.LineNo > max {
			max = line.LineNo
		}
	}
	return max + 1, nil
}

func (r *fakeLineRepo) ListCreatedBetween(_ context.Context, from, to time.Time) ([]entity.TransactionLine, error) {
	var out []entity.TransactionLine
	for _, line := range r.lines {
		if !line.CreatedAt.Before(from) && line.CreatedAt.Before(to) {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (r *fakeLineRepo) ListRecent(_ context.Context, _ *pagination.PaginationParams) ([]entity.TransactionLine, int64, error) {
	var out []entity.TransactionLine
	for _, line := range r.lines {
		out = append(out, *line)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLineRepo) ListRecentAfter(_ context.Context, cursor *pagination.Cursor, limit int) ([]entity.TransactionLine, error) {
	var all []entity.TransactionLine
	for _, line := range r.lines {
		all = append(all, *line)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.String() > all[j].ID.String()
	})

	var out []entity.TransactionLine
	for _, line := range all {
		if cursor != nil {
			after := line.CreatedAt.Before(cursor.CreatedAt) ||
				(line.CreatedAt.Equal(cursor.CreatedAt) && line.ID.String() < cursor.ID)
			if !after {
				continue
			}
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type pairKey struct {
	employee uuid.UUID
	product  uuid.UUID
}

type fakeSplitRepo struct {
	defaults map[pairKey]*entity.SplitDefault
	creates  int
}

func newFakeSplitRepo() *fakeSplitRepo {
	return &fakeSplitRepo{defaults: make(map[pairKey]*entity.SplitDefault)}
}

func (r *fakeSplitRepo) Create(_ context.Context, def *entity.SplitDefault) error {
	if def.ID == uuid.Nil {
		def.ID = uuid.New()
	}
	copied := *def
	r.defaults[pairKey{def.EmployeeID, def.ProductID}] = &copied
	r.creates++
	return nil
}

func (r *fakeSplitRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SplitDefault, error) {
	for _, def := range r.defaults {
		if def.ID == id {
			copied := *def
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSplitRepo) GetByPair(_ context.Context, employeeID, productID uuid.UUID) (*entity.SplitDefault, error) {
	def, ok := r.defaults[pairKey{employeeID, productID}]
	if !ok {
		return nil, nil
	}
	copied := *def
	return &copied, nil
}

func (r *fakeSplitRepo) Update(_ context.Context, def *entity.SplitDefault) error {
	copied := *def
	r.defaults[pairKey{def.EmployeeID, def.ProductID}] = &copied
	return nil
}

func (r *fakeSplitRepo) Delete(_ context.Context, id uuid.UUID) error {
	for key, def := range r.defaults {
		if def.ID == id {
			delete(r.defaults, key)
		}
	}
	return nil
}

func (r *fakeSplitRepo) List(_ context.Context) ([]entity.SplitDefault, error) {
	var out []entity.SplitDefault
	for _, def := range r.defaults {
		out = append(out, *def)
	}
	return out, nil
}

func (r *fakeSplitRepo) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]entity.SplitDefault, error) {
	var out []entity.SplitDefault
	for _, def := range r.defaults {
		if def.EmployeeID == employeeID {
			out = append(out, *def)
		}
	}
	return out, nil
}

type fakeLicenseRepo struct {
	licenses map[uuid.UUID]*entity.CarLicense
	touched  []uuid.UUID
}

func newFakeLicenseRepo() *fakeLicenseRepo {
	return &fakeLicenseRepo{licenses: make(map[uuid.UUID]*entity.CarLicense)}
}

func (r *fakeLicenseRepo) Create(_ context.Context, license *entity.CarLicense) error {
	if license.ID == uuid.Nil {
		license.ID = uuid.New()
	}
	copied := *license
	r.licenses[license.ID] = &copied
	return nil
}

func (r *fakeLicenseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CarLicense, error) {
	license, ok := r.licenses[id]
	if !ok {
		return nil, nil
	}
	copied := *license
	return &copied, nil
}

func (r *fakeLicenseRepo) GetByNormalizedPlate(_ context.Context, farmerID uuid.UUID, normalizedPlate string) (*entity.CarLicense, error) {
	for _, license := range r.licenses {
		if license.FarmerID == farmerID && license.NormalizedPlate == normalizedPlate {
			copied := *license
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeLicenseRepo) Update(_ context.Context, license *entity.CarLicense) error {
	copied := *license
	r.licenses[license.ID] = &copied
	return nil
}

func (r *fakeLicenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.licenses, id)
	return nil
}

func (r *fakeLicenseRepo) ListByFarmer(_ context.Context, farmerID uuid.UUID) ([]entity.CarLicense, error) {
	var out []entity.CarLicense
	for _, license := range r.licenses {
		if license.FarmerID == farmerID && license.Active {
			out = append(out, *license)
		}
	}
	return out, nil
}

func (r *fakeLicenseRepo) TouchLastUsed(_ context.Context, id uuid.UUID, usedAt time.Time) error {
	if license, ok := r.licenses[id]; ok {
		license.LastUsedAt = &usedAt
	}
	r.touched = append(r.touched, id)
	return nil
}

type fakeDashboardRepo struct {
	gotFrom time.Time
	gotTo   time.Time
	intake  []repository.ProductIntakeResult
	counts  repository.GroupCountResult
	payout  float64
}

func (r *fakeDashboardRepo) ProductIntakeBetween(_ context.Context, from, to time.Time) ([]repository.ProductIntakeResult, error) {
	r.gotFrom, r.gotTo = from, to
	return r.intake, nil
}

func (r *fakeDashboardRepo) GroupCountsBetween(_ context.Context, _, _ time.Time) (repository.GroupCountResult, error) {
	return r.counts, nil
}

func (r *fakeDashboardRepo) PayoutBetween(_ context.Context, _, _ time.Time) (float64, error) {
	return r.payout, nil
}
