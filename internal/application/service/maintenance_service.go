package service

import (
	"context"
	"log"
	"time"

	"github.com/supthawee/farmgate-api/internal/config"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
)

// MaintenanceService runs the stale pending-group retention sweep: pending
// groups past the age threshold are deleted in bounded batches, lines before
// their group, so no single run touches an unbounded set.
type MaintenanceService struct {
	groupRepo repository.TransactionGroupRepository
	lineRepo  repository.TransactionLineRepository
	cfg       config.RetentionConfig
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	groupRepo repository.TransactionGroupRepository,
	lineRepo repository.TransactionLineRepository,
	cfg config.RetentionConfig,
) *MaintenanceService {
	return &MaintenanceService{
		groupRepo: groupRepo,
		lineRepo:  lineRepo,
		cfg:       cfg,
	}
}

// SweepResult reports what one bounded sweep run did. HasMoreEligible tells
// the scheduler to run again immediately instead of waiting for the next tick.
type SweepResult struct {
	Cutoff          time.Time `json:"cutoff"`
	ScannedGroups   int       `json:"scanned_groups"`
	DeletedGroups   int       `json:"deleted_groups"`
	DeletedLines    int       `json:"deleted_lines"`
	HasMoreEligible bool      `json:"has_more_eligible"`
}

// Sweep deletes one batch of stale pending groups. A group that vanishes
// between the listing and its delete is counted as scanned but not deleted;
// someone else already removed it.
func (s *MaintenanceService) Sweep(ctx context.Context) (*SweepResult, error) {
	cutoff := time.Now().Add(-time.Duration(s.cfg.AgeHours) * time.Hour)
	result := &SweepResult{Cutoff: cutoff}

	groups, err := s.groupRepo.ListPendingCreatedBefore(ctx, cutoff, s.cfg.BatchSize)
	if err != nil {
		return nil, err
	}
	result.ScannedGroups = len(groups)

	for _, group := range groups {
		lines, err := s.lineRepo.ListByGroup(ctx, group.ID)
		if err != nil {
			return result, err
		}
		if err := s.lineRepo.DeleteByGroup(ctx, group.ID); err != nil {
			return result, err
		}
		result.DeletedLines += len(lines)

		current, err := s.groupRepo.GetByID(ctx, group.ID)
		if err != nil {
			return result, err
		}
		if current == nil {
			continue
		}
		if err := s.groupRepo.Delete(ctx, group.ID); err != nil {
			return result, err
		}
		result.DeletedGroups++
	}

	remaining, err := s.groupRepo.CountPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return result, err
	}
	result.HasMoreEligible = remaining > 0

	log.Printf("Retention sweep: cutoff=%s scanned=%d deleted_groups=%d deleted_lines=%d more=%t",
		cutoff.Format(time.RFC3339), result.ScannedGroups, result.DeletedGroups, result.DeletedLines, result.HasMoreEligible)

	return result, nil
}
