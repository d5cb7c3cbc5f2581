package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
	domainRepo "github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/pagination"
	"gorm.io/gorm"
)

type transactionGroupRepository struct {
	db *gorm.DB
}

// NewTransactionGroupRepository creates a new transaction group repository
func NewTransactionGroupRepository(db *gorm.DB) domainRepo.TransactionGroupRepository {
	return &transactionGroupRepository{db: db}
}

func (r *transactionGroupRepository) Create(ctx context.Context, group *entity.TransactionGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *transactionGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	var group entity.TransactionGroup
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &group, err
}

func (r *transactionGroupRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	var group entity.TransactionGroup
	err := r.db.WithContext(ctx).
		Preload("Farmer").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_no ASC")
		}).
		Preload("Lines.Employee").
		Preload("Lines.Product").
		First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &group, err
}

func (r *transactionGroupRepository) Update(ctx context.Context, group *entity.TransactionGroup) error {
	return r.db.WithContext(ctx).Omit("Lines", "Farmer").Save(group).Error
}

// Delete removes the group's lines first, then the group, in one database
// transaction. The FK cascade would also cover the lines; deleting them
// explicitly keeps the behavior the same on databases migrated without the
// constraint.
func (r *transactionGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.TransactionLine{}, "group_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.TransactionGroup{}, "id = ?", id).Error
	})
}

func (r *transactionGroupRepository) List(ctx context.Context, params *pagination.PaginationParams, status *enum.TransactionStatus, farmerID *uuid.UUID) ([]entity.TransactionGroup, int64, error) {
	var groups []entity.TransactionGroup
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TransactionGroup{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if farmerID != nil {
		query = query.Where("farmer_id = ?", *farmerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Farmer").
		Order("created_at DESC").
		Find(&groups).Error

	return groups, total, err
}

func (r *transactionGroupRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]entity.TransactionGroup, error) {
	var groups []entity.TransactionGroup
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", enum.TransactionStatusPending, cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&groups).Error
	return groups, err
}

func (r *transactionGroupRepository) CountPendingCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TransactionGroup{}).
		Where("status = ? AND created_at < ?", enum.TransactionStatusPending, cutoff).
		Count(&count).Error
	return count, err
}

type transactionLineRepository struct {
	db *gorm.DB
}

// NewTransactionLineRepository creates a new transaction line repository
func NewTransactionLineRepository(db *gorm.DB) domainRepo.TransactionLineRepository {
	return &transactionLineRepository{db: db}
}

func (r *transactionLineRepository) Create(ctx context.Context, line *entity.TransactionLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *transactionLineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TransactionLine, error) {
	var line entity.TransactionLine
	err := r.db.WithContext(ctx).First(&line, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *transactionLineRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.TransactionLine, error) {
	if len(ids) == 0 {
		return []entity.TransactionLine{}, nil
	}
	var lines []entity.TransactionLine
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&lines).Error
	return lines, err
}

func (r *transactionLineRepository) Update(ctx context.Context, line *entity.TransactionLine) error {
	return r.db.WithContext(ctx).Omit("Group", "Employee", "Product").Save(line).Error
}

func (r *transactionLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TransactionLine{}, "id = ?", id).Error
}

func (r *transactionLineRepository) DeleteByGroup(ctx context.Context, groupID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TransactionLine{}, "group_id = ?", groupID).Error
}

func (r *transactionLineRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.TransactionLine, error) {
	var lines []entity.TransactionLine
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("line_no ASC").
		Find(&lines).Error
	return lines, err
}

func (r *transactionLineRepository) NextLineNo(ctx context.Context, groupID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entity.TransactionLine{}).
		Where("group_id = ?", groupID).
		Select("MAX(line_no)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

func (r *transactionLineRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.TransactionLine, error) {
	var lines []entity.TransactionLine
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *transactionLineRepository) ListRecent(ctx context.Context, params *pagination.PaginationParams) ([]entity.TransactionLine, int64, error) {
	var lines []entity.TransactionLine
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TransactionLine{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := r.db.WithContext(ctx).
		Joins("JOIN transaction_groups ON transaction_groups.id = transaction_lines.group_id").
		Order("transaction_groups.created_at DESC, transaction_lines.line_no ASC").
		Offset(params.Offset()).Limit(params.PerPage).
		Preload("Group").
		Preload("Group.Farmer").
		Preload("Employee").
		Preload("Product").
		Find(&lines).Error

	return lines, total, err
}

func (r *transactionLineRepository) ListRecentAfter(ctx context.Context, cursor *pagination.Cursor, limit int) ([]entity.TransactionLine, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Preload("Group").
		Preload("Group.Farmer").
		Preload("Employee").
		Preload("Product")
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var lines []entity.TransactionLine
	err := query.Find(&lines).Error
	return lines, err
}
