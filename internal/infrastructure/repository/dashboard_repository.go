package repository

import (
	"context"
	"time"

	domainRepo "github.com/supthawee/farmgate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) domainRepo.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) ProductIntakeBetween(ctx context.Context, from, to time.Time) ([]domainRepo.ProductIntakeResult, error) {
	var results []domainRepo.ProductIntakeResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.product_line as product_line,
			COALESCE(SUM(l.weight), 0) as total_weight,
			COALESCE(SUM(l.price), 0) as price_sum,
			COUNT(l.price) as price_count,
			COALESCE(SUM(COALESCE(l.total_net_amount, l.total_amount)), 0) as total_amount
		FROM transaction_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.created_at >= ? AND l.created_at < ?
		GROUP BY p.id, p.name, p.product_line
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *dashboardRepository) GroupCountsBetween(ctx context.Context, from, to time.Time) (domainRepo.GroupCountResult, error) {
	var result domainRepo.GroupCountResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as total,
			COUNT(*) FILTER (WHERE status = 'pending') as pending,
			COUNT(*) FILTER (WHERE status = 'submitted') as submitted
		FROM transaction_groups
		WHERE created_at >= ? AND created_at < ?
	`, from, to).Scan(&result).Error

	return result, err
}

func (r *dashboardRepository) PayoutBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(COALESCE(l.total_net_amount, l.total_amount)), 0)
		FROM transaction_lines l
		WHERE l.created_at >= ? AND l.created_at < ?
	`, from, to).Scan(&total).Error

	return total, err
}
