package service

import (
	"context"
	"sort"
	"time"

	"github.com/supthawee/farmgate-api/internal/domain/repository"
	"github.com/supthawee/farmgate-api/pkg/apperror"
)

// The shop's business day runs on a fixed UTC+7 clock regardless of where
// the server happens to run.
var shopZone = time.FixedZone("UTC+7", 7*60*60)

// DashboardService provides the daily intake summary
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// ProductDailySummary is one product's row of the daily summary
type ProductDailySummary struct {
	ProductID    string   `json:"product_id"`
	ProductName  string   `json:"product_name"`
	ProductLine  *int     `json:"product_line,omitempty"`
	TotalWeight  float64  `json:"total_weight"`
	AveragePrice *float64 `json:"average_price,omitempty"`
	TotalAmount  float64  `json:"total_amount"`
}

// DailySummary is the dashboard payload for one date range
type DailySummary struct {
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	Products    []ProductDailySummary `json:"products"`
	TotalGroups int64                 `json:"total_groups"`
	Pending     int64                 `json:"pending"`
	Submitted   int64                 `json:"submitted"`
	TotalPayout float64               `json:"total_payout"`
}

// GetDailySummary aggregates intake for the inclusive date range, both dates
// given as YYYY-MM-DD and interpreted as UTC+7 local midnight-to-midnight.
// Average price is priceSum/priceCount over priced lines only, not
// totalAmount/totalWeight. Products order by their display line, keyless
// products last, names breaking ties.
func (s *DashboardService) GetDailySummary(ctx context.Context, startDate, endDate string) (*DailySummary, error) {
	from, err := time.ParseInLocation("2006-01-02", startDate, shopZone)
	if err != nil {
		return nil, apperror.NewBadRequestError("start_date must be YYYY-MM-DD")
	}
	toDay, err := time.ParseInLocation("2006-01-02", endDate, shopZone)
	if err != nil {
		return nil, apperror.NewBadRequestError("end_date must be YYYY-MM-DD")
	}
	if toDay.Before(from) {
		return nil, apperror.NewBadRequestError("end_date must not be before start_date")
	}
	to := toDay.AddDate(0, 0, 1)

	intake, err := s.dashboardRepo.ProductIntakeBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	counts, err := s.dashboardRepo.GroupCountsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	payout, err := s.dashboardRepo.PayoutBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	products := make([]ProductDailySummary, 0, len(intake))
	for _, row := range intake {
		item := ProductDailySummary{
			ProductID:   row.ProductID.String(),
			ProductName: row.ProductName,
			ProductLine: row.ProductLine,
			TotalWeight: row.TotalWeight,
			TotalAmount: row.TotalAmount,
		}
		if row.PriceCount > 0 {
			avg := row.PriceSum / float64(row.PriceCount)
			item.AveragePrice = &avg
		}
		products = append(products, item)
	}
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch {
		case a.ProductLine == nil && b.ProductLine == nil:
			return a.ProductName < b.ProductName
		case a.ProductLine == nil:
			return false
		case b.ProductLine == nil:
			return true
		case *a.ProductLine != *b.ProductLine:
			return *a.ProductLine < *b.ProductLine
		default:
			return a.ProductName < b.ProductName
		}
	})

	return &DailySummary{
		StartDate:   startDate,
		EndDate:     endDate,
		Products:    products,
		TotalGroups: counts.Total,
		Pending:     counts.Pending,
		Submitted:   counts.Submitted,
		TotalPayout: payout,
	}, nil
}
