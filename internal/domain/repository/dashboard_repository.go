package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductIntakeResult represents one product's intake totals over a period.
// PriceSum/PriceCount feed the dashboard's average price; PriceCount counts
// only lines that carry a price.
type ProductIntakeResult struct {
	ProductID   uuid.UUID
	ProductName string
	ProductLine *int
	TotalWeight float64
	PriceSum    float64
	PriceCount  int64
	TotalAmount float64
}

// GroupCountResult represents group activity counts over a period
type GroupCountResult struct {
	Total     int64
	Pending   int64
	Submitted int64
}

// DashboardRepository defines interface for dashboard aggregation queries
type DashboardRepository interface {
	// ProductIntakeBetween aggregates lines created in [from, to) per product
	ProductIntakeBetween(ctx context.Context, from, to time.Time) ([]ProductIntakeResult, error)

	// GroupCountsBetween counts groups created in [from, to) by status
	GroupCountsBetween(ctx context.Context, from, to time.Time) (GroupCountResult, error)

	// PayoutBetween sums the farmer-paid total of lines created in [from, to)
	PayoutBetween(ctx context.Context, from, to time.Time) (float64, error)
}
