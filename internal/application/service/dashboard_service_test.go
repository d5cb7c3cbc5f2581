package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/domain/repository"
)

func TestDailySummaryRangeIsShopLocal(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := service.NewDashboardService(repo)

	_, err := svc.GetDailySummary(context.Background(), "2026-08-29", "2026-08-29")
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}

	// Midnight 2026-08-29 in UTC+7 is 17:00 the previous day in UTC,
	// wherever the server runs.
	wantFrom := time.Date(2026, 8, 28, 17, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 8, 29, 17, 0, 0, 0, time.UTC)
	if !repo.gotFrom.Equal(wantFrom) {
		t.Errorf("from = %s, want %s", repo.gotFrom.UTC(), wantFrom)
	}
	if !repo.gotTo.Equal(wantTo) {
		t.Errorf("to = %s, want %s", repo.gotTo.UTC(), wantTo)
	}
}

func TestDailySummaryRejectsBadRange(t *testing.T) {
	svc := service.NewDashboardService(&fakeDashboardRepo{})

	if _, err := svc.GetDailySummary(context.Background(), "29-08-2026", "2026-08-29"); err == nil {
		t.Error("malformed start date accepted")
	}
	if _, err := svc.GetDailySummary(context.Background(), "2026-08-29", "2026-08-28"); err == nil {
		t.Error("inverted range accepted")
	}
}

func TestDailySummaryAverageAndOrdering(t *testing.T) {
	one, three := 1, 3
	repo := &fakeDashboardRepo{
		intake: []repository.ProductIntakeResult{
			{ProductID: uuid.New(), ProductName: "scrap", ProductLine: nil, TotalWeight: 10, PriceCount: 0, TotalAmount: 80},
			{ProductID: uuid.New(), ProductName: "latex", ProductLine: &three, TotalWeight: 200, PriceSum: 40, PriceCount: 2, TotalAmount: 4100},
			{ProductID: uuid.New(), ProductName: "palm", ProductLine: &one, TotalWeight: 1500, PriceSum: 15, PriceCount: 3, TotalAmount: 7800},
		},
		counts: repository.GroupCountResult{Total: 4, Pending: 1, Submitted: 3},
		payout: 11980,
	}
	svc := service.NewDashboardService(repo)

	summary, err := svc.GetDailySummary(context.Background(), "2026-08-01", "2026-08-29")
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}

	if len(summary.Products) != 3 {
		t.Fatalf("products = %d, want 3", len(summary.Products))
	}
	// Ordered by product line ascending, the keyless product last.
	if summary.Products[0].ProductName != "palm" || summary.Products[1].ProductName != "latex" || summary.Products[2].ProductName != "scrap" {
		t.Errorf("order = %s, %s, %s", summary.Products[0].ProductName, summary.Products[1].ProductName, summary.Products[2].ProductName)
	}

	// Average is priceSum/priceCount over priced lines, not amount/weight.
	palm := summary.Products[0]
	if palm.AveragePrice == nil || *palm.AveragePrice != 5 {
		t.Errorf("palm average price = %v, want 5", palm.AveragePrice)
	}
	scrap := summary.Products[2]
	if scrap.AveragePrice != nil {
		t.Errorf("unpriced product got average %v", *scrap.AveragePrice)
	}

	if summary.TotalGroups != 4 || summary.Pending != 1 || summary.Submitted != 3 {
		t.Errorf("counts = %d/%d/%d", summary.TotalGroups, summary.Pending, summary.Submitted)
	}
	if summary.TotalPayout != 11980 {
		t.Errorf("payout = %v, want 11980", summary.TotalPayout)
	}
}
