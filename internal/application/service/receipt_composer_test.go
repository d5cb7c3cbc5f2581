package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
)

var testShop = service.ShopIdentity{Name: "Test Shop", Phone: "081-000-0000"}

func receiptLine(t *testing.T, lineNo int, product *entity.Product, employee *entity.Employee, build func(*calc.Line)) entity.TransactionLine {
	t.Helper()
	c := calc.NewLine(uuid.Nil.String(), lineNo)
	if product != nil {
		c.ProductID = product.ID.String()
	}
	if employee != nil {
		c.EmployeeID = employee.ID.String()
	}
	build(&c)

	line := entity.TransactionLine{ID: uuid.New(), LineNo: lineNo}
	line.ApplyCalc(c)
	line.Product = product
	line.Employee = employee
	return line
}

func sectionKinds(sections []entity.ReceiptSection) []entity.ReceiptSectionKind {
	kinds := make([]entity.ReceiptSectionKind, 0, len(sections))
	for _, s := range sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func countKind(sections []entity.ReceiptSection, kind entity.ReceiptSectionKind) int {
	n := 0
	for _, s := range sections {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

func sectionText(s entity.ReceiptSection) string {
	var rows []string
	for _, row := range s.Texts {
		rows = append(rows, row.Text)
	}
	return strings.Join(rows, "\n")
}

func TestComposeSingleCashLine(t *testing.T) {
	palm := &entity.Product{ID: uuid.New(), Name: "palm"}
	group := &entity.TransactionGroup{
		ID:     uuid.New(),
		Farmer: &entity.Farmer{ID: uuid.New(), Name: "Somchai"},
		Lines: []entity.TransactionLine{
			receiptLine(t, 1, palm, nil, func(c *calc.Line) {
				c.SetWeight("100")
				c.SetPrice("5")
			}),
		},
	}

	sections := service.ComposeReceipt(testShop, group, service.ComposeOptions{PrintedAt: time.Now()})

	// One plain cash line: a single farmer copy, no employee copy and no
	// group summaries.
	if len(sections) != 1 || sections[0].Kind != entity.ReceiptFarmerCopy {
		t.Fatalf("kinds = %v, want one farmer copy", sectionKinds(sections))
	}
	body := sectionText(sections[0])
	if !strings.Contains(body, "Somchai") || !strings.Contains(body, "100 x 5 = 500") {
		t.Errorf("farmer copy missing content:\n%s", body)
	}
}

func TestComposeSplitGroupSections(t *testing.T) {
	palm := &entity.Product{ID: uuid.New(), Name: "palm"}
	latex := &entity.Product{ID: uuid.New(), Name: "latex"}
	emp := &entity.Employee{ID: uuid.New(), Name: "Wichai"}
	group := &entity.TransactionGroup{
		ID:     uuid.New(),
		Farmer: &entity.Farmer{ID: uuid.New(), Name: "Somchai"},
		Lines: []entity.TransactionLine{
			receiptLine(t, 1, palm, emp, func(c *calc.Line) {
				c.SetWeight("100")
				c.SetPrice("5")
				c.SetSplitMode(enum.SplitMode64)
			}),
			receiptLine(t, 2, latex, emp, func(c *calc.Line) {
				c.SetWeight("50")
				c.SetPrice("20")
				c.SetSplitMode(enum.SplitModeHalf)
			}),
		},
	}

	sections := service.ComposeReceipt(testShop, group, service.ComposeOptions{PrintedAt: time.Now()})

	if got := countKind(sections, entity.ReceiptFarmerCopy); got != 2 {
		t.Errorf("farmer copies = %d, want 2", got)
	}
	if got := countKind(sections, entity.ReceiptEmployeeCopy); got != 2 {
		t.Errorf("employee copies = %d, want 2", got)
	}
	if got := countKind(sections, entity.ReceiptProductSummary); got != 1 {
		t.Errorf("product summaries = %d, want 1", got)
	}
	// Two product lines for the same employee warrant a per-employee summary.
	if got := countKind(sections, entity.ReceiptEmployeeSummary); got != 1 {
		t.Errorf("employee summaries = %d, want 1", got)
	}
	if got := countKind(sections, entity.ReceiptPromotionSummary); got != 0 {
		t.Errorf("promotion summaries = %d, want 0", got)
	}
}

func TestComposeSummaryOnlySkipsCopies(t *testing.T) {
	palm := &entity.Product{ID: uuid.New(), Name: "palm"}
	emp := &entity.Employee{ID: uuid.New(), Name: "Wichai"}
	group := &entity.TransactionGroup{
		ID: uuid.New(),
		Lines: []entity.TransactionLine{
			receiptLine(t, 1, palm, emp, func(c *calc.Line) {
				c.SetWeight("100")
				c.SetPrice("5")
				c.SetSplitMode(enum.SplitMode64)
			}),
			receiptLine(t, 2, palm, emp, func(c *calc.Line) {
				c.SetWeight("200")
				c.SetPrice("5")
				c.SetSplitMode(enum.SplitMode64)
			}),
		},
	}

	sections := service.ComposeReceipt(testShop, group, service.ComposeOptions{SummaryOnly: true, PrintedAt: time.Now()})

	if countKind(sections, entity.ReceiptFarmerCopy) != 0 || countKind(sections, entity.ReceiptEmployeeCopy) != 0 {
		t.Errorf("summary-only run emitted per-line copies: %v", sectionKinds(sections))
	}
	if countKind(sections, entity.ReceiptProductSummary) != 1 {
		t.Errorf("kinds = %v, want a product summary", sectionKinds(sections))
	}
}

func TestComposeNetDeliveryCountedOnce(t *testing.T) {
	palm := &entity.Product{ID: uuid.New(), Name: "palm"}
	latex := &entity.Product{ID: uuid.New(), Name: "latex"}
	group := &entity.TransactionGroup{
		ID: uuid.New(),
		Lines: []entity.TransactionLine{
			receiptLine(t, 1, palm, nil, func(c *calc.Line) {
				c.SetWeight("1000")
				c.SetPrice("1")
				c.PromotionTarget = enum.PromotionTargetSum
				c.SetPromotionRate("0.1")
			}),
			receiptLine(t, 2, latex, nil, func(c *calc.Line) {
				c.SetWeight("100")
				c.SetPrice("5")
			}),
		},
	}

	sections := service.ComposeReceipt(testShop, group, service.ComposeOptions{SummaryOnly: true, PrintedAt: time.Now()})
	if len(sections) != 1 || sections[0].Kind != entity.ReceiptProductSummary {
		t.Fatalf("kinds = %v, want one product summary", sectionKinds(sections))
	}
	body := sectionText(sections[0])

	// Line totals already include the sum-target delivery fee, so the footer
	// net figure equals the purchase total: 1100 + 500, not 1600 + 100 again.
	if !strings.Contains(body, "Delivery total 100") {
		t.Errorf("summary missing delivery total:\n%s", body)
	}
	if !strings.Contains(body, "Net incl. delivery 1600") {
		t.Errorf("summary net figure wrong:\n%s", body)
	}
	if strings.Contains(body, "1700") {
		t.Errorf("delivery fee counted twice:\n%s", body)
	}
}

func TestComposeSummaryProductRowOrder(t *testing.T) {
	one, two := 1, 2
	palm := &entity.Product{ID: uuid.New(), Name: "palm", ProductLine: &one}
	latex := &entity.Product{ID: uuid.New(), Name: "latex", ProductLine: &two}
	emp := &entity.Employee{ID: uuid.New(), Name: "Wichai"}
	other := &entity.Employee{ID: uuid.New(), Name: "Somsak"}
	split := func(c *calc.Line) {
		c.SetWeight("100")
		c.SetPrice("5")
		c.SetSplitMode(enum.SplitMode64)
	}
	group := &entity.TransactionGroup{
		ID: uuid.New(),
		Lines: []entity.TransactionLine{
			// Latex first so first-seen order disagrees with the display keys.
			receiptLine(t, 1, latex, emp, split),
			receiptLine(t, 2, palm, emp, split),
			receiptLine(t, 3, latex, other, split),
			receiptLine(t, 4, palm, other, split),
		},
	}

	sections := service.ComposeReceipt(testShop, group, service.ComposeOptions{SummaryOnly: true, PrintedAt: time.Now()})

	// Both the per-employee breakdown inside the product summary and the
	// standalone employee summaries list products by display key, palm
	// before latex, regardless of line entry order.
	productRows := func(s entity.ReceiptSection) []string {
		var names []string
		for _, row := range s.Texts {
			text := strings.TrimSpace(row.Text)
			switch {
			case strings.HasPrefix(text, "palm"):
				names = append(names, "palm")
			case strings.HasPrefix(text, "latex"):
				names = append(names, "latex")
			}
		}
		return names
	}
	for _, s := range sections {
		var want []string
		switch s.Kind {
		case entity.ReceiptProductSummary:
			// Roll-up rows for both products, then one pair per employee.
			want = []string{"palm", "latex", "palm", "latex", "palm", "latex"}
		case entity.ReceiptEmployeeSummary:
			want = []string{"palm", "latex"}
		default:
			continue
		}
		got := productRows(s)
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("%s rows = %v, want %v:\n%s", s.Kind, got, want, sectionText(s))
		}
	}
}

func TestComposePromotionSummary(t *testing.T) {
	palm := &entity.Product{ID: uuid.New(), Name: "palm"}
	emp := &entity.Employee{ID: uuid.New(), Name: "Wichai"}
	group := &entity.TransactionGroup{
		ID: uuid.New(),
		Lines: []entity.TransactionLine{
			receiptLine(t, 1, palm, emp, func(c *calc.Line) {
				c.SetWeight("1000")
				c.SetPrice("5")
				c.SetHarvestRateEnabled(true)
				c.SetHarvestRate("0.05")
				c.PromotionTarget = enum.PromotionTargetSplit
				c.SetPromotionRate("0.1")
			}),
		},
	}

	sections := service.ComposeReceipt(testShop, group, service.ComposeOptions{PrintedAt: time.Now()})

	if countKind(sections, entity.ReceiptPromotionSummary) != 1 {
		t.Fatalf("kinds = %v, want a promotion summary", sectionKinds(sections))
	}
	promo := sections[len(sections)-1]
	if promo.Kind != entity.ReceiptPromotionSummary {
		t.Error("promotion summary is not the final section")
	}
	body := sectionText(promo)
	if !strings.Contains(body, "Wichai") || !strings.Contains(body, "100") {
		t.Errorf("promotion summary missing content:\n%s", body)
	}

	// The farmer copy carries the emphasized payable remainder.
	farmer := sections[0]
	found := false
	for _, row := range farmer.Texts {
		if row.Emphasis && strings.Contains(row.Text, "4950") {
			found = true
		}
	}
	if !found {
		t.Error("farmer copy does not emphasize the payable amount")
	}
}
