package calc

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
)

// Aggregation over a group's resolved lines, feeding the on-screen summary
// and the printed product/employee/promotion sections.

// ProductAggregate is the per-product roll-up of a line collection.
type ProductAggregate struct {
	ProductID   string
	ProductName string
	TotalWeight decimal.Decimal
	// Price is the last-seen line price, not an average. Callers that need a
	// true average divide TotalAmount by TotalWeight themselves.
	Price           decimal.Decimal
	TotalAmount     decimal.Decimal
	FarmerAmount    decimal.Decimal
	EmployeeAmount  decimal.Decimal
	PromotionAmount decimal.Decimal
}

// EmployeeAggregate nests per-product figures under one employee.
type EmployeeAggregate struct {
	EmployeeID   string
	EmployeeName string
	Products     map[string]*ProductAggregate
	TotalAmount  decimal.Decimal
}

// GrandTotal is the footer figure set across all product groups.
type GrandTotal struct {
	TotalAmount     decimal.Decimal
	FarmerAmount    decimal.Decimal
	EmployeeAmount  decimal.Decimal
	PromotionAmount decimal.Decimal
}

// PromotionRollup is the combined "delivery fee" figure for lines whose
// promotion target is split: one fee billed per visit, not per product line.
type PromotionRollup struct {
	EmployeeID  string
	Rate        string
	TotalWeight decimal.Decimal
	TotalAmount decimal.Decimal
	LineCount   int
}

// lineTotal is the per-line figure the grand-total footer counts: the net
// total when present, the plain total otherwise.
func lineTotal(l *Line) decimal.Decimal {
	if l.TotalNetAmount != Blank {
		return parseOrZero(l.TotalNetAmount)
	}
	return parseOrZero(l.TotalAmount)
}

// GroupByProduct rolls lines up per product. Weight and amount fields are
// summed; farmer/employee amounts use the transport-fee-adjusted variant when
// the fee is active; promotion amounts count only for sum-target lines
// (split-target promotion is rolled up separately by PromotionSplitRollup).
func GroupByProduct(lines []Line, productName func(id string) string) map[string]*ProductAggregate {
	groups := make(map[string]*ProductAggregate)
	for i := range lines {
		l := &lines[i]
		if l.ProductID == "" {
			continue
		}
		agg, ok := groups[l.ProductID]
		if !ok {
			agg = &ProductAggregate{ProductID: l.ProductID, ProductName: productName(l.ProductID)}
			groups[l.ProductID] = agg
		}
		agg.TotalWeight = agg.TotalWeight.Add(parseOrZero(l.Weight))
		if l.Price != Blank {
			agg.Price = parseOrZero(l.Price)
		}
		agg.TotalAmount = agg.TotalAmount.Add(lineTotal(l))
		agg.FarmerAmount = agg.FarmerAmount.Add(parseOrZero(l.EffectiveFarmerAmount()))
		agg.EmployeeAmount = agg.EmployeeAmount.Add(parseOrZero(l.EffectiveEmployeeAmount()))
		if l.PromotionTarget == enum.PromotionTargetSum {
			agg.PromotionAmount = agg.PromotionAmount.Add(parseOrZero(l.PromotionAmount))
		}
	}
	return groups
}

// GroupByEmployee rolls lines up per employee, nested by product, with a
// grand per-employee total. Lines without an employee are skipped.
func GroupByEmployee(lines []Line, employeeName, productName func(id string) string) map[string]*EmployeeAggregate {
	groups := make(map[string]*EmployeeAggregate)
	for i := range lines {
		l := &lines[i]
		if l.EmployeeID == "" || l.ProductID == "" {
			continue
		}
		agg, ok := groups[l.EmployeeID]
		if !ok {
			agg = &EmployeeAggregate{
				EmployeeID:   l.EmployeeID,
				EmployeeName: employeeName(l.EmployeeID),
				Products:     make(map[string]*ProductAggregate),
			}
			groups[l.EmployeeID] = agg
		}
		prod, ok := agg.Products[l.ProductID]
		if !ok {
			prod = &ProductAggregate{ProductID: l.ProductID, ProductName: productName(l.ProductID)}
			agg.Products[l.ProductID] = prod
		}
		amount := parseOrZero(l.EffectiveEmployeeAmount())
		prod.TotalWeight = prod.TotalWeight.Add(parseOrZero(l.Weight))
		prod.EmployeeAmount = prod.EmployeeAmount.Add(amount)
		agg.TotalAmount = agg.TotalAmount.Add(amount)
	}
	return groups
}

// PromotionSplitRollup combines every split-target promotion line into one
// delivery-fee figure: summed amounts and weights, the first line's rate and
// employee. Returns nil when no line qualifies.
func PromotionSplitRollup(lines []Line) *PromotionRollup {
	var rollup *PromotionRollup
	for i := range lines {
		l := &lines[i]
		if l.PromotionTarget != enum.PromotionTargetSplit || l.PromotionAmount == Blank {
			continue
		}
		if rollup == nil {
			rollup = &PromotionRollup{EmployeeID: l.EmployeeID, Rate: l.PromotionRate}
		}
		rollup.TotalWeight = rollup.TotalWeight.Add(parseOrZero(l.Weight))
		rollup.TotalAmount = rollup.TotalAmount.Add(parseOrZero(l.PromotionAmount))
		rollup.LineCount++
	}
	return rollup
}

// GrandTotals sums every product aggregate into the footer figure set.
func GrandTotals(groups map[string]*ProductAggregate) GrandTotal {
	var g GrandTotal
	for _, agg := range groups {
		g.TotalAmount = g.TotalAmount.Add(agg.TotalAmount)
		g.FarmerAmount = g.FarmerAmount.Add(agg.FarmerAmount)
		g.EmployeeAmount = g.EmployeeAmount.Add(agg.EmployeeAmount)
		g.PromotionAmount = g.PromotionAmount.Add(agg.PromotionAmount)
	}
	return g
}

// SortProductAggregates orders aggregates by the product display-ordering
// key ascending, products without a key after all keyed products, ties broken
// by name. orderKey returns the key and whether the product has one.
func SortProductAggregates(groups map[string]*ProductAggregate, orderKey func(id string) (int, bool)) []*ProductAggregate {
	out := make([]*ProductAggregate, 0, len(groups))
	for _, agg := range groups {
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, oki := orderKey(out[i].ProductID)
		kj, okj := orderKey(out[j].ProductID)
		if oki != okj {
			return oki
		}
		if oki && okj && ki != kj {
			return ki < kj
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out
}
