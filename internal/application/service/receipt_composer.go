package service

import (
	"fmt"
	"time"

	"github.com/supthawee/farmgate-api/internal/domain/calc"
	"github.com/supthawee/farmgate-api/internal/domain/entity"
	"github.com/supthawee/farmgate-api/internal/domain/enum"
)

// ShopIdentity is the header block printed on every receipt copy.
type ShopIdentity struct {
	Name    string
	Address string
	Phone   string
	Hours   string
}

// ComposeOptions control what a print run emits. SummaryOnly skips the
// per-line farmer and employee copies and prints only the group summaries,
// for a light re-print once everyone has their individual slip.
type ComposeOptions struct {
	SummaryOnly bool
	PrintedAt   time.Time
}

// ComposeReceipt turns a resolved group (farmer and lines preloaded, derived
// fields populated) into the ordered section list a printer renders. It is a
// pure function: no formatting beyond the engine's display rules, no device
// concerns.
func ComposeReceipt(shop ShopIdentity, group *entity.TransactionGroup, opts ComposeOptions) []entity.ReceiptSection {
	lines := make([]calc.Line, len(group.Lines))
	for i := range group.Lines {
		lines[i] = group.Lines[i].ToCalc()
	}

	productNames := make(map[string]string)
	employeeNames := make(map[string]string)
	for i := range group.Lines {
		l := &group.Lines[i]
		if l.Product != nil {
			productNames[l.Product.ID.String()] = l.Product.Name
		}
		if l.Employee != nil {
			employeeNames[l.Employee.ID.String()] = l.Employee.Name
		}
	}
	productName := func(id string) string { return productNames[id] }
	employeeName := func(id string) string { return employeeNames[id] }

	var sections []entity.ReceiptSection

	if !opts.SummaryOnly {
		for i := range lines {
			l := &lines[i]
			sections = append(sections, composeFarmerCopy(shop, group, l, productName, employeeName, opts.PrintedAt))
			if l.HasAllocation() {
				sections = append(sections, composeEmployeeCopy(shop, group, l, productName, employeeName, opts.PrintedAt))
			}
		}
	}

	orderKey := productOrderKey(group)
	byProduct := calc.GroupByProduct(lines, productName)
	byProductOrder := calc.SortProductAggregates(byProduct, orderKey)

	if len(lines) > 1 {
		sections = append(sections, composeProductSummary(byProductOrder, lines, employeeName, orderKey))
	}

	byEmployee := calc.GroupByEmployee(lines, employeeName, productName)
	for _, id := range distinctEmployees(lines) {
		agg, ok := byEmployee[id]
		if ok && countEmployeeProductLines(lines, id) > 1 {
			sections = append(sections, composeEmployeeSummary(agg, orderKey))
		}
	}

	if rollup := calc.PromotionSplitRollup(lines); rollup != nil && !rollup.TotalAmount.IsZero() {
		sections = append(sections, composePromotionSummary(rollup, employeeName))
	}

	return sections
}

func composeHeader(s *entity.ReceiptSection, shop ShopIdentity, group *entity.TransactionGroup, printedAt time.Time) {
	if shop.Name != "" {
		s.AddCentered(shop.Name)
	}
	if shop.Address != "" {
		s.AddCentered(shop.Address)
	}
	if shop.Phone != "" {
		s.AddCentered(shop.Phone)
	}
	if shop.Hours != "" {
		s.AddCentered(shop.Hours)
	}
	if group.Farmer != nil {
		s.AddText("Farmer: " + group.Farmer.Name)
	}
	if group.Name != nil && *group.Name != "" {
		s.AddText("Note: " + *group.Name)
	}
	s.AddText(printedAt.In(shopZone).Format("02/01/2006 15:04"))
}

func composeVehicleBlock(s *entity.ReceiptSection, l *calc.Line, bold bool) {
	if !l.IsVehicle {
		return
	}
	if l.CarLicense != "" {
		s.AddText("Plate: " + l.CarLicense)
	}
	row := fmt.Sprintf("In %s  Out %s  Net %s", l.WeightVehicleIn, l.WeightVehicleOut, l.Weight)
	if bold {
		s.AddBold(row)
	} else {
		s.AddText(row)
	}
}

// composeFarmerCopy builds the per-line farmer slip: header, vehicle block,
// the weight x price = total row and the farmer-side payable breakdown.
func composeFarmerCopy(shop ShopIdentity, group *entity.TransactionGroup, l *calc.Line, productName, employeeName func(string) string, printedAt time.Time) entity.ReceiptSection {
	s := entity.ReceiptSection{Kind: entity.ReceiptFarmerCopy}
	composeHeader(&s, shop, group, printedAt)
	if name := productName(l.ProductID); name != "" {
		s.AddBold(name)
	}
	composeVehicleBlock(&s, l, false)
	s.AddText(fmt.Sprintf("%s x %s = %s", l.Weight, l.Price, l.TotalAmount))

	switch {
	case l.IsHarvestRate:
		s.AddText(fmt.Sprintf("Harvest %s: -%s", calc.FormatHarvestRate(l.HarvestRate), l.EmployeeAmount))
		s.AddEmphasis("Farmer " + l.FarmerAmount)
	case l.SplitMode != enum.SplitModeNone:
		if l.IsTransportationFee && l.TransportationFeeAmount != calc.Blank {
			s.AddText(fmt.Sprintf("%s%%  %s - %s", calc.FormatRatio(l.FarmerRatio), l.FarmerAmount, l.TransportationFeeAmount))
			s.AddEmphasis("Farmer " + l.TransportationFeeFarmerAmount)
		} else {
			s.AddText(fmt.Sprintf("%s%%: %s / %s%%: %s",
				calc.FormatRatio(l.FarmerRatio), l.FarmerAmount,
				calc.FormatRatio(l.EmployeeRatio), l.EmployeeAmount))
			s.AddEmphasis("Farmer " + l.FarmerAmount)
		}
	default:
		s.AddEmphasis("Farmer " + l.FarmerAmount)
	}

	if l.PromotionTarget == enum.PromotionTargetSum && l.PromotionAmount != calc.Blank {
		s.AddText(fmt.Sprintf("Delivery %s: %s", l.PromotionRate, l.PromotionAmount))
		s.AddEmphasis("Total incl. delivery " + l.TotalNetAmount)
	}

	if name := employeeName(l.EmployeeID); name != "" {
		s.AddText("Employee: " + name)
	}
	return s
}

// composeEmployeeCopy builds the per-line employee slip, only the employee
// side of the breakdown.
func composeEmployeeCopy(shop ShopIdentity, group *entity.TransactionGroup, l *calc.Line, productName, employeeName func(string) string, printedAt time.Time) entity.ReceiptSection {
	s := entity.ReceiptSection{Kind: entity.ReceiptEmployeeCopy}
	composeHeader(&s, shop, group, printedAt)
	if name := productName(l.ProductID); name != "" {
		s.AddBold(name)
	}
	composeVehicleBlock(&s, l, true)
	s.AddBold(fmt.Sprintf("%s x %s = %s", l.Weight, l.Price, l.TotalAmount))

	switch {
	case l.IsHarvestRate:
		s.AddText("Harvest " + calc.FormatHarvestRate(l.HarvestRate))
		s.AddEmphasis("Employee " + l.EmployeeAmount)
	case l.IsTransportationFee && l.TransportationFeeAmount != calc.Blank:
		s.AddText(fmt.Sprintf("%s%%  %s + %s", calc.FormatRatio(l.EmployeeRatio), l.EmployeeAmount, l.TransportationFeeAmount))
		s.AddEmphasis("Employee " + l.TransportationFeeEmployeeAmount)
	default:
		s.AddText(calc.FormatRatio(l.EmployeeRatio) + "%")
		s.AddEmphasis("Employee " + l.EmployeeAmount)
	}

	if name := employeeName(l.EmployeeID); name != "" {
		s.AddText("Employee: " + name)
	}
	return s
}

// composeProductSummary builds the once-per-group product roll-up with its
// optional by-employee breakdown and the grand-total footer.
func composeProductSummary(ordered []*calc.ProductAggregate, lines []calc.Line, employeeName func(string) string, orderKey func(id string) (int, bool)) entity.ReceiptSection {
	s := entity.ReceiptSection{Kind: entity.ReceiptProductSummary}
	s.AddCentered("Summary")

	for _, agg := range ordered {
		s.AddBold(agg.ProductName)
		s.AddText(fmt.Sprintf("%s x %s = %s",
			calc.Format(agg.TotalWeight), calc.Format(agg.Price), calc.Format(agg.TotalAmount)))
		s.AddEmphasis("Farmer " + calc.Format(agg.FarmerAmount))
		if !agg.EmployeeAmount.IsZero() {
			s.AddText("Employee " + calc.Format(agg.EmployeeAmount))
		}
		if !agg.PromotionAmount.IsZero() {
			s.AddText("Delivery " + calc.Format(agg.PromotionAmount))
		}
	}

	if employees := distinctEmployees(lines); len(employees) > 1 {
		s.AddText("By employee")
		perEmployee := calc.GroupByEmployee(lines, employeeName, func(id string) string {
			for _, agg := range ordered {
				if agg.ProductID == id {
					return agg.ProductName
				}
			}
			return ""
		})
		for _, id := range employees {
			agg, ok := perEmployee[id]
			if !ok {
				continue
			}
			s.AddBold(agg.EmployeeName)
			for _, prod := range calc.SortProductAggregates(agg.Products, orderKey) {
				s.AddText(fmt.Sprintf("  %s  %s", prod.ProductName, calc.Format(prod.EmployeeAmount)))
			}
			s.AddText("  Total " + calc.Format(agg.TotalAmount))
		}
	}

	byProduct := make(map[string]*calc.ProductAggregate, len(ordered))
	for _, agg := range ordered {
		byProduct[agg.ProductID] = agg
	}
	grand := calc.GrandTotals(byProduct)
	s.AddText("Purchase total " + calc.Format(grand.TotalAmount))
	s.AddEmphasis("Farmer total " + calc.Format(grand.FarmerAmount))
	if !grand.EmployeeAmount.IsZero() {
		s.AddText("Employee total " + calc.Format(grand.EmployeeAmount))
	}
	if !grand.PromotionAmount.IsZero() {
		s.AddText("Delivery total " + calc.Format(grand.PromotionAmount))
		// Product totals already count the net-including-delivery figure.
		s.AddEmphasis("Net incl. delivery " + calc.Format(grand.TotalAmount))
	}
	return s
}

func composeEmployeeSummary(agg *calc.EmployeeAggregate, orderKey func(id string) (int, bool)) entity.ReceiptSection {
	s := entity.ReceiptSection{Kind: entity.ReceiptEmployeeSummary}
	s.AddCentered("Employee summary")
	s.AddBold(agg.EmployeeName)
	for _, prod := range calc.SortProductAggregates(agg.Products, orderKey) {
		s.AddText(fmt.Sprintf("%s  %s", prod.ProductName, calc.Format(prod.EmployeeAmount)))
	}
	s.AddEmphasis("Total " + calc.Format(agg.TotalAmount))
	return s
}

func composePromotionSummary(rollup *calc.PromotionRollup, employeeName func(string) string) entity.ReceiptSection {
	s := entity.ReceiptSection{Kind: entity.ReceiptPromotionSummary}
	s.AddCentered("Delivery fee")
	if name := employeeName(rollup.EmployeeID); name != "" {
		s.AddText("Employee: " + name)
	}
	s.AddText(fmt.Sprintf("Rate %s  Weight %s", rollup.Rate, calc.Format(rollup.TotalWeight)))
	s.AddEmphasis("Delivery total " + calc.Format(rollup.TotalAmount))
	return s
}

// productOrderKey resolves a product's display-ordering key from the group's
// preloaded products.
func productOrderKey(group *entity.TransactionGroup) func(id string) (int, bool) {
	keys := make(map[string]*int)
	for i := range group.Lines {
		if p := group.Lines[i].Product; p != nil {
			keys[p.ID.String()] = p.ProductLine
		}
	}
	return func(id string) (int, bool) {
		key, ok := keys[id]
		if !ok || key == nil {
			return 0, false
		}
		return *key, true
	}
}

// distinctEmployees returns the employee ids seen across lines, in first-seen
// order.
func distinctEmployees(lines []calc.Line) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range lines {
		id := lines[i].EmployeeID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// countEmployeeProductLines counts the lines carrying both the employee and a
// product; the per-employee summary only prints when there is more than one.
func countEmployeeProductLines(lines []calc.Line, employeeID string) int {
	n := 0
	for i := range lines {
		if lines[i].EmployeeID == employeeID && lines[i].ProductID != "" {
			n++
		}
	}
	return n
}
