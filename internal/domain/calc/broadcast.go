package calc

import "github.com/supthawee/farmgate-api/internal/domain/enum"

// Group-level fan-out editing. A palm group control writes the same harvest
// configuration into every line of the designated product in one operation,
// and turning the control off reverses the broadcast line by line. Both are
// pure transforms over a copy of the line slice so the write and its inverse
// can be reasoned about (and tested) together.

// HarvestBroadcast is the configuration a group-level palm control fans out.
type HarvestBroadcast struct {
	EmployeeID       string
	HarvestRate      string
	PromotionTarget  enum.PromotionTarget
	PromotionRate    string
	FarmerPaidType   enum.PaidType
	EmployeePaidType enum.PaidType
}

// BroadcastToMatching returns a copy of lines with apply run on every line
// the predicate matches.
func BroadcastToMatching(lines []Line, match func(Line) bool, apply func(*Line)) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if match(out[i]) {
			apply(&out[i])
		}
	}
	return out
}

func matchProduct(productID string) func(Line) bool {
	return func(l Line) bool { return l.ProductID == productID }
}

// BroadcastHarvest applies the harvest configuration to every line of the
// given product: harvest mode on, shared employee, rate-derived amounts,
// promotion fields and paid types.
func BroadcastHarvest(lines []Line, productID string, cfg HarvestBroadcast) []Line {
	return BroadcastToMatching(lines, matchProduct(productID), func(l *Line) {
		l.SetHarvestRateEnabled(true)
		l.EmployeeID = cfg.EmployeeID
		l.SetHarvestRate(cfg.HarvestRate)
		l.PromotionTarget = cfg.PromotionTarget
		l.SetPromotionRate(cfg.PromotionRate)
		l.FarmerPaidType = cfg.FarmerPaidType
		l.EmployeePaidType = cfg.EmployeePaidType
	})
}

// ClearHarvest reverses a harvest broadcast: every matching line drops its
// harvest fields and reverts its full total to the farmer, exactly as the
// line-level harvest-off rule does.
func ClearHarvest(lines []Line, productID string) []Line {
	return BroadcastToMatching(lines, matchProduct(productID), func(l *Line) {
		l.SetHarvestRateEnabled(false)
	})
}
