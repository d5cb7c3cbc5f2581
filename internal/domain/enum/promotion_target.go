package enum

// PromotionTarget controls where a line's promotion (delivery/referral
// commission) amount lands: "sum" folds it into the line's own net total,
// "split" pools it across the group's lines into one combined figure.
type PromotionTarget string

const (
	PromotionTargetSum   PromotionTarget = "sum"
	PromotionTargetSplit PromotionTarget = "split"
)

// IsValid reports whether the target is known
func (t PromotionTarget) IsValid() bool {
	return t == PromotionTargetSum || t == PromotionTargetSplit
}
