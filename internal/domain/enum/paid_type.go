package enum

// PaidType represents how a party is paid out
type PaidType string

const (
	PaidTypeCash         PaidType = "cash"
	PaidTypeBankTransfer PaidType = "bank transfer"
)

// IsValid reports whether the paid type is known
func (p PaidType) IsValid() bool {
	return p == PaidTypeCash || p == PaidTypeBankTransfer
}
