package enum

// TransactionStatus represents the lifecycle state of a transaction group
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSubmitted TransactionStatus = "submitted"
)

// IsValid reports whether the status is one of the known lifecycle states
func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusPending || s == TransactionStatusSubmitted
}
