package models

// Transaction types.
const (
	TypeDeposit       = "DEPOSIT"
	TypeWithdrawal    = "WITHDRAWAL"
	TypePayment       = "PAYMENT"
	TypePurchase      = "PURCHASE"
	TypeSHUWithdrawal = "SHU_WITHDRAWAL"
)

// Transaction statuses. PENDING is the only non-terminal status.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Transaction represents a member transaction against the cooperative.
// Amounts are whole rupiah. Everything except Status is immutable once stored.
type Transaction struct {
	ID          string `json:"id"`
	MemberID    string `json:"memberId"`
	Date        string `json:"date"` // YYYY-MM-DD
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Profit      int64  `json:"profit,omitempty"` // only meaningful for PURCHASE
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Terminal reports whether the transaction can no longer change status.
func (t *Transaction) Terminal() bool {
	return t.Status == StatusApproved || t.Status == StatusRejected
}

// TransactionInput is used for submitting transactions.
type TransactionInput struct {
	MemberID    string `json:"memberId"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Profit      int64  `json:"profit"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (t *TransactionInput) Validate() string {
	if t.MemberID == "" {
		return "memberId is required"
	}
	if t.Amount <= 0 {
		return "amount must be positive"
	}
	switch t.Type {
	case TypeDeposit, TypeWithdrawal, TypePayment, TypePurchase, TypeSHUWithdrawal:
	default:
		return "type must be one of: DEPOSIT, WITHDRAWAL, PAYMENT, PURCHASE, SHU_WITHDRAWAL"
	}
	if t.Profit < 0 {
		return "profit must not be negative"
	}
	if t.Profit > t.Amount {
		return "profit must not exceed amount"
	}
	switch t.Status {
	case "", StatusPending, StatusApproved:
	default:
		return "status must be PENDING or APPROVED"
	}
	return ""
}
