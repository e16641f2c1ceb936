package models

// Journal entry types. DEBIT records cash in, CREDIT records cash out.
const (
	JournalDebit  = "DEBIT"
	JournalCredit = "CREDIT"
)

// JournalEntry is one line of the accounting journal. Entries are never
// updated or deleted once recorded.
type JournalEntry struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	ReferenceID string `json:"referenceId,omitempty"` // originating transaction or product
	IsCash      bool   `json:"isCash"`                // whether the entry moves cash directly
}

// JournalEntryInput is used for manual journal entries recorded by the admin.
type JournalEntryInput struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	IsCash      bool   `json:"isCash"`
}

func (j *JournalEntryInput) Validate() string {
	if j.Amount <= 0 {
		return "amount must be positive"
	}
	switch j.Type {
	case JournalDebit, JournalCredit:
	default:
		return "type must be DEBIT or CREDIT"
	}
	if j.Category == "" {
		return "category is required"
	}
	return ""
}
