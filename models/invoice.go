package models

// Invoice represents a billable item owed by a user. Invoices are
// created and owned by the invoicing backend; this service only reads
// them and never mutates them.
type Invoice struct {
	InvoiceID   string  `json:"invoiceId"`   // Stable unique identifier.
	ShortID     string  `json:"shortId"`     // Short numeric label, not globally unique.
	Vendor      string  `json:"vendor"`      // Billing party.
	Label       string  `json:"label"`       // Human-readable title.
	Description string  `json:"description"` // Free-text detail.
	Amount      float64 `json:"amount"`      // Non-negative amount due.
	DueDate     string  `json:"dueDate"`     // ISO-8601; full timestamps and bare dates both occur.
	Paid        bool    `json:"paid"`
}
