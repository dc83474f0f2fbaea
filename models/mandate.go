package models

// Mandate types issued by the backend signing authority.
const (
	// MandateTypeIntent is standing delegated authority, not bound to
	// any invoice (e.g. autopay).
	MandateTypeIntent = "Intent"
	// MandateTypeCart is single-use permission scoped to one invoice
	// and its exact amount at creation time.
	MandateTypeCart = "Cart"
)

// Mandate is a signed, backend-issued permission token authorizing a
// bounded payment action. It is created per payment attempt (Cart) or
// per delegation request (Intent) and never reused across attempts.
type Mandate struct {
	MandateID     string  `json:"mandateId"`
	Type          string  `json:"type,omitempty"`
	UserID        string  `json:"userId,omitempty"`
	Action        string  `json:"action,omitempty"`
	AmountLimit   float64 `json:"amountLimit,omitempty"`
	InvoiceID     *string `json:"invoiceId,omitempty"` // Nil for Intent mandates.
	SignedMandate string  `json:"signedMandate"`       // Opaque signed credential.
}

// Receipt is the proof-of-payment artifact returned after a successful
// payment execution.
type Receipt struct {
	ReceiptID string  `json:"receiptId"`
	Amount    float64 `json:"amount"`
	InvoiceID string  `json:"invoiceId,omitempty"`
}
