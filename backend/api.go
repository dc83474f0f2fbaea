package backend

import (
	"context"

	"voicepay/models"
)

// InvoiceQuery narrows GET /api/invoices. Empty fields are omitted
// from the query string.
type InvoiceQuery struct {
	UserID   string
	Q        string
	Category string
}

// MandateRequest is the body of POST /api/mandates. InvoiceID is a
// pointer so Intent mandates serialize it as an explicit null.
type MandateRequest struct {
	UserID      string  `json:"userId"`
	Type        string  `json:"type"`
	Action      string  `json:"action"`
	AmountLimit float64 `json:"amountLimit"`
	InvoiceID   *string `json:"invoiceId"`
}

// PaymentRequest is the body of POST /api/pay.
type PaymentRequest struct {
	MandateID     string `json:"mandateId"`
	SignedMandate string `json:"signedMandate"`
	InvoiceID     string `json:"invoiceId"`
	PaymentMethod string `json:"paymentMethod"`
}

// API is the slice of the invoicing backend this service consumes.
// Implementations perform no retries; every call either returns a
// parsed response or a *Error.
type API interface {
	ListInvoices(ctx context.Context, query InvoiceQuery) ([]models.Invoice, string, error)
	GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error)
	CreateMandate(ctx context.Context, req MandateRequest) (*models.Mandate, error)
	ExecutePayment(ctx context.Context, req PaymentRequest) (*models.Receipt, string, error)
}
