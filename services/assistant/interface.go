package assistant

import (
	"context"

	"go.uber.org/zap"

	"voicepay/backend"
	"voicepay/models"
)

// ListResult carries invoices plus the backend's passthrough message.
type ListResult struct {
	Invoices []models.Invoice
	Message  string
}

// PaymentResult is the terminal artifact of a successful payment run:
// the invoice that was paid, the Cart mandate that authorized it and
// the receipt proving settlement.
type PaymentResult struct {
	Invoice *models.Invoice
	Mandate *models.Mandate
	Receipt *models.Receipt
	Message string
}

// AssistantService drives the delegated-payment workflow against the
// invoicing backend. It is stateless per call: nothing is cached or
// persisted between requests.
type AssistantService interface {
	ListInvoices(ctx context.Context, userID, q, category string) (*ListResult, error)
	SearchInvoices(ctx context.Context, q, userID, category string) (*ListResult, error)
	PayInvoice(ctx context.Context, req models.PayRequest) (*PaymentResult, error)
	CreateIntent(ctx context.Context, req models.IntentRequest) (*models.Mandate, error)
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	Backend       backend.API
	Logger        *zap.Logger
	PaymentMethod string
}
