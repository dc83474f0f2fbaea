package assistant

import (
	"context"

	"voicepay/backend"
)

// ListInvoices fetches a user's invoices, optionally narrowed by a
// free-text query and category.
func (s *DefaultAssistantService) ListInvoices(ctx context.Context, userID, q, category string) (*ListResult, error) {
	invoices, message, err := s.Backend.ListInvoices(ctx, backend.InvoiceQuery{
		UserID:   userID,
		Q:        q,
		Category: category,
	})
	if err != nil {
		return nil, err
	}
	return &ListResult{Invoices: invoices, Message: message}, nil
}

// SearchInvoices requires a query; userID and category are optional
// narrowing filters.
func (s *DefaultAssistantService) SearchInvoices(ctx context.Context, q, userID, category string) (*ListResult, error) {
	if q == "" {
		return nil, NewValidationError("query 'q' required")
	}
	return s.ListInvoices(ctx, userID, q, category)
}
