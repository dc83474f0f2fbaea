package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"voicepay/backend"
	"voicepay/models"
)

// PayInvoice validates the request, resolves a voice reference when no
// direct invoice id was given, then runs the mandate-then-pay pipeline.
func (s *DefaultAssistantService) PayInvoice(ctx context.Context, req models.PayRequest) (*PaymentResult, error) {
	if req.UserID == "" {
		return nil, NewValidationError("userId required")
	}
	if req.InvoiceID == "" && req.VoiceRef == "" {
		return nil, NewValidationError("invoiceId or voiceRef required")
	}

	invoiceID := req.InvoiceID
	if invoiceID == "" {
		resolved, err := s.resolveVoiceRef(ctx, req.UserID, req.VoiceRef)
		if err != nil {
			return nil, err
		}
		invoiceID = resolved.InvoiceID
	}

	return s.payInvoice(ctx, req.UserID, invoiceID)
}

// resolveVoiceRef fetches the user's invoices and matches the spoken
// reference against them.
func (s *DefaultAssistantService) resolveVoiceRef(ctx context.Context, userID, voiceRef string) (*models.Invoice, error) {
	invoices, _, err := s.Backend.ListInvoices(ctx, backend.InvoiceQuery{UserID: userID})
	if err != nil {
		s.Logger.Error("failed to fetch invoices for reference resolution",
			zap.String("userId", userID), zap.Error(err))
		return nil, err
	}
	inv := ResolveReference(voiceRef, invoices)
	if inv == nil {
		return nil, NewNotFoundError("I couldn't find an invoice matching that description")
	}
	return inv, nil
}

// payInvoice is the three-stage pipeline: lookup, Cart mandate, pay.
// Each stage issues exactly one backend call and depends on the
// previous stage's output; the first failure halts the run. A Cart
// mandate created in stage two is left unconsumed when stage three
// fails: no rollback call exists, and the caller is told only about
// the payment failure.
func (s *DefaultAssistantService) payInvoice(ctx context.Context, userID, invoiceID string) (*PaymentResult, error) {
	// Stage 1: invoice lookup.
	invoice, err := s.Backend.GetInvoice(ctx, invoiceID)
	if err != nil {
		s.Logger.Warn("invoice lookup failed",
			zap.String("invoiceId", invoiceID), zap.Error(err))
		return nil, &StageError{Stage: StageLookup, Err: err}
	}
	if invoice == nil {
		return nil, NewNotFoundError("Invoice not found")
	}

	// Stage 2: Cart mandate scoped to this invoice and its exact amount.
	mandate, err := s.Backend.CreateMandate(ctx, backend.MandateRequest{
		UserID:      userID,
		Type:        models.MandateTypeCart,
		Action:      fmt.Sprintf("Pay invoice %s", invoiceID),
		AmountLimit: invoice.Amount,
		InvoiceID:   &invoiceID,
	})
	if err != nil {
		s.Logger.Error("cart mandate creation failed",
			zap.String("invoiceId", invoiceID), zap.Error(err))
		return nil, &StageError{Stage: StageMandate, Err: err}
	}

	// Stage 3: payment execution consuming the signed mandate.
	receipt, message, err := s.Backend.ExecutePayment(ctx, backend.PaymentRequest{
		MandateID:     mandate.MandateID,
		SignedMandate: mandate.SignedMandate,
		InvoiceID:     invoiceID,
		PaymentMethod: s.PaymentMethod,
	})
	if err != nil {
		s.Logger.Error("payment execution failed",
			zap.String("invoiceId", invoiceID),
			zap.String("mandateId", mandate.MandateID), zap.Error(err))
		return nil, &StageError{Stage: StagePayment, Err: err}
	}

	s.Logger.Info("invoice paid",
		zap.String("userId", userID),
		zap.String("invoiceId", invoiceID),
		zap.String("receiptId", receipt.ReceiptID))

	return &PaymentResult{
		Invoice: invoice,
		Mandate: mandate,
		Receipt: receipt,
		Message: message,
	}, nil
}
