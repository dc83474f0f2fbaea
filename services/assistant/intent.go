package assistant

import (
	"context"

	"go.uber.org/zap"

	"voicepay/backend"
	"voicepay/models"
)

// CreateIntent issues a standing Intent mandate: delegated authority
// not bound to any invoice. The action defaults to "autopay" and the
// amount limit to zero; the invoice id goes out as an explicit null.
func (s *DefaultAssistantService) CreateIntent(ctx context.Context, req models.IntentRequest) (*models.Mandate, error) {
	if req.UserID == "" {
		return nil, NewValidationError("userId required")
	}

	action := req.Action
	if action == "" {
		action = "autopay"
	}

	mandate, err := s.Backend.CreateMandate(ctx, backend.MandateRequest{
		UserID:      req.UserID,
		Type:        models.MandateTypeIntent,
		Action:      action,
		AmountLimit: req.AmountLimit,
		InvoiceID:   nil,
	})
	if err != nil {
		s.Logger.Error("intent mandate creation failed",
			zap.String("userId", req.UserID), zap.Error(err))
		return nil, err
	}

	s.Logger.Info("intent mandate created",
		zap.String("userId", req.UserID),
		zap.String("mandateId", mandate.MandateID),
		zap.String("action", action))
	return mandate, nil
}
