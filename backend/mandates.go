package backend

import (
	"context"

	"voicepay/models"
)

type mandateResponse struct {
	Data struct {
		MandateID     string `json:"mandateId"`
		SignedMandate string `json:"signedMandate"`
	} `json:"data"`
}

// CreateMandate asks the signing authority for a mandate. The returned
// Mandate combines the request's scope with the backend-issued id and
// signed credential.
func (c *Client) CreateMandate(ctx context.Context, req MandateRequest) (*models.Mandate, error) {
	var res mandateResponse
	if err := c.post(ctx, "/api/mandates", req, &res); err != nil {
		return nil, err
	}
	return &models.Mandate{
		MandateID:     res.Data.MandateID,
		Type:          req.Type,
		UserID:        req.UserID,
		Action:        req.Action,
		AmountLimit:   req.AmountLimit,
		InvoiceID:     req.InvoiceID,
		SignedMandate: res.Data.SignedMandate,
	}, nil
}

type paymentResponse struct {
	Data struct {
		Receipt models.Receipt `json:"receipt"`
	} `json:"data"`
	Message string `json:"message"`
}

// ExecutePayment submits a signed mandate for settlement and returns
// the receipt plus the backend's passthrough message. The receipt's
// invoice id is backfilled from the request when the backend omits it.
func (c *Client) ExecutePayment(ctx context.Context, req PaymentRequest) (*models.Receipt, string, error) {
	var res paymentResponse
	if err := c.post(ctx, "/api/pay", req, &res); err != nil {
		return nil, "", err
	}
	receipt := res.Data.Receipt
	if receipt.InvoiceID == "" {
		receipt.InvoiceID = req.InvoiceID
	}
	return &receipt, res.Message, nil
}
