package backend

import (
	"context"
	"net/url"

	"voicepay/models"
)

type invoiceListResponse struct {
	Data struct {
		Invoices []models.Invoice `json:"invoices"`
	} `json:"data"`
	Message string `json:"message"`
}

// ListInvoices fetches invoices matching the query, along with the
// backend's passthrough message.
func (c *Client) ListInvoices(ctx context.Context, query InvoiceQuery) ([]models.Invoice, string, error) {
	params := url.Values{}
	if query.UserID != "" {
		params.Set("userId", query.UserID)
	}
	if query.Q != "" {
		params.Set("q", query.Q)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}

	var res invoiceListResponse
	if err := c.get(ctx, "/api/invoices", params, &res); err != nil {
		return nil, "", err
	}
	return res.Data.Invoices, res.Message, nil
}

type invoiceDetailResponse struct {
	Data struct {
		Invoice *models.Invoice `json:"invoice"`
	} `json:"data"`
}

// GetInvoice fetches full detail for one invoice. The result is nil
// when the backend answered successfully but reported no invoice.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	var res invoiceDetailResponse
	if err := c.get(ctx, "/api/invoices/"+url.PathEscape(invoiceID), nil, &res); err != nil {
		return nil, err
	}
	return res.Data.Invoice, nil
}
