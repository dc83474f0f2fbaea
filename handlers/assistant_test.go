package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicepay/backend"
	"voicepay/models"
	"voicepay/services/assistant"
)

// stubService scripts one response per operation and records the last
// request it saw.
type stubService struct {
	listRes *assistant.ListResult
	listErr error

	searchRes    *assistant.ListResult
	searchErr    error
	searchCalled bool
	lastQuery    string

	payRes     *assistant.PaymentResult
	payErr     error
	lastPayReq models.PayRequest

	mandate       *models.Mandate
	intentErr     error
	lastIntentReq models.IntentRequest
}

func (s *stubService) ListInvoices(_ context.Context, _, _, _ string) (*assistant.ListResult, error) {
	return s.listRes, s.listErr
}

func (s *stubService) SearchInvoices(_ context.Context, q, _, _ string) (*assistant.ListResult, error) {
	s.searchCalled = true
	s.lastQuery = q
	return s.searchRes, s.searchErr
}

func (s *stubService) PayInvoice(_ context.Context, req models.PayRequest) (*assistant.PaymentResult, error) {
	s.lastPayReq = req
	return s.payRes, s.payErr
}

func (s *stubService) CreateIntent(_ context.Context, req models.IntentRequest) (*models.Mandate, error) {
	s.lastIntentReq = req
	return s.mandate, s.intentErr
}

func newTestRouter(svc assistant.AssistantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAssistantHandler(svc)
	r := gin.New()
	r.GET("/agent/invoices/:userId", h.ListInvoices)
	r.GET("/agent/search", h.Search)
	r.POST("/agent/pay", h.Pay)
	r.POST("/agent/intent", h.CreateIntent)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestListInvoicesHandler(t *testing.T) {
	svc := &stubService{
		listRes: &assistant.ListResult{
			Invoices: []models.Invoice{
				{InvoiceID: "INV-1", ShortID: "11", Label: "Hosting", Amount: 42.5, DueDate: "2025-04-01"},
				{InvoiceID: "INV-2", ShortID: "12", Label: "Power", Amount: 20, DueDate: "2025-05-01"},
			},
			Message: "2 invoices",
		},
	}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/agent/invoices/u1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "2 invoices", body["message"])
	assert.Equal(t, "You have 2 invoice(s). First: Hosting for $42.5 due 2025-04-01.", body["speak"])

	cards := body["cards"].([]any)
	require.Len(t, cards, 2)
	first := cards[0].(map[string]any)
	assert.Equal(t, "Hosting", first["title"])
	assert.Equal(t, "#11 • $42.5 • due 2025-04-01", first["subtitle"])

	data := body["data"].(map[string]any)
	assert.Len(t, data["raw"].([]any), 2)
}

func TestListInvoicesHandler_EmptyList(t *testing.T) {
	svc := &stubService{listRes: &assistant.ListResult{}}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/agent/invoices/u1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You have no matching invoices.", body["speak"])
	assert.Equal(t, "ok", body["message"])
	assert.Empty(t, body["cards"].([]any))
}

func TestListInvoicesHandler_BackendFailure(t *testing.T) {
	svc := &stubService{listErr: &backend.Error{Op: "GET /api/invoices", Cause: "connection refused"}}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/agent/invoices/u1", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "Failed to fetch invoices")
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	svc := &stubService{searchErr: assistant.NewValidationError("query 'q' required")}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/agent/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "query 'q' required", body["message"])
}

func TestSearchHandler(t *testing.T) {
	svc := &stubService{
		searchRes: &assistant.ListResult{
			Invoices: []models.Invoice{{InvoiceID: "INV-1", ShortID: "11", Label: "Subscription", Amount: 15.99}},
		},
	}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodGet, "/agent/search?q=netflix", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "netflix", svc.lastQuery)
	assert.Equal(t, "Found 1 invoices matching netflix.", body["speak"])

	cards := body["cards"].([]any)
	require.Len(t, cards, 1)
	// Search cards omit the due date.
	assert.Equal(t, "#11 • $15.99", cards[0].(map[string]any)["subtitle"])
}

func TestPayHandler(t *testing.T) {
	invoiceID := "INV-9"
	svc := &stubService{
		payRes: &assistant.PaymentResult{
			Invoice: &models.Invoice{InvoiceID: "INV-9", Amount: 42.5},
			Mandate: &models.Mandate{MandateID: "mdt-1", Type: "Cart", InvoiceID: &invoiceID, SignedMandate: "signed-blob"},
			Receipt: &models.Receipt{ReceiptID: "rcp-1", Amount: 42.5, InvoiceID: "INV-9"},
			Message: "Payment recorded",
		},
	}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/agent/pay", `{"userId":"u1","invoiceId":"INV-9"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PayRequest{UserID: "u1", InvoiceID: "INV-9"}, svc.lastPayReq)
	assert.Equal(t, "Payment successful. Invoice INV-9 paid for $42.5.", body["speak"])
	assert.Equal(t, "Payment recorded", body["message"])

	data := body["data"].(map[string]any)
	cart := data["cart"].(map[string]any)
	assert.Equal(t, "mdt-1", cart["mandateId"])
	payment := data["payment"].(map[string]any)
	receipt := payment["receipt"].(map[string]any)
	assert.Equal(t, "rcp-1", receipt["receiptId"])

	cards := body["cards"].([]any)
	require.Len(t, cards, 1)
	assert.Equal(t, "Receipt rcp-1", cards[0].(map[string]any)["title"])
}

func TestPayHandler_ValidationFailure(t *testing.T) {
	svc := &stubService{payErr: assistant.NewValidationError("userId required")}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/agent/pay", `{"invoiceId":"INV-9"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "userId required", body["message"])
}

func TestPayHandler_NoMatchingInvoice(t *testing.T) {
	svc := &stubService{payErr: assistant.NewNotFoundError("I couldn't find an invoice matching that description")}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/agent/pay", `{"userId":"u1","voiceRef":"the phantom invoice"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "I couldn't find an invoice matching that description", body["message"])
}

func TestPayHandler_StageFailure(t *testing.T) {
	svc := &stubService{payErr: &assistant.StageError{
		Stage: assistant.StageMandate,
		Err:   &backend.Error{Op: "POST /api/mandates", Status: 500, Cause: "signing authority down"},
	}}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/agent/pay", `{"userId":"u1","invoiceId":"INV-9"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, body["message"], "Payment failed")
	assert.Contains(t, body["message"], "mandate stage failed")
}

func TestPayHandler_MalformedBody(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/agent/pay", `{"userId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestIntentHandler(t *testing.T) {
	svc := &stubService{
		mandate: &models.Mandate{MandateID: "mdt-7", Action: "autopay", SignedMandate: "signed-blob"},
	}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/agent/intent", `{"userId":"u1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.IntentRequest{UserID: "u1"}, svc.lastIntentReq)
	assert.Equal(t, "Intent created", body["message"])
	assert.Equal(t, "Intent created for autopay", body["speak"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "mdt-7", data["mandateId"])
	assert.Equal(t, "signed-blob", data["signedMandate"])
}

func TestIntentHandler_ValidationFailure(t *testing.T) {
	svc := &stubService{intentErr: assistant.NewValidationError("userId required")}
	r := newTestRouter(svc)

	w, body := doRequest(t, r, http.MethodPost, "/agent/intent", `{"action":"autopay"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "userId required", body["message"])
}
