package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicepay/models"
	"voicepay/services/assistant"
)

// AssistantHandler exposes the agent-facing HTTP surface.
type AssistantHandler struct {
	Service assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: svc}
}

// ListInvoices handles GET /agent/invoices/:userId?q=&category= and
// returns a speakable summary plus cards with invoice metadata.
func (h *AssistantHandler) ListInvoices(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")
	q := strings.TrimSpace(c.Query("q"))
	category := strings.TrimSpace(c.Query("category"))

	res, err := h.Service.ListInvoices(c.Request.Context(), userID, q, category)
	if err != nil {
		logger.Error("Failed to fetch invoices", zap.String("userId", userID), zap.Error(err))
		respondServiceErr(c, err, "Failed to fetch invoices")
		return
	}

	speak := "You have no matching invoices."
	if len(res.Invoices) > 0 {
		top := res.Invoices[0]
		speak = fmt.Sprintf("You have %d invoice(s). First: %s for $%v due %s.",
			len(res.Invoices), top.Label, top.Amount, top.DueDate)
	}
	respondOK(c, gin.H{"raw": res.Invoices}, speak, res.Message, invoiceCards(res.Invoices, true))
}

// Search handles GET /agent/search?q=&userId=&category=.
func (h *AssistantHandler) Search(c *gin.Context) {
	logger := getLogger(c)
	q := strings.TrimSpace(c.Query("q"))
	userID := strings.TrimSpace(c.Query("userId"))
	category := strings.TrimSpace(c.Query("category"))

	res, err := h.Service.SearchInvoices(c.Request.Context(), q, userID, category)
	if err != nil {
		logger.Warn("Search failed", zap.String("q", q), zap.Error(err))
		respondServiceErr(c, err, "Search failed")
		return
	}

	speak := fmt.Sprintf("Found %d invoices matching %s.", len(res.Invoices), q)
	respondOK(c, gin.H{"invoices": res.Invoices}, speak, res.Message, invoiceCards(res.Invoices, false))
}

// Pay handles POST /agent/pay: resolve the target invoice when only a
// voice reference was given, then run the mandate-then-pay pipeline.
func (h *AssistantHandler) Pay(c *gin.Context) {
	logger := getLogger(c)

	var req models.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.Service.PayInvoice(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Payment attempt failed",
			zap.String("userId", req.UserID),
			zap.String("invoiceId", req.InvoiceID),
			zap.String("voiceRef", req.VoiceRef),
			zap.Error(err))
		respondServiceErr(c, err, "Payment failed")
		return
	}

	speak := fmt.Sprintf("Payment successful. Invoice %s paid for $%v.",
		res.Receipt.InvoiceID, res.Receipt.Amount)
	card := models.Card{
		Title:    fmt.Sprintf("Receipt %s", res.Receipt.ReceiptID),
		Subtitle: fmt.Sprintf("$%v • %s", res.Receipt.Amount, res.Receipt.InvoiceID),
		Metadata: res.Receipt,
	}
	respondOK(c, gin.H{
		"cart":    res.Mandate,
		"payment": gin.H{"receipt": res.Receipt},
	}, speak, res.Message, []models.Card{card})
}

// CreateIntent handles POST /agent/intent.
func (h *AssistantHandler) CreateIntent(c *gin.Context) {
	logger := getLogger(c)

	var req models.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	mandate, err := h.Service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Intent creation failed", zap.String("userId", req.UserID), zap.Error(err))
		respondServiceErr(c, err, "Failed to create intent")
		return
	}

	respondOK(c, gin.H{
		"mandateId":     mandate.MandateID,
		"signedMandate": mandate.SignedMandate,
	}, fmt.Sprintf("Intent created for %s", mandate.Action), "Intent created", nil)
}

// invoiceCards builds display cards for a list of invoices. The due
// date appears only in the long (listing) form.
func invoiceCards(invoices []models.Invoice, withDue bool) []models.Card {
	cards := make([]models.Card, 0, len(invoices))
	for _, inv := range invoices {
		subtitle := fmt.Sprintf("#%s • $%v", inv.ShortID, inv.Amount)
		if withDue {
			subtitle = fmt.Sprintf("#%s • $%v • due %s", inv.ShortID, inv.Amount, inv.DueDate)
		}
		cards = append(cards, models.Card{Title: inv.Label, Subtitle: subtitle, Metadata: inv})
	}
	return cards
}
