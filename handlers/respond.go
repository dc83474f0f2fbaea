package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicepay/models"
	"voicepay/services/assistant"
)

// envelope is the uniform assistant success response shape.
type envelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    gin.H         `json:"data"`
	Speak   string        `json:"speak"`
	Cards   []models.Card `json:"cards"`
}

// respondOK writes the success envelope. Nil data and cards render as
// an empty object and empty list so clients never see null.
func respondOK(c *gin.Context, data gin.H, speak, message string, cards []models.Card) {
	if data == nil {
		data = gin.H{}
	}
	if cards == nil {
		cards = []models.Card{}
	}
	if message == "" {
		message = "ok"
	}
	c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: message,
		Data:    data,
		Speak:   speak,
		Cards:   cards,
	})
}

// respondErr writes the failure envelope with a non-2xx status.
func respondErr(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceErr maps service errors onto the envelope: validation
// failures become 400, unresolved references and missing invoices 404,
// and any backend failure 502 with backendPrefix prepended.
func respondServiceErr(c *gin.Context, err error, backendPrefix string) {
	switch e := err.(type) {
	case *assistant.ValidationError:
		respondErr(c, http.StatusBadRequest, e.Message)
	case *assistant.NotFoundError:
		respondErr(c, http.StatusNotFound, e.Message)
	default:
		respondErr(c, http.StatusBadGateway, fmt.Sprintf("%s: %v", backendPrefix, err))
	}
}
