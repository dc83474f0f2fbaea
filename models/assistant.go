package models

// Card is a display hint attached to assistant responses, rendered by
// the voice/text client alongside the spoken summary.
type Card struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Metadata any    `json:"metadata"`
}

// PayRequest is the body of POST /agent/pay. Either InvoiceID or
// VoiceRef must be set; VoiceRef is only consulted when no direct
// invoice id is given.
type PayRequest struct {
	UserID    string `json:"userId"`
	InvoiceID string `json:"invoiceId"`
	VoiceRef  string `json:"voiceRef"`
}

// IntentRequest is the body of POST /agent/intent.
type IntentRequest struct {
	UserID      string  `json:"userId"`
	Action      string  `json:"action"`
	AmountLimit float64 `json:"amountLimit"`
}
