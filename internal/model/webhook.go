package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type WebhookEventKind string

const (
	WebhookSuccess     WebhookEventKind = "success"
	WebhookFailure     WebhookEventKind = "failure"
	WebhookUnsupported WebhookEventKind = "unsupported"
)

// WebhookEvent is a provider push event after strict parsing. Its fields only
// ever trigger a verification call; they are never used to credit a balance.
type WebhookEvent struct {
	TransactionID string
	Event         string
	Kind          WebhookEventKind
	ReferenceID   string
}

type webhookReferenceFields struct {
	ReferenceID string          `json:"referenceId"`
	Reference   string          `json:"reference"`
	ExternalID  string          `json:"externalId"`
	Data        json.RawMessage `json:"data"`
}

type webhookPayload struct {
	TransactionID   string                  `json:"transactionId"`
	Event           string                  `json:"event"`
	Type            string                  `json:"type"`
	IsPaymentSucces *bool                   `json:"isPaymentSucces"`
	Metadata        *webhookReferenceFields `json:"metadata"`
	StateData       *webhookReferenceFields `json:"stateData"`
	Data            json.RawMessage         `json:"data"`
	Reference       string                  `json:"reference"`
	ReferenceID     string                  `json:"referenceId"`
	ExternalID      string                  `json:"externalId"`
	OrderID         string                  `json:"orderId"`
}

// ParseWebhookEvent decodes a raw webhook body. A body that is not a JSON
// object, carries trailing data, has wrongly typed fields or lacks
// transactionId is rejected.
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}

	txID := strings.TrimSpace(p.TransactionID)
	if txID == "" {
		return nil, fmt.Errorf("%w: missing transactionId", ErrInvalidWebhook)
	}

	event := strings.ToLower(strings.TrimSpace(FirstReference(p.Event, p.Type)))
	kind := WebhookUnsupported
	switch {
	case (p.IsPaymentSucces != nil && *p.IsPaymentSucces) || event == "transaction.success":
		kind = WebhookSuccess
	case (p.IsPaymentSucces != nil && !*p.IsPaymentSucces) || event == "transaction.failed":
		kind = WebhookFailure
	}

	meta := p.Metadata
	if meta == nil {
		meta = p.StateData
	}
	state := p.StateData
	if state == nil {
		state = &webhookReferenceFields{}
	}
	if meta == nil {
		meta = &webhookReferenceFields{}
	}

	ref := FirstReference(
		meta.ReferenceID,
		meta.Reference,
		rawString(p.Data),
		rawString(state.Data),
		p.Reference,
		p.ReferenceID,
		state.ReferenceID,
		p.ExternalID,
		state.Reference,
		state.ExternalID,
		p.OrderID,
	)

	return &WebhookEvent{
		TransactionID: txID,
		Event:         event,
		Kind:          kind,
		ReferenceID:   ref,
	}, nil
}

// rawString returns the value of a JSON string, or "" for any other JSON type.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || raw[0] != '"' {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
