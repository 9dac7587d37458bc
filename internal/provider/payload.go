package provider

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"wallet-settlement/internal/model"

	"github.com/shopspring/decimal"
)

type referenceFields struct {
	ReferenceID string `json:"referenceId"`
	Reference   string `json:"reference"`
}

type nestedAmount struct {
	Amount   *decimal.Decimal `json:"amount"`
	Currency string           `json:"currency"`
}

type statusPayload struct {
	Status        string           `json:"status"`
	State         string           `json:"state"`
	PaymentStatus string           `json:"paymentStatus"`
	Amount        *decimal.Decimal `json:"amount"`
	Total         *decimal.Decimal `json:"total"`
	Currency      string           `json:"currency"`
	Transaction   *nestedAmount    `json:"transaction"`
	Payment       *nestedAmount    `json:"payment"`
	Metadata      *referenceFields `json:"metadata"`
	Data          json.RawMessage  `json:"data"`
	Reference     string           `json:"reference"`
	ExternalID    string           `json:"externalId"`
	OrderID       string           `json:"orderId"`
}

// ParseVerification decodes a status response body. The payload may be
// wrapped in a {"data": {...}} envelope. A body that cannot be decoded is a
// transient failure: nothing about the payment is known yet.
func ParseVerification(raw []byte) (*model.ProviderVerification, error) {
	body := unwrapEnvelope(raw)

	var p statusPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: undecodable verification payload: %v", model.ErrTransientProvider, err)
	}

	v := &model.ProviderVerification{
		Status: strings.ToUpper(model.FirstReference(p.Status, p.State, p.PaymentStatus)),
	}

	amount := firstDecimal(p.Amount, p.Total, nestedAmountOf(p.Transaction))
	if amount != nil {
		v.Amount, v.HasAmount = minorUnits(*amount)
	}

	var txCurrency, payCurrency string
	if p.Transaction != nil {
		txCurrency = p.Transaction.Currency
	}
	if p.Payment != nil {
		payCurrency = p.Payment.Currency
	}
	v.Currency = strings.ToUpper(model.FirstReference(p.Currency, txCurrency, payCurrency))

	var metaRefID, metaRef string
	if p.Metadata != nil {
		metaRefID, metaRef = p.Metadata.ReferenceID, p.Metadata.Reference
	}
	v.Reference = model.FirstReference(metaRefID, metaRef, jsonString(p.Data), p.Reference, p.ExternalID, p.OrderID)

	return v, nil
}

// unwrapEnvelope returns the inner object when raw is {"data": {...}}.
func unwrapEnvelope(raw []byte) []byte {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	inner, ok := env["data"]
	if !ok {
		return raw
	}
	trimmed := strings.TrimSpace(string(inner))
	if strings.HasPrefix(trimmed, "{") {
		return inner
	}
	return raw
}

func nestedAmountOf(n *nestedAmount) *decimal.Decimal {
	if n == nil {
		return nil
	}
	return n.Amount
}

func firstDecimal(values ...*decimal.Decimal) *decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// minorUnits accepts only whole, positive amounts that fit in an int64.
func minorUnits(d decimal.Decimal) (int64, bool) {
	if !d.IsInteger() || !d.IsPositive() {
		return 0, false
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, false
	}
	return d.IntPart(), true
}

func jsonString(raw json.RawMessage) string {
	if len(raw) == 0 || raw[0] != '"' {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
