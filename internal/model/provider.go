package model

import "strings"

type ProviderOutcome int

const (
	OutcomeFailed ProviderOutcome = iota
	OutcomePending
	OutcomeSucceeded
)

func (o ProviderOutcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomePending:
		return "pending"
	default:
		return "failed"
	}
}

// ProviderVerification is the validated answer of the payment provider for a
// single transaction. It is the only trusted signal that money moved.
type ProviderVerification struct {
	TransactionID string
	Status        string
	Amount        int64
	HasAmount     bool
	Currency      string
	Reference     string
}

// Outcome classifies the raw provider status. Unknown and empty statuses are
// failures.
func (v *ProviderVerification) Outcome() ProviderOutcome {
	switch strings.ToUpper(strings.TrimSpace(v.Status)) {
	case "SUCCESS", "PAYMENT_SUCCESS", "COMPLETED", "PAID":
		return OutcomeSucceeded
	case "PENDING", "INITIATED", "IN_PROGRESS", "PROCESSING":
		return OutcomePending
	default:
		return OutcomeFailed
	}
}

// FirstReference returns the first non-blank candidate, trimmed.
func FirstReference(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}
