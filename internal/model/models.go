package model

import (
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Balance   int64     `json:"balance"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerEntry is one durable record of a requested money movement. Amounts are
// in the currency minor unit.
type LedgerEntry struct {
	ID                    int64       `json:"id"`
	UserID                int64       `json:"user_id"`
	Type                  EntryType   `json:"type"`
	Amount                int64       `json:"amount"`
	Status                EntryStatus `json:"status"`
	Method                Method      `json:"method"`
	AccountNumber         string      `json:"account_number,omitempty"`
	ReferenceID           string      `json:"reference_id"`
	ProviderTransactionID *string     `json:"provider_transaction_id"`
	Currency              string      `json:"currency"`
	AdminNote             string      `json:"admin_note,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
	VerifiedAt            *time.Time  `json:"verified_at,omitempty"`
}

// ProviderTxID returns the linked provider transaction id or "".
func (e *LedgerEntry) ProviderTxID() string {
	if e.ProviderTransactionID == nil {
		return ""
	}
	return *e.ProviderTransactionID
}

// TransitionFields are the optional columns written together with a status
// change. Nil fields are left untouched.
type TransitionFields struct {
	ProviderTransactionID *string
	AdminNote             *string
	VerifiedAt            *time.Time
}

// DepositRequest asks the coordinator to settle a deposit intent.
type DepositRequest struct {
	UserID                int64
	ProviderTransactionID string
	ReferenceID           string
}

type DepositResult struct {
	Entry            *LedgerEntry
	Balance          int64
	AlreadyProcessed bool
}

type DepositIntent struct {
	Entry     *LedgerEntry
	PublicKey string
	Sandbox   bool
}

type WithdrawalRequest struct {
	UserID          int64
	Amount          int64
	PhoneNumber     string
	ClientRequestID string
}

type WithdrawalResult struct {
	Entry      *LedgerEntry
	Balance    int64
	Idempotent bool
}

// AdminActionResult reports the outcome of an approve or reject call.
// Applied is false when the entry had already left PENDING.
type AdminActionResult struct {
	Entry   *LedgerEntry
	Applied bool
	Message string
	Balance *int64
}
