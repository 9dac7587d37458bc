package service

import (
	"context"
	"wallet-settlement/internal/model"
)

// DepositService turns verified provider payments into one-time balance credits
type DepositService interface {
	CreateIntent(ctx context.Context, userID int64, amount int64, phoneNumber string) (*model.DepositIntent, error)
	ProcessDeposit(ctx context.Context, req model.DepositRequest) (*model.DepositResult, error)
	GetDepositStatus(ctx context.Context, userID int64, referenceID string) (*model.LedgerEntry, error)
}

// WithdrawalService debits balances for payouts and handles the administrative outcome
type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalResult, error)

	// Approve marks a PENDING withdrawal as paid out
	Approve(ctx context.Context, entryID int64) (*model.AdminActionResult, error)

	// Reject refunds a PENDING withdrawal and marks it FAILED
	Reject(ctx context.Context, entryID int64, reason string) (*model.AdminActionResult, error)
}

// WebhookService authenticates provider push events and routes them to deposit settlement
type WebhookService interface {
	Handle(ctx context.Context, body []byte, signature string) (*model.WebhookResponse, error)
}

// AccountService exposes read-only balance and history queries
type AccountService interface {
	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error)
}

// AuditService reports ledger entries that need operator remediation
type AuditService interface {
	// ReportStuckEntries logs and counts entries frozen or stuck mid-settlement
	ReportStuckEntries(ctx context.Context) (int, error)
}
