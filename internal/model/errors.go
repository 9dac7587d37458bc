package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services wraps exactly one of these.
var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("conflict")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrTransientProvider     = errors.New("payment provider temporarily unavailable")
	ErrTerminalBalanceUpdate = errors.New("balance update failed, entry requires manual review")
)

var (
	ErrInvalidAmount        = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrInvalidPhoneNumber   = fmt.Errorf("%w: invalid phone number format", ErrValidation)
	ErrInvalidRequestID     = fmt.Errorf("%w: invalid requestId format", ErrValidation)
	ErrMissingTransactionID = fmt.Errorf("%w: transaction id is required", ErrValidation)
	ErrMissingReferenceID   = fmt.Errorf("%w: reference id is required", ErrValidation)
	ErrVerificationRejected = fmt.Errorf("%w: payment verification rejected", ErrValidation)
	ErrProviderRejected     = fmt.Errorf("%w: provider rejected verification request", ErrValidation)
	ErrDepositFailed        = fmt.Errorf("%w: deposit intent already failed", ErrValidation)
	ErrNotWithdrawal        = fmt.Errorf("%w: ledger entry is not a withdrawal", ErrValidation)
	ErrInvalidWebhook       = fmt.Errorf("%w: invalid webhook payload", ErrValidation)

	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrEntryNotFound    = fmt.Errorf("%w: ledger entry not found", ErrNotFound)
	ErrIntentNotFound   = fmt.Errorf("%w: deposit intent not found", ErrNotFound)
	ErrProviderNotFound = fmt.Errorf("%w: transaction not found at provider", ErrNotFound)

	ErrProviderTxClaimed  = fmt.Errorf("%w: provider transaction already credited", ErrConflict)
	ErrIntentLinked       = fmt.Errorf("%w: intent is linked to a different provider transaction", ErrConflict)
	ErrAmbiguousReference = fmt.Errorf("%w: reference matches more than one deposit", ErrConflict)

	ErrInvalidSignature     = fmt.Errorf("%w: invalid webhook signature", ErrUnauthorized)
	ErrMissingSignature     = fmt.Errorf("%w: missing webhook signature", ErrUnauthorized)
	ErrWebhookNotConfigured = errors.New("webhook verification is not configured")
)

// Store-level errors. Services translate these before returning.
var (
	ErrDuplicateReference = errors.New("duplicate reference")
	ErrStaleStatus        = errors.New("ledger entry status changed concurrently")
	ErrIllegalTransition  = errors.New("illegal status transition")
)
