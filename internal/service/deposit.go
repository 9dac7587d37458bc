package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/provider"
	"wallet-settlement/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// creditTimeout bounds settlement once it is detached from the caller's
// context.
const creditTimeout = 30 * time.Second

type DepositConfig struct {
	Currency              string
	RequireReferenceMatch bool
	PublicKey             string
	Sandbox               bool
}

type DepositServiceImpl struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	dbManager  repository.DBManager
	verifier   provider.Verifier
	cfg        DepositConfig
	metrics    *metrics.Metrics
	logger     zerolog.Logger
	now        func() time.Time
}

func NewDepositService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	verifier provider.Verifier,
	cfg DepositConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) DepositService {
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	return &DepositServiceImpl{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		dbManager:  dbManager,
		verifier:   verifier,
		cfg:        cfg,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *DepositServiceImpl) CreateIntent(ctx context.Context, userID int64, amount int64, phoneNumber string) (*model.DepositIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", model.ErrInvalidAmount)
	}

	var phone string
	if strings.TrimSpace(phoneNumber) != "" {
		var err error
		if phone, err = normalizePhoneNumber(phoneNumber); err != nil {
			return nil, err
		}
	}

	exists, err := s.userRepo.Exists(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	entry := &model.LedgerEntry{
		UserID:        userID,
		Type:          model.TypeDeposit,
		Amount:        amount,
		Method:        model.MethodKkiapay,
		AccountNumber: phone,
		ReferenceID:   newReferenceID("KKI", userID, s.now()),
		Currency:      s.cfg.Currency,
		AdminNote:     "Deposit intent created",
	}
	if err := s.ledgerRepo.CreatePending(ctx, entry, nil); err != nil {
		return nil, fmt.Errorf("create deposit intent: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Str("reference_id", entry.ReferenceID).
		Int64("amount", amount).
		Msg("deposit intent created")

	return &model.DepositIntent{
		Entry:     entry,
		PublicKey: s.cfg.PublicKey,
		Sandbox:   s.cfg.Sandbox,
	}, nil
}

func (s *DepositServiceImpl) GetDepositStatus(ctx context.Context, userID int64, referenceID string) (*model.LedgerEntry, error) {
	entry, err := s.findIntent(ctx, userID, strings.TrimSpace(referenceID))
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ProcessDeposit settles a deposit intent against the provider's view of the
// payment. Retries with the same reference return the prior outcome.
func (s *DepositServiceImpl) ProcessDeposit(ctx context.Context, req model.DepositRequest) (*model.DepositResult, error) {
	txID := strings.TrimSpace(req.ProviderTransactionID)
	ref := strings.TrimSpace(req.ReferenceID)
	if txID == "" {
		return nil, model.ErrMissingTransactionID
	}
	if ref == "" {
		return nil, model.ErrMissingReferenceID
	}

	intent, err := s.findIntent(ctx, req.UserID, ref)
	if err != nil {
		return nil, err
	}

	switch intent.Status {
	case model.StatusSuccess:
		balance, err := s.userRepo.GetBalance(ctx, req.UserID, nil)
		if err != nil {
			return nil, fmt.Errorf("get balance: %w", err)
		}
		s.metrics.Deposit("already_processed")
		s.logger.Info().Int64("user_id", req.UserID).Str("reference_id", ref).Msg("deposit already processed")
		return &model.DepositResult{Entry: intent, Balance: balance, AlreadyProcessed: true}, nil
	case model.StatusPending:
	default:
		err := unsettleable(intent)
		return nil, s.fail(errorResult(err), err)
	}

	if linked := intent.ProviderTxID(); linked != "" && linked != txID {
		return nil, s.fail("conflict", model.ErrIntentLinked)
	}

	// Verification must finish before anything is written. A transient
	// failure leaves the intent PENDING so the call can be retried.
	v, err := s.verifier.Verify(ctx, txID)
	if err != nil {
		return nil, s.fail(errorResult(err), fmt.Errorf("verify transaction %s: %w", txID, err))
	}

	// The provider has answered, so the outcome is recorded even if the
	// caller goes away from here on.
	settleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), creditTimeout)
	defer cancel()

	if err := s.checkVerification(settleCtx, intent, txID, ref, v); err != nil {
		return nil, err
	}

	dup, err := s.ledgerRepo.FindSuccessByProviderTxID(settleCtx, txID, intent.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("check provider transaction: %w", err)
	}
	if dup != nil {
		s.logger.Warn().
			Str("provider_transaction_id", txID).
			Int64("entry_id", intent.ID).
			Int64("claimed_by", dup.ID).
			Msg("provider transaction already credited to another entry")
		return nil, s.fail("conflict", model.ErrProviderTxClaimed)
	}

	return s.credit(settleCtx, intent.ID, req.UserID, txID)
}

func (s *DepositServiceImpl) findIntent(ctx context.Context, userID int64, ref string) (*model.LedgerEntry, error) {
	if ref == "" {
		return nil, model.ErrMissingReferenceID
	}
	intent, err := s.ledgerRepo.FindByReference(ctx, userID, ref, nil)
	if err != nil {
		if errors.Is(err, model.ErrEntryNotFound) {
			return nil, model.ErrIntentNotFound
		}
		return nil, fmt.Errorf("get deposit intent: %w", err)
	}
	if intent.Type != model.TypeDeposit {
		return nil, model.ErrIntentNotFound
	}
	return intent, nil
}

// unsettleable reports why an intent outside PENDING and SUCCESS cannot be
// settled. None of these states is ever retried automatically.
func unsettleable(intent *model.LedgerEntry) error {
	switch intent.Status {
	case model.StatusFailed:
		return fmt.Errorf("%w: %s", model.ErrDepositFailed, intent.AdminNote)
	case model.StatusFailedBalanceUpdate:
		return fmt.Errorf("%w: entry %d", model.ErrTerminalBalanceUpdate, intent.ID)
	default:
		return fmt.Errorf("%w: entry %d is %s", model.ErrConflict, intent.ID, intent.Status)
	}
}

// checkVerification applies every acceptance rule to the provider answer and
// marks the intent FAILED on the first violation.
func (s *DepositServiceImpl) checkVerification(ctx context.Context, intent *model.LedgerEntry, txID, ref string, v *model.ProviderVerification) error {
	switch v.Outcome() {
	case model.OutcomePending:
		return s.fail("transient", fmt.Errorf("%w: payment still %s at provider", model.ErrTransientProvider, v.Status))
	case model.OutcomeFailed:
		status := v.Status
		if status == "" {
			status = "UNKNOWN"
		}
		return s.reject(ctx, intent, txID, fmt.Sprintf("Provider status: %s", status),
			fmt.Sprintf("payment not successful (status: %s)", status))
	}

	if !v.HasAmount {
		return s.reject(ctx, intent, txID, "Provider amount missing/invalid", "provider amount is missing or invalid")
	}
	if v.Amount != intent.Amount {
		return s.reject(ctx, intent, txID,
			fmt.Sprintf("Amount mismatch. Expected=%d, Provider=%d", intent.Amount, v.Amount),
			"provider amount does not match deposit intent amount")
	}

	currency := strings.ToUpper(v.Currency)
	if currency == "" {
		return s.reject(ctx, intent, txID, "Provider currency missing", "provider currency is missing")
	}
	if currency != strings.ToUpper(intent.Currency) {
		return s.reject(ctx, intent, txID,
			fmt.Sprintf("Currency mismatch. Expected=%s, Provider=%s", intent.Currency, currency),
			"provider currency does not match deposit intent currency")
	}

	if v.Reference == "" && s.cfg.RequireReferenceMatch {
		return s.reject(ctx, intent, txID, "Provider reference missing in verification payload",
			"provider reference is missing, verification rejected")
	}
	if v.Reference != "" && v.Reference != ref {
		return s.reject(ctx, intent, txID,
			fmt.Sprintf("Reference mismatch. Expected=%s, Provider=%s", ref, v.Reference),
			"provider reference does not match deposit intent reference")
	}
	return nil
}

// reject moves the intent to FAILED and returns a validation error. The
// balance is never touched.
func (s *DepositServiceImpl) reject(ctx context.Context, intent *model.LedgerEntry, txID, note, reason string) error {
	now := s.now()
	err := s.ledgerRepo.TransitionIfCurrent(ctx, intent, model.StatusPending, model.StatusFailed, model.TransitionFields{
		ProviderTransactionID: &txID,
		AdminNote:             &note,
		VerifiedAt:            &now,
	}, nil)
	if err != nil && !errors.Is(err, model.ErrStaleStatus) {
		return fmt.Errorf("mark deposit failed: %w", err)
	}
	if err != nil {
		s.logger.Warn().Int64("entry_id", intent.ID).Msg("deposit intent changed while rejecting verification")
	}

	s.logger.Warn().
		Int64("user_id", intent.UserID).
		Str("reference_id", intent.ReferenceID).
		Str("provider_transaction_id", txID).
		Str("note", note).
		Msg("deposit verification rejected")
	return s.fail("rejected", fmt.Errorf("%w: %s", model.ErrVerificationRejected, reason))
}

// credit applies PENDING -> PENDING_BALANCE -> SUCCESS and the balance
// increment in one transaction. The entry row lock serialises concurrent
// settlements of the same intent; the SUCCESS-scoped unique index serialises
// settlements of the same provider transaction across intents.
func (s *DepositServiceImpl) credit(ctx context.Context, entryID, userID int64, txID string) (*model.DepositResult, error) {
	var (
		result *model.DepositResult
		incErr error
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		result, incErr = nil, nil

		entry, err := s.ledgerRepo.FindByIDForUpdate(ctx, entryID, tx)
		if err != nil {
			return fmt.Errorf("lock deposit intent: %w", err)
		}

		switch entry.Status {
		case model.StatusSuccess:
			balance, err := s.userRepo.GetBalance(ctx, userID, tx)
			if err != nil {
				return fmt.Errorf("get balance: %w", err)
			}
			result = &model.DepositResult{Entry: entry, Balance: balance, AlreadyProcessed: true}
			return nil
		case model.StatusPending:
		default:
			return unsettleable(entry)
		}

		if linked := entry.ProviderTxID(); linked != "" && linked != txID {
			return model.ErrIntentLinked
		}

		dup, err := s.ledgerRepo.FindSuccessByProviderTxID(ctx, txID, entry.ID, tx)
		if err != nil {
			return fmt.Errorf("check provider transaction: %w", err)
		}
		if dup != nil {
			return model.ErrProviderTxClaimed
		}

		err = s.ledgerRepo.TransitionIfCurrent(ctx, entry, model.StatusPending, model.StatusPendingBalance, model.TransitionFields{
			ProviderTransactionID: &txID,
		}, tx)
		if err != nil {
			return fmt.Errorf("claim deposit: %w", err)
		}

		var balance int64
		incErr = s.dbManager.WithSavepoint(ctx, tx, func(sp pgx.Tx) error {
			var err error
			balance, err = s.userRepo.IncrementBalance(ctx, userID, entry.Amount, sp)
			return err
		})
		if incErr != nil {
			note := fmt.Sprintf("Balance update failed: %v", incErr)
			err = s.ledgerRepo.TransitionIfCurrent(ctx, entry, model.StatusPendingBalance, model.StatusFailedBalanceUpdate, model.TransitionFields{
				AdminNote: &note,
			}, tx)
			if err != nil {
				return fmt.Errorf("freeze deposit after balance failure (%v): %w", incErr, err)
			}
			result = &model.DepositResult{Entry: entry}
			return nil
		}

		now := s.now()
		note := "Verified with Kkiapay and credited"
		err = s.ledgerRepo.TransitionIfCurrent(ctx, entry, model.StatusPendingBalance, model.StatusSuccess, model.TransitionFields{
			ProviderTransactionID: &txID,
			AdminNote:             &note,
			VerifiedAt:            &now,
		}, tx)
		if err != nil {
			return fmt.Errorf("complete deposit: %w", err)
		}

		result = &model.DepositResult{Entry: entry, Balance: balance}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrProviderTxClaimed) {
			s.logger.Warn().Str("provider_transaction_id", txID).Int64("entry_id", entryID).Msg("lost race for provider transaction")
		}
		return nil, s.fail(errorResult(err), err)
	}

	if incErr != nil {
		s.metrics.BalanceUpdateFailed()
		s.logger.Error().
			Err(incErr).
			Int64("entry_id", entryID).
			Int64("user_id", userID).
			Str("provider_transaction_id", txID).
			Msg("deposit frozen in FAILED_BALANCE_UPDATE, operator action required")
		return nil, s.fail("terminal", fmt.Errorf("%w: entry %d: %v", model.ErrTerminalBalanceUpdate, entryID, incErr))
	}

	if result.AlreadyProcessed {
		s.metrics.Deposit("already_processed")
		s.logger.Info().Int64("entry_id", entryID).Msg("deposit settled concurrently, returning prior outcome")
		return result, nil
	}

	s.metrics.Deposit("credited")
	s.logger.Info().
		Int64("user_id", userID).
		Str("reference_id", result.Entry.ReferenceID).
		Str("provider_transaction_id", txID).
		Int64("amount", result.Entry.Amount).
		Int64("new_balance", result.Balance).
		Msg("deposit verified and credited")
	return result, nil
}

func (s *DepositServiceImpl) fail(result string, err error) error {
	s.metrics.Deposit(result)
	return err
}

// errorResult maps an error onto a metrics label.
func errorResult(err error) string {
	switch {
	case errors.Is(err, model.ErrTransientProvider), errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "transient"
	case errors.Is(err, model.ErrTerminalBalanceUpdate):
		return "terminal"
	case errors.Is(err, model.ErrConflict):
		return "conflict"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrValidation):
		return "rejected"
	default:
		return "error"
	}
}

func newReferenceID(prefix string, userID int64, now time.Time) string {
	return fmt.Sprintf("%s_%d_%06d_%s", prefix, now.UnixMilli(), userID%1_000_000, uuid.NewString()[:8])
}
