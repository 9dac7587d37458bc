package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// rollback and read the winning entry outside tx
var errDuplicateInsertRace = errors.New("duplicate withdrawal insert race")

const withdrawalReferencePrefix = "WREQ_"

type WithdrawalServiceImpl struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	dbManager  repository.DBManager
	currency   string
	metrics    *metrics.Metrics
	logger     zerolog.Logger
	now        func() time.Time
}

func NewWithdrawalService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	currency string,
	m *metrics.Metrics,
	logger zerolog.Logger,
) WithdrawalService {
	return &WithdrawalServiceImpl{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		dbManager:  dbManager,
		currency:   strings.ToUpper(strings.TrimSpace(currency)),
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalResult, error) {
	// Validate inputs early, before transaction and locks
	if req.Amount <= 0 {
		return nil, s.fail("rejected", fmt.Errorf("%w: amount must be greater than 0", model.ErrInvalidAmount))
	}
	phone, err := normalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		return nil, s.fail("rejected", err)
	}

	clientID := strings.TrimSpace(req.ClientRequestID)
	var ref string
	if clientID != "" {
		if err := validateRequestID(clientID); err != nil {
			return nil, s.fail("rejected", err)
		}
		ref = withdrawalReferencePrefix + clientID

		existing, err := s.existing(ctx, req.UserID, ref)
		if err != nil || existing != nil {
			return existing, err
		}
	} else {
		ref = newReferenceID("KKO", req.UserID, s.now())
	}

	var result *model.WithdrawalResult
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		balance, err := s.userRepo.DecrementIfAtLeast(ctx, req.UserID, req.Amount, tx)
		if err != nil {
			return fmt.Errorf("debit balance: %w", err)
		}

		entry := &model.LedgerEntry{
			UserID:        req.UserID,
			Type:          model.TypeWithdraw,
			Amount:        req.Amount,
			Method:        model.MethodKkiapay,
			AccountNumber: phone,
			ReferenceID:   ref,
			Currency:      s.currency,
			AdminNote:     "Withdrawal requested",
		}
		if err := s.ledgerRepo.CreatePending(ctx, entry, tx); err != nil {
			if errors.Is(err, model.ErrDuplicateReference) {
				// Another request inserted the same reference, rollback the debit
				return errDuplicateInsertRace
			}
			return fmt.Errorf("create withdrawal entry: %w", err)
		}

		result = &model.WithdrawalResult{Entry: entry, Balance: balance}
		return nil
	})

	if errors.Is(err, errDuplicateInsertRace) {
		existing, getErr := s.existing(ctx, req.UserID, ref)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, fmt.Errorf("withdrawal %s vanished after duplicate insert", ref)
		}
		return existing, nil
	}
	if err != nil {
		if errors.Is(err, model.ErrInsufficientBalance) {
			s.logger.Info().Int64("user_id", req.UserID).Int64("amount", req.Amount).Msg("withdrawal rejected: insufficient balance")
			return nil, s.fail("insufficient_balance", model.ErrInsufficientBalance)
		}
		return nil, s.fail(errorResult(err), err)
	}

	s.metrics.Withdrawal("created")
	s.logger.Info().
		Int64("user_id", req.UserID).
		Str("reference_id", ref).
		Int64("amount", req.Amount).
		Int64("new_balance", result.Balance).
		Msg("withdrawal requested")
	return result, nil
}

// existing returns the already recorded withdrawal for ref, or nil.
func (s *WithdrawalServiceImpl) existing(ctx context.Context, userID int64, ref string) (*model.WithdrawalResult, error) {
	entry, err := s.ledgerRepo.FindByReference(ctx, userID, ref, nil)
	if errors.Is(err, model.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	if entry.Type != model.TypeWithdraw {
		return nil, fmt.Errorf("%w: reference %s belongs to a %s entry", model.ErrConflict, ref, entry.Type)
	}

	balance, err := s.userRepo.GetBalance(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	s.metrics.Withdrawal("idempotent")
	s.logger.Info().Int64("user_id", userID).Str("reference_id", ref).Str("status", entry.Status.String()).Msg("withdrawal already requested")
	return &model.WithdrawalResult{Entry: entry, Balance: balance, Idempotent: true}, nil
}

func (s *WithdrawalServiceImpl) Approve(ctx context.Context, entryID int64) (*model.AdminActionResult, error) {
	entry, err := s.withdrawal(ctx, entryID, nil, false)
	if err != nil {
		return nil, s.adminFail("approve", err)
	}

	if entry.Status == model.StatusPending {
		now := s.now()
		note := "Withdrawal approved"
		err = s.ledgerRepo.TransitionIfCurrent(ctx, entry, model.StatusPending, model.StatusSuccess, model.TransitionFields{
			AdminNote:  &note,
			VerifiedAt: &now,
		}, nil)
		if err == nil {
			s.metrics.AdminAction("approve", "applied")
			s.logger.Info().Int64("entry_id", entryID).Int64("user_id", entry.UserID).Int64("amount", entry.Amount).Msg("withdrawal approved")
			return &model.AdminActionResult{Entry: entry, Applied: true, Message: "Withdrawal approved"}, nil
		}
		if !errors.Is(err, model.ErrStaleStatus) {
			return nil, s.adminFail("approve", fmt.Errorf("approve withdrawal: %w", err))
		}
		// Someone else moved it first, report what it became
		if entry, err = s.withdrawal(ctx, entryID, nil, false); err != nil {
			return nil, s.adminFail("approve", err)
		}
	}

	msg := "Withdrawal already processed"
	if entry.Status == model.StatusSuccess {
		msg = "Withdrawal already approved"
	}
	s.metrics.AdminAction("approve", "noop")
	return &model.AdminActionResult{Entry: entry, Message: msg}, nil
}

// Reject refunds and fails the withdrawal in one transaction. The status is
// re-read under a row lock so the refund applies at most once.
func (s *WithdrawalServiceImpl) Reject(ctx context.Context, entryID int64, reason string) (*model.AdminActionResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, s.adminFail("reject", fmt.Errorf("%w: rejection reason is required", model.ErrValidation))
	}

	var result *model.AdminActionResult
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		entry, err := s.withdrawal(ctx, entryID, tx, true)
		if err != nil {
			return err
		}

		if entry.Status != model.StatusPending {
			msg := "Withdrawal already processed"
			if entry.Status == model.StatusFailed {
				msg = "Withdrawal already rejected"
			}
			result = &model.AdminActionResult{Entry: entry, Message: msg}
			return nil
		}

		balance, err := s.userRepo.IncrementBalance(ctx, entry.UserID, entry.Amount, tx)
		if err != nil {
			return fmt.Errorf("refund balance: %w", err)
		}

		err = s.ledgerRepo.TransitionIfCurrent(ctx, entry, model.StatusPending, model.StatusFailed, model.TransitionFields{
			AdminNote: &reason,
		}, tx)
		if err != nil {
			return fmt.Errorf("reject withdrawal: %w", err)
		}

		result = &model.AdminActionResult{
			Entry:   entry,
			Applied: true,
			Message: "Withdrawal rejected and balance refunded",
			Balance: &balance,
		}
		return nil
	})
	if err != nil {
		return nil, s.adminFail("reject", err)
	}

	if !result.Applied {
		s.metrics.AdminAction("reject", "noop")
		s.logger.Info().Int64("entry_id", entryID).Str("status", result.Entry.Status.String()).Msg("withdrawal reject ignored")
		return result, nil
	}

	s.metrics.AdminAction("reject", "applied")
	s.logger.Info().
		Int64("entry_id", entryID).
		Int64("user_id", result.Entry.UserID).
		Int64("refunded", result.Entry.Amount).
		Int64("new_balance", *result.Balance).
		Str("reason", reason).
		Msg("withdrawal rejected and balance refunded")
	return result, nil
}

// withdrawal loads the entry and checks it is a withdrawal. With lock set the
// row stays locked until tx ends.
func (s *WithdrawalServiceImpl) withdrawal(ctx context.Context, entryID int64, tx pgx.Tx, lock bool) (*model.LedgerEntry, error) {
	var (
		entry *model.LedgerEntry
		err   error
	)
	if lock {
		entry, err = s.ledgerRepo.FindByIDForUpdate(ctx, entryID, tx)
	} else {
		entry, err = s.ledgerRepo.FindByID(ctx, entryID, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get withdrawal %d: %w", entryID, err)
	}
	if entry.Type != model.TypeWithdraw {
		return nil, model.ErrNotWithdrawal
	}
	return entry, nil
}

func (s *WithdrawalServiceImpl) fail(result string, err error) error {
	s.metrics.Withdrawal(result)
	return err
}

func (s *WithdrawalServiceImpl) adminFail(action string, err error) error {
	s.metrics.AdminAction(action, errorResult(err))
	return err
}
