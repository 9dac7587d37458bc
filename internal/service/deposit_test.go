package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"wallet-settlement/internal/model"
	providermocks "wallet-settlement/mocks/provider"
	"wallet-settlement/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runInTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

func runInSavepoint(ctx context.Context, tx pgx.Tx, fn func(pgx.Tx) error) error {
	return fn(tx)
}

// applyTransition mirrors the conditional update of the ledger store.
func applyTransition(ctx context.Context, e *model.LedgerEntry, expected, next model.EntryStatus, f model.TransitionFields, tx pgx.Tx) error {
	if e.Status != expected {
		return model.ErrStaleStatus
	}
	if err := model.CheckTransition(e.Type, expected, next); err != nil {
		return err
	}
	e.Status = next
	if f.ProviderTransactionID != nil {
		id := *f.ProviderTransactionID
		e.ProviderTransactionID = &id
	}
	if f.AdminNote != nil {
		e.AdminNote = *f.AdminNote
	}
	if f.VerifiedAt != nil {
		at := *f.VerifiedAt
		e.VerifiedAt = &at
	}
	return nil
}

type depositFixture struct {
	users    *mocks.UserRepository
	ledger   *mocks.LedgerRepository
	db       *mocks.DBManager
	verifier *providermocks.Verifier
	svc      DepositService
}

func newDepositFixture(t *testing.T, strictReference bool) *depositFixture {
	f := &depositFixture{
		users:    mocks.NewUserRepository(t),
		ledger:   mocks.NewLedgerRepository(t),
		db:       mocks.NewDBManager(t),
		verifier: providermocks.NewVerifier(t),
	}
	f.svc = NewDepositService(f.users, f.ledger, f.db, f.verifier, DepositConfig{
		Currency:              "XOF",
		RequireReferenceMatch: strictReference,
		PublicKey:             "pk_test",
		Sandbox:               true,
	}, nil, zerolog.Nop())
	return f
}

func pendingDeposit() *model.LedgerEntry {
	return &model.LedgerEntry{
		ID:          10,
		UserID:      1,
		Type:        model.TypeDeposit,
		Amount:      1500,
		Status:      model.StatusPending,
		Method:      model.MethodKkiapay,
		ReferenceID: "REF_1",
		Currency:    "XOF",
	}
}

func successVerification() *model.ProviderVerification {
	return &model.ProviderVerification{
		TransactionID: "KKIA_TX_1",
		Status:        "SUCCESS",
		Amount:        1500,
		HasAmount:     true,
		Currency:      "XOF",
		Reference:     "REF_1",
	}
}

func depositRequest() model.DepositRequest {
	return model.DepositRequest{UserID: 1, ProviderTransactionID: "KKIA_TX_1", ReferenceID: "REF_1"}
}

// expectCredit sets up the crediting transaction for a PENDING intent.
func (f *depositFixture) expectCredit(newBalance int64) {
	f.expectCreditWith(newBalance, runInTx)
}

func (f *depositFixture) expectCreditWith(newBalance int64, tx func(context.Context, func(pgx.Tx) error) error) {
	f.ledger.On("FindSuccessByProviderTxID", mock.Anything, "KKIA_TX_1", int64(10), mock.Anything).Return(nil, nil)
	f.db.On("WithTransaction", mock.Anything, mock.Anything).Return(tx)
	f.ledger.On("FindByIDForUpdate", mock.Anything, int64(10), mock.Anything).Return(pendingDeposit(), nil).Once()
	f.ledger.On("TransitionIfCurrent", mock.Anything, mock.Anything, model.StatusPending, model.StatusPendingBalance, mock.Anything, mock.Anything).Return(applyTransition).Once()
	f.db.On("WithSavepoint", mock.Anything, mock.Anything, mock.Anything).Return(runInSavepoint)
	f.users.On("IncrementBalance", mock.Anything, int64(1), int64(1500), mock.Anything).Return(newBalance, nil).Once()
	f.ledger.On("TransitionIfCurrent", mock.Anything, mock.Anything, model.StatusPendingBalance, model.StatusSuccess, mock.MatchedBy(func(fields model.TransitionFields) bool {
		return fields.ProviderTransactionID != nil && *fields.ProviderTransactionID == "KKIA_TX_1" && fields.VerifiedAt != nil
	}), mock.Anything).Return(applyTransition).Once()
}

// expectRejection asserts the intent moves PENDING -> FAILED with a note
// containing want.
func (f *depositFixture) expectRejection(t *testing.T, want string) {
	f.ledger.On("TransitionIfCurrent", mock.Anything, mock.Anything, model.StatusPending, model.StatusFailed, mock.MatchedBy(func(fields model.TransitionFields) bool {
		return fields.AdminNote != nil && strings.Contains(*fields.AdminNote, want) &&
			fields.ProviderTransactionID != nil && *fields.ProviderTransactionID == "KKIA_TX_1"
	}), mock.Anything).Return(applyTransition).Once()
}

func TestProcessDeposit_VerifiedAndCredited(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil).Once()
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil).Once()
	f.expectCredit(3200)

	result, err := f.svc.ProcessDeposit(ctx, depositRequest())

	require.NoError(t, err)
	assert.False(t, result.AlreadyProcessed)
	assert.Equal(t, int64(3200), result.Balance)
	assert.Equal(t, model.StatusSuccess, result.Entry.Status)
	assert.Equal(t, "KKIA_TX_1", result.Entry.ProviderTxID())
	assert.Equal(t, "Verified with Kkiapay and credited", result.Entry.AdminNote)
	assert.NotNil(t, result.Entry.VerifiedAt)

	// Repeat with the same provider id short-circuits without a second provider call
	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(result.Entry, nil).Once()
	f.users.On("GetBalance", ctx, int64(1), mock.Anything).Return(int64(3200), nil).Once()

	again, err := f.svc.ProcessDeposit(ctx, depositRequest())

	require.NoError(t, err)
	assert.True(t, again.AlreadyProcessed)
	assert.Equal(t, int64(3200), again.Balance)
	assert.Same(t, result.Entry, again.Entry)
	f.verifier.AssertNumberOfCalls(t, "Verify", 1)
	f.users.AssertNumberOfCalls(t, "IncrementBalance", 1)
}

func TestProcessDeposit_TrimsInput(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil)
	f.expectCredit(3200)

	_, err := f.svc.ProcessDeposit(ctx, model.DepositRequest{UserID: 1, ProviderTransactionID: "  KKIA_TX_1 ", ReferenceID: " REF_1\n"})

	require.NoError(t, err)
}

func TestProcessDeposit_MissingIdentifiers(t *testing.T) {
	f := newDepositFixture(t, true)

	_, err := f.svc.ProcessDeposit(context.Background(), model.DepositRequest{UserID: 1, ReferenceID: "REF_1"})
	assert.ErrorIs(t, err, model.ErrMissingTransactionID)

	_, err = f.svc.ProcessDeposit(context.Background(), model.DepositRequest{UserID: 1, ProviderTransactionID: "KKIA_TX_1", ReferenceID: "  "})
	assert.ErrorIs(t, err, model.ErrMissingReferenceID)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestProcessDeposit_UnknownIntent(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(nil, model.ErrEntryNotFound)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrIntentNotFound)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestProcessDeposit_ReferenceOfWithdrawalIsNotAnIntent(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	entry := pendingDeposit()
	entry.Type = model.TypeWithdraw

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(entry, nil)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrIntentNotFound)
}

func TestProcessDeposit_AmountMismatch_MarksFailed(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	v := successVerification()
	v.Amount = 1000

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(v, nil)
	f.expectRejection(t, "Amount mismatch. Expected=1500, Provider=1000")

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrVerificationRejected)
	assert.ErrorIs(t, err, model.ErrValidation)
	f.users.AssertNotCalled(t, "IncrementBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.db.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestProcessDeposit_VerificationRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(v *model.ProviderVerification)
		note   string
	}{
		{"provider failed", func(v *model.ProviderVerification) { v.Status = "FAILED" }, "Provider status: FAILED"},
		{"unknown status", func(v *model.ProviderVerification) { v.Status = "" }, "Provider status: UNKNOWN"},
		{"amount missing", func(v *model.ProviderVerification) { v.HasAmount, v.Amount = false, 0 }, "Provider amount missing/invalid"},
		{"currency missing", func(v *model.ProviderVerification) { v.Currency = "" }, "Provider currency missing"},
		{"currency mismatch", func(v *model.ProviderVerification) { v.Currency = "EUR" }, "Currency mismatch. Expected=XOF, Provider=EUR"},
		{"reference mismatch", func(v *model.ProviderVerification) { v.Reference = "REF_2" }, "Reference mismatch. Expected=REF_1, Provider=REF_2"},
		{"reference missing", func(v *model.ProviderVerification) { v.Reference = "" }, "Provider reference missing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newDepositFixture(t, true)
			v := successVerification()
			tc.mutate(v)

			f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
			f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(v, nil)
			f.expectRejection(t, tc.note)

			_, err := f.svc.ProcessDeposit(ctx, depositRequest())

			assert.ErrorIs(t, err, model.ErrVerificationRejected)
		})
	}
}

func TestProcessDeposit_CurrencyComparedCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	v := successVerification()
	v.Currency = "xof"

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(v, nil)
	f.expectCredit(1500)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	require.NoError(t, err)
}

func TestProcessDeposit_LenientReference_MissingAccepted(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, false)
	v := successVerification()
	v.Reference = ""

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(v, nil)
	f.expectCredit(3200)

	result, err := f.svc.ProcessDeposit(ctx, depositRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(3200), result.Balance)
}

func TestProcessDeposit_LenientReference_MismatchStillRejected(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, false)
	v := successVerification()
	v.Reference = "REF_OTHER"

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(v, nil)
	f.expectRejection(t, "Reference mismatch")

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrVerificationRejected)
}

func TestProcessDeposit_ProviderErrors_LeaveIntentPending(t *testing.T) {
	cases := []struct {
		name string
		v    *model.ProviderVerification
		err  error
		want error
	}{
		{"transient", nil, fmt.Errorf("%w: 503", model.ErrTransientProvider), model.ErrTransientProvider},
		{"not found", nil, model.ErrProviderNotFound, model.ErrProviderNotFound},
		{"rejected request", nil, fmt.Errorf("%w: bad key", model.ErrProviderRejected), model.ErrProviderRejected},
		{"still pending", &model.ProviderVerification{Status: "PENDING"}, nil, model.ErrTransientProvider},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newDepositFixture(t, true)

			f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
			f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(tc.v, tc.err)

			_, err := f.svc.ProcessDeposit(ctx, depositRequest())

			assert.ErrorIs(t, err, tc.want)
			f.ledger.AssertNotCalled(t, "TransitionIfCurrent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.db.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
		})
	}
}

func TestProcessDeposit_ProviderTxClaimedByOtherEntry(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	holder := &model.LedgerEntry{ID: 99, UserID: 2, Type: model.TypeDeposit, Status: model.StatusSuccess}

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil)
	f.ledger.On("FindSuccessByProviderTxID", mock.Anything, "KKIA_TX_1", int64(10), mock.Anything).Return(holder, nil)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrProviderTxClaimed)
	assert.ErrorIs(t, err, model.ErrConflict)
	f.db.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestProcessDeposit_ProviderTxClaimedInsideTransaction(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	holder := &model.LedgerEntry{ID: 99, Status: model.StatusSuccess}

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil)
	f.ledger.On("FindSuccessByProviderTxID", mock.Anything, "KKIA_TX_1", int64(10), mock.Anything).Return(nil, nil).Once()
	f.db.On("WithTransaction", mock.Anything, mock.Anything).Return(runInTx)
	f.ledger.On("FindByIDForUpdate", mock.Anything, int64(10), mock.Anything).Return(pendingDeposit(), nil)
	f.ledger.On("FindSuccessByProviderTxID", mock.Anything, "KKIA_TX_1", int64(10), mock.Anything).Return(holder, nil).Once()

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrProviderTxClaimed)
	f.users.AssertNotCalled(t, "IncrementBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessDeposit_LostUniqueIndexRace(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil)
	f.ledger.On("FindSuccessByProviderTxID", mock.Anything, "KKIA_TX_1", int64(10), mock.Anything).Return(nil, nil)
	f.db.On("WithTransaction", mock.Anything, mock.Anything).Return(runInTx)
	f.ledger.On("FindByIDForUpdate", mock.Anything, int64(10), mock.Anything).Return(pendingDeposit(), nil)
	f.ledger.On("TransitionIfCurrent", mock.Anything, mock.Anything, model.StatusPending, model.StatusPendingBalance, mock.Anything, mock.Anything).Return(applyTransition)
	f.db.On("WithSavepoint", mock.Anything, mock.Anything, mock.Anything).Return(runInSavepoint)
	f.users.On("IncrementBalance", mock.Anything, int64(1), int64(1500), mock.Anything).Return(int64(3200), nil)
	f.ledger.On("TransitionIfCurrent", mock.Anything, mock.Anything, model.StatusPendingBalance, model.StatusSuccess, mock.Anything, mock.Anything).Return(model.ErrProviderTxClaimed)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	// The whole transaction, increment included, rolls back
	assert.ErrorIs(t, err, model.ErrProviderTxClaimed)
}

func TestProcessDeposit_ConcurrentSettlementObservesSuccess(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	settled := pendingDeposit()
	settled.Status = model.StatusSuccess

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil)
	f.ledger.On("FindSuccessByProviderTxID", mock.Anything, "KKIA_TX_1", int64(10), mock.Anything).Return(nil, nil)
	f.db.On("WithTransaction", mock.Anything, mock.Anything).Return(runInTx)
	// Row lock acquired after the concurrent winner committed
	f.ledger.On("FindByIDForUpdate", mock.Anything, int64(10), mock.Anything).Return(settled, nil)
	f.users.On("GetBalance", mock.Anything, int64(1), mock.Anything).Return(int64(3200), nil)

	result, err := f.svc.ProcessDeposit(ctx, depositRequest())

	require.NoError(t, err)
	assert.True(t, result.AlreadyProcessed)
	assert.Equal(t, int64(3200), result.Balance)
	f.users.AssertNotCalled(t, "IncrementBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessDeposit_BalanceUpdateFailure_FreezesEntry(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	var frozen *model.LedgerEntry

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil)
	f.ledger.On("FindSuccessByProviderTxID", mock.Anything, "KKIA_TX_1", int64(10), mock.Anything).Return(nil, nil)
	f.db.On("WithTransaction", mock.Anything, mock.Anything).Return(runInTx)
	f.ledger.On("FindByIDForUpdate", mock.Anything, int64(10), mock.Anything).Return(pendingDeposit(), nil)
	f.ledger.On("TransitionIfCurrent", mock.Anything, mock.Anything, model.StatusPending, model.StatusPendingBalance, mock.Anything, mock.Anything).Return(applyTransition)
	f.db.On("WithSavepoint", mock.Anything, mock.Anything, mock.Anything).Return(runInSavepoint)
	f.users.On("IncrementBalance", mock.Anything, int64(1), int64(1500), mock.Anything).Return(int64(0), errors.New("connection reset"))
	f.ledger.On("TransitionIfCurrent", mock.Anything, mock.Anything, model.StatusPendingBalance, model.StatusFailedBalanceUpdate, mock.MatchedBy(func(fields model.TransitionFields) bool {
		return fields.AdminNote != nil && strings.Contains(*fields.AdminNote, "connection reset")
	}), mock.Anything).Return(applyTransition).Run(func(args mock.Arguments) {
		frozen = args.Get(1).(*model.LedgerEntry)
	})

	result, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, model.ErrTerminalBalanceUpdate)
	require.NotNil(t, frozen)
	assert.Equal(t, model.StatusFailedBalanceUpdate, frozen.Status)
}

func TestProcessDeposit_FrozenEntryNeverRetried(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	entry := pendingDeposit()
	entry.Status = model.StatusFailedBalanceUpdate

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(entry, nil)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrTerminalBalanceUpdate)
	f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestProcessDeposit_AlreadyFailed(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	entry := pendingDeposit()
	entry.Status = model.StatusFailed
	entry.AdminNote = "Amount mismatch. Expected=1500, Provider=1000"

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(entry, nil)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrDepositFailed)
	f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestProcessDeposit_PendingBalanceIsConflict(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	entry := pendingDeposit()
	entry.Status = model.StatusPendingBalance

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(entry, nil)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestProcessDeposit_IntentLinkedToOtherProviderTx(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	entry := pendingDeposit()
	other := "KKIA_TX_OTHER"
	entry.ProviderTransactionID = &other

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(entry, nil)

	_, err := f.svc.ProcessDeposit(ctx, depositRequest())

	assert.ErrorIs(t, err, model.ErrIntentLinked)
	f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestProcessDeposit_CallerCancelledAfterVerification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newDepositFixture(t, true)

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)
	f.verifier.On("Verify", ctx, "KKIA_TX_1").Return(successVerification(), nil).Run(func(mock.Arguments) {
		cancel()
	})
	f.expectCreditWith(3200, func(txCtx context.Context, fn func(pgx.Tx) error) error {
		if err := txCtx.Err(); err != nil {
			return err
		}
		return fn(nil)
	})

	result, err := f.svc.ProcessDeposit(ctx, depositRequest())

	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, result.Entry.Status)
	assert.Error(t, ctx.Err())
}

func TestCreateIntent(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)

	f.users.On("Exists", ctx, int64(42), mock.Anything).Return(true, nil)
	f.ledger.On("CreatePending", ctx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
		return e.UserID == 42 && e.Type == model.TypeDeposit && e.Amount == 1500 &&
			e.Currency == "XOF" && e.AccountNumber == "+22990000000" &&
			strings.HasPrefix(e.ReferenceID, "KKI_") && strings.Contains(e.ReferenceID, "_000042_")
	}), mock.Anything).Return(func(ctx context.Context, e *model.LedgerEntry, tx pgx.Tx) error {
		e.ID = 5
		e.Status = model.StatusPending
		return nil
	})

	intent, err := f.svc.CreateIntent(ctx, 42, 1500, "+229 9000 0000")

	require.NoError(t, err)
	assert.Equal(t, int64(5), intent.Entry.ID)
	assert.Equal(t, model.StatusPending, intent.Entry.Status)
	assert.Equal(t, "pk_test", intent.PublicKey)
	assert.True(t, intent.Sandbox)
}

func TestCreateIntent_Validation(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)

	_, err := f.svc.CreateIntent(ctx, 42, 0, "")
	assert.ErrorIs(t, err, model.ErrInvalidAmount)

	_, err = f.svc.CreateIntent(ctx, 42, 1500, "12ab")
	assert.ErrorIs(t, err, model.ErrInvalidPhoneNumber)

	f.users.On("Exists", ctx, int64(42), mock.Anything).Return(false, nil)
	_, err = f.svc.CreateIntent(ctx, 42, 1500, "")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestCreateIntent_ReferencesAreUnique(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)
	seen := map[string]bool{}

	f.users.On("Exists", ctx, int64(1), mock.Anything).Return(true, nil)
	f.ledger.On("CreatePending", ctx, mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		seen[args.Get(1).(*model.LedgerEntry).ReferenceID] = true
	})

	for i := 0; i < 20; i++ {
		_, err := f.svc.CreateIntent(ctx, 1, 100, "")
		require.NoError(t, err)
	}
	assert.Len(t, seen, 20)
}

func TestGetDepositStatus(t *testing.T) {
	ctx := context.Background()
	f := newDepositFixture(t, true)

	f.ledger.On("FindByReference", ctx, int64(1), "REF_1", mock.Anything).Return(pendingDeposit(), nil)

	entry, err := f.svc.GetDepositStatus(ctx, 1, " REF_1 ")

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, entry.Status)

	_, err = f.svc.GetDepositStatus(ctx, 1, "")
	assert.ErrorIs(t, err, model.ErrMissingReferenceID)
}
