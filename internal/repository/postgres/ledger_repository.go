package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

const ledgerColumns = `id, user_id, type, amount, status, method, COALESCE(account_number, ''), reference_id,
        provider_transaction_id, currency, COALESCE(admin_note, ''), created_at, updated_at, verified_at`

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanEntry(row pgx.Row) (*model.LedgerEntry, error) {
	e := &model.LedgerEntry{}
	err := row.Scan(&e.ID, &e.UserID, &e.Type, &e.Amount, &e.Status, &e.Method, &e.AccountNumber, &e.ReferenceID,
		&e.ProviderTransactionID, &e.Currency, &e.AdminNote, &e.CreatedAt, &e.UpdatedAt, &e.VerifiedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func collectEntries(rows pgx.Rows) ([]*model.LedgerEntry, error) {
	defer rows.Close()

	var entries []*model.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}
	return entries, nil
}

// CreatePending inserts a new PENDING entry
func (r *LedgerRepositoryImpl) CreatePending(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_entries (user_id, type, amount, status, method, account_number, reference_id, currency, admin_note)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NULLIF($9, ''))
        RETURNING id, status, created_at, updated_at`

	err := r.getExecutor(tx).QueryRow(ctx, query,
		entry.UserID, entry.Type, entry.Amount, model.StatusPending, entry.Method,
		entry.AccountNumber, entry.ReferenceID, entry.Currency, entry.AdminNote,
	).Scan(&entry.ID, &entry.Status, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateReference
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// FindByReference looks up an entry by its idempotency key
func (r *LedgerRepositoryImpl) FindByReference(ctx context.Context, userID int64, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE user_id = $1 AND reference_id = $2`

	e, err := scanEntry(r.getExecutor(tx).QueryRow(ctx, query, userID, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry by reference: %w", err)
	}
	return e, nil
}

// FindDepositByReference looks up a deposit by reference across all users
func (r *LedgerRepositoryImpl) FindDepositByReference(ctx context.Context, referenceID string) (*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
        FROM ledger_entries
        WHERE reference_id = $1 AND type = $2
        ORDER BY id
        LIMIT 2`

	rows, err := r.pool.Query(ctx, query, referenceID, model.TypeDeposit)
	if err != nil {
		return nil, fmt.Errorf("failed to query deposit by reference: %w", err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}

	switch len(entries) {
	case 0:
		return nil, model.ErrIntentNotFound
	case 1:
		return entries[0], nil
	default:
		return nil, model.ErrAmbiguousReference
	}
}

// FindByID retrieves an entry by id
func (r *LedgerRepositoryImpl) FindByID(ctx context.Context, id int64, tx pgx.Tx) (*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`

	e, err := scanEntry(r.getExecutor(tx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return e, nil
}

// FindByIDForUpdate retrieves an entry with a row-level lock
func (r *LedgerRepositoryImpl) FindByIDForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1 FOR UPDATE`

	e, err := scanEntry(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry for update: %w", err)
	}
	return e, nil
}

// FindSuccessByProviderTxID returns another SUCCESS entry holding the provider id
func (r *LedgerRepositoryImpl) FindSuccessByProviderTxID(ctx context.Context, providerTxID string, excludeID int64, tx pgx.Tx) (*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
        FROM ledger_entries
        WHERE provider_transaction_id = $1 AND status = $2 AND id <> $3`

	e, err := scanEntry(r.getExecutor(tx).QueryRow(ctx, query, providerTxID, model.StatusSuccess, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger entry by provider transaction: %w", err)
	}
	return e, nil
}

// TransitionIfCurrent is a conditional status update. The entry is refreshed
// from the updated row on success.
func (r *LedgerRepositoryImpl) TransitionIfCurrent(ctx context.Context, entry *model.LedgerEntry, expected, next model.EntryStatus, fields model.TransitionFields, tx pgx.Tx) error {
	if err := model.CheckTransition(entry.Type, expected, next); err != nil {
		return err
	}

	query := `
        UPDATE ledger_entries
        SET status = $1,
            provider_transaction_id = COALESCE($2, provider_transaction_id),
            admin_note = COALESCE($3, admin_note),
            verified_at = COALESCE($4, verified_at),
            updated_at = NOW()
        WHERE id = $5
          AND status = $6
          AND type = $7
        RETURNING ` + ledgerColumns

	updated, err := scanEntry(r.getExecutor(tx).QueryRow(ctx, query,
		next, fields.ProviderTransactionID, fields.AdminNote, fields.VerifiedAt,
		entry.ID, expected, entry.Type,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: entry %d is no longer %s", model.ErrStaleStatus, entry.ID, expected)
		}
		// ux_ledger_entries_provider_tx_success
		if isUniqueViolation(err) {
			return model.ErrProviderTxClaimed
		}
		return fmt.Errorf("failed to transition ledger entry: %w", err)
	}

	*entry = *updated
	return nil
}

// ListByUser retrieves paginated entries for a user
func (r *LedgerRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
        FROM ledger_entries WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	return collectEntries(rows)
}

// ListStuck retrieves entries that need operator attention
func (r *LedgerRepositoryImpl) ListStuck(ctx context.Context, olderThan time.Time, limit int) ([]*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
        FROM ledger_entries
        WHERE status = $1
           OR (status = $2 AND updated_at < $3)
        ORDER BY updated_at
        LIMIT $4`

	rows, err := r.pool.Query(ctx, query, model.StatusFailedBalanceUpdate, model.StatusPendingBalance, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stuck ledger entries: %w", err)
	}
	return collectEntries(rows)
}

// CountStuck totals stuck entries per status without a row limit
func (r *LedgerRepositoryImpl) CountStuck(ctx context.Context, olderThan time.Time) (map[model.EntryStatus]int, error) {
	query := `SELECT status, COUNT(*)
        FROM ledger_entries
        WHERE status = $1
           OR (status = $2 AND updated_at < $3)
        GROUP BY status`

	rows, err := r.pool.Query(ctx, query, model.StatusFailedBalanceUpdate, model.StatusPendingBalance, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to count stuck ledger entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.EntryStatus]int)
	for rows.Next() {
		var status model.EntryStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan stuck entry count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count stuck ledger entries: %w", err)
	}
	return counts, nil
}
