package repository

import (
	"context"
	"time"
	"wallet-settlement/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error

	// WithSavepoint executes fn inside a savepoint of tx. A failing fn rolls
	// back to the savepoint and leaves tx usable.
	WithSavepoint(ctx context.Context, tx pgx.Tx, fn func(pgx.Tx) error) error
}

// UserRepository defines the balance primitives. Balances are never written
// from a value read earlier by the caller.
type UserRepository interface {
	// GetBalance retrieves the current balance for a user, tx may be nil
	GetBalance(ctx context.Context, userID int64, tx pgx.Tx) (int64, error)

	// Exists reports whether the user row exists, tx may be nil
	Exists(ctx context.Context, userID int64, tx pgx.Tx) (bool, error)

	// IncrementBalance adds delta to the balance and returns the new value
	IncrementBalance(ctx context.Context, userID int64, delta int64, tx pgx.Tx) (int64, error)

	// DecrementIfAtLeast subtracts amount only if the balance covers it, in a
	// single statement, and returns the new value
	DecrementIfAtLeast(ctx context.Context, userID int64, amount int64, tx pgx.Tx) (int64, error)
}

// LedgerRepository defines operations for ledger entries
type LedgerRepository interface {
	// CreatePending inserts a new PENDING entry
	CreatePending(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error

	// FindByReference looks up the entry for a client action, tx may be nil
	FindByReference(ctx context.Context, userID int64, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error)

	// FindDepositByReference looks up a deposit by reference alone
	FindDepositByReference(ctx context.Context, referenceID string) (*model.LedgerEntry, error)

	// FindByID retrieves an entry by primary key, tx may be nil
	FindByID(ctx context.Context, id int64, tx pgx.Tx) (*model.LedgerEntry, error)

	// FindByIDForUpdate retrieves an entry with a row-level lock (must be in transaction)
	FindByIDForUpdate(ctx context.Context, id int64, tx pgx.Tx) (*model.LedgerEntry, error)

	// FindSuccessByProviderTxID returns the SUCCESS entry other than excludeID
	// that holds providerTxID, or nil
	FindSuccessByProviderTxID(ctx context.Context, providerTxID string, excludeID int64, tx pgx.Tx) (*model.LedgerEntry, error)

	// TransitionIfCurrent moves the entry to next only if its status is still expected
	TransitionIfCurrent(ctx context.Context, entry *model.LedgerEntry, expected, next model.EntryStatus, fields model.TransitionFields, tx pgx.Tx) error

	// ListByUser retrieves paginated entries for a user
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error)

	// ListStuck retrieves FAILED_BALANCE_UPDATE entries and PENDING_BALANCE
	// entries not updated since olderThan
	ListStuck(ctx context.Context, olderThan time.Time, limit int) ([]*model.LedgerEntry, error)

	// CountStuck counts, per status, every entry ListStuck would match
	CountStuck(ctx context.Context, olderThan time.Time) (map[model.EntryStatus]int, error)
}
