package postgres

import (
	"context"
	"errors"
	"fmt"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetBalance get the current balance for a user
func (r *UserRepositoryImpl) GetBalance(ctx context.Context, userID int64, tx pgx.Tx) (int64, error) {
	query := `SELECT balance FROM users WHERE id = $1`

	var balance int64
	err := r.getExecutor(tx).QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// Exists reports whether the user row exists
func (r *UserRepositoryImpl) Exists(ctx context.Context, userID int64, tx pgx.Tx) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.getExecutor(tx).QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

// IncrementBalance adds delta to the user balance
func (r *UserRepositoryImpl) IncrementBalance(ctx context.Context, userID int64, delta int64, tx pgx.Tx) (int64, error) {
	query := `
        UPDATE users
        SET balance = balance + $1, version = version + 1, updated_at = NOW()
        WHERE id = $2
        RETURNING balance`

	var balance int64
	err := r.getExecutor(tx).QueryRow(ctx, query, delta, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrUserNotFound
		}
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if isCheckViolation(err) {
			return 0, model.ErrInsufficientBalance
		}
		return 0, fmt.Errorf("failed to increment balance: %w", err)
	}
	return balance, nil
}

// DecrementIfAtLeast is a single compare-and-decrement statement
func (r *UserRepositoryImpl) DecrementIfAtLeast(ctx context.Context, userID int64, amount int64, tx pgx.Tx) (int64, error) {
	query := `
        UPDATE users
        SET balance = balance - $1, version = version + 1, updated_at = NOW()
        WHERE id = $2 AND balance >= $1
        RETURNING balance`

	var balance int64
	err := r.getExecutor(tx).QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to decrement balance: %w", err)
	}

	exists, err := r.Exists(ctx, userID, tx)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, model.ErrUserNotFound
	}
	return 0, model.ErrInsufficientBalance
}
