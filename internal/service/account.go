package service

import (
	"context"
	"fmt"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type AccountServiceImpl struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
}

func NewAccountService(userRepo repository.UserRepository, ledgerRepo repository.LedgerRepository) AccountService {
	return &AccountServiceImpl{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
	}
}

func (s *AccountServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &model.BalanceResponse{UserID: userID, Balance: balance}, nil
}

func (s *AccountServiceImpl) ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if entries == nil {
		entries = []*model.LedgerEntry{}
	}
	return entries, nil
}
