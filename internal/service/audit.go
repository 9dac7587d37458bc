package service

import (
	"context"
	"fmt"
	"time"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/repository"

	"github.com/rs/zerolog"
)

type AuditServiceImpl struct {
	ledgerRepo          repository.LedgerRepository
	pendingBalanceAfter time.Duration
	batchSize           int
	metrics             *metrics.Metrics
	logger              zerolog.Logger
	now                 func() time.Time
}

func NewAuditService(
	ledgerRepo repository.LedgerRepository,
	pendingBalanceAfter time.Duration,
	batchSize int,
	m *metrics.Metrics,
	logger zerolog.Logger,
) AuditService {
	return &AuditServiceImpl{
		ledgerRepo:          ledgerRepo,
		pendingBalanceAfter: pendingBalanceAfter,
		batchSize:           batchSize,
		metrics:             m,
		logger:              logger,
		now:                 time.Now,
	}
}

// ReportStuckEntries surfaces entries an operator has to remediate. It never
// changes them: retrying a balance update could credit twice. The gauge and
// the returned total cover every stuck entry; at most batchSize are logged.
func (s *AuditServiceImpl) ReportStuckEntries(ctx context.Context) (int, error) {
	olderThan := s.now().Add(-s.pendingBalanceAfter)

	counts, err := s.ledgerRepo.CountStuck(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("count stuck entries: %w", err)
	}
	total := 0
	for _, status := range []model.EntryStatus{model.StatusFailedBalanceUpdate, model.StatusPendingBalance} {
		s.metrics.SetStuckEntries(status.String(), counts[status])
		total += counts[status]
	}
	if total == 0 {
		s.logger.Debug().Msg("no stuck ledger entries")
		return 0, nil
	}

	entries, err := s.ledgerRepo.ListStuck(ctx, olderThan, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list stuck entries: %w", err)
	}
	for _, e := range entries {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		s.logger.Error().
			Int64("entry_id", e.ID).
			Int64("user_id", e.UserID).
			Str("type", e.Type.String()).
			Str("status", e.Status.String()).
			Int64("amount", e.Amount).
			Str("reference_id", e.ReferenceID).
			Str("provider_transaction_id", e.ProviderTxID()).
			Time("updated_at", e.UpdatedAt).
			Msg("ledger entry requires operator remediation")
	}

	s.logger.Warn().
		Int("count", total).
		Int("logged", len(entries)).
		Msg("settlement audit found stuck entries")
	return total, nil
}
