package worker

import (
	"context"
	"sync"
	"time"
	"wallet-settlement/internal/service"

	"github.com/rs/zerolog"
)

// AuditWorker periodically reports ledger entries stuck mid-settlement. It
// only observes: remediation is an operator decision.
type AuditWorker struct {
	service  service.AuditService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewAuditWorker(svc service.AuditService, interval time.Duration, logger zerolog.Logger) *AuditWorker {
	return &AuditWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *AuditWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Settlement audit worker started")

		// First pass right away so frozen entries surface on deploy
		w.run(ctx)

		for {
			select {
			case <-ticker.C:
				w.run(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Settlement audit worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Settlement audit worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *AuditWorker) run(ctx context.Context) {
	w.logger.Debug().Msg("Running settlement audit")
	n, err := w.service.ReportStuckEntries(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to run settlement audit")
		return
	}
	if n > 0 {
		w.logger.Warn().Int("stuck_entries", n).Msg("Settlement audit completed with findings")
	}
}

func (w *AuditWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
