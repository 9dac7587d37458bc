package worker

import (
	"context"
	"errors"
	"testing"
	"time"
	"wallet-settlement/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

func TestAuditWorker_RunsOnStartAndTicks(t *testing.T) {
	svc := mocks.NewAuditService(t)
	calls := make(chan struct{}, 10)
	svc.On("ReportStuckEntries", mock.Anything).Return(1, nil).Run(func(args mock.Arguments) {
		calls <- struct{}{}
	})

	w := NewAuditWorker(svc, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("audit did not run")
		}
	}
	w.Stop()
}

func TestAuditWorker_ErrorDoesNotStopLoop(t *testing.T) {
	svc := mocks.NewAuditService(t)
	calls := make(chan struct{}, 10)
	svc.On("ReportStuckEntries", mock.Anything).Return(0, errors.New("db down")).Run(func(args mock.Arguments) {
		calls <- struct{}{}
	})

	w := NewAuditWorker(svc, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("audit loop stopped after error")
		}
	}
	w.Stop()
	w.Stop()
}

func TestAuditWorker_StopsOnContextDone(t *testing.T) {
	svc := mocks.NewAuditService(t)
	svc.On("ReportStuckEntries", mock.Anything).Return(0, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	w := NewAuditWorker(svc, time.Hour, zerolog.Nop())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}
