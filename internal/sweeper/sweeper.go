package sweeper

import (
	"context"
	"log/slog"
	"time"

	"oficina-agenda/internal/pkg/clock"
)

// Store is the write side of the staleness sweep: one set-based conditional
// update, no per-row read-then-write.
type Store interface {
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper reclassifies overdue pendente/confirmado appointments to fora_prazo.
// It runs once at startup and then on a fixed interval. A failed run is logged
// and skipped until the next tick.
type Sweeper struct {
	store    Store
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func New(store Store, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	affected, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("staleness sweep failed, skipping until next tick", "error", err)
		return
	}
	if affected > 0 {
		s.logger.Info("staleness sweep reclassified overdue appointments", "affected", affected)
	}
}

// RunOnce performs a single sweep and reports the number of reclassified
// rows. Idempotent: with no newly-eligible rows it affects zero.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	return s.store.SweepOverdue(ctx, s.clock.Now())
}
