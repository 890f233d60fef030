package bootstrap

import (
	"context"
	"log/slog"

	"oficina-agenda/internal/infra/repository"
	"oficina-agenda/internal/pkg/clock"
	"oficina-agenda/internal/pkg/config"
	"oficina-agenda/internal/sweeper"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(StartSweeper),
)

func NewSweeper(repo *repository.AppointmentRepository, clk clock.Clock, cfg config.Config, logger *slog.Logger) *sweeper.Sweeper {
	return sweeper.New(repo, clk, cfg.Sweep.Interval, logger)
}

func StartSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
