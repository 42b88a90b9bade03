package bootstrap

import (
	"log/slog"

	"reservation-calendar/internal/infra/backend"
	"reservation-calendar/internal/pkg/clock"
	"reservation-calendar/internal/pkg/config"
	"reservation-calendar/internal/usecase/commands"
	"reservation-calendar/internal/usecase/queries"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		clock.NewRealClock,
		NewBackend,
		func(b commands.Backend) queries.ReferenceSource {
			return b
		},
	),
)

// NewBackend picks the REST client, or the seeded in-memory backend when no
// BACKEND_URL is set.
func NewBackend(cfg config.Config, c clock.Clock, logger *slog.Logger) commands.Backend {
	if cfg.Backend.InMemory() {
		logger.Warn("BACKEND_URL not set, using in-memory backend")
		return backend.NewSeededMemory(cfg.Calendar.StatusDomain, c)
	}
	logger.Info("using reservation backend", "url", cfg.Backend.URL, "timeout", cfg.Backend.Timeout)
	return backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, cfg.Backend.Token)
}
