package components

import (
	"reservation-calendar/internal/infra/notify"
	"reservation-calendar/internal/infra/readstore"
	"reservation-calendar/internal/pkg/clock"
	"reservation-calendar/internal/pkg/config"
	"reservation-calendar/internal/pkg/metrics"
	"reservation-calendar/internal/usecase"
	"reservation-calendar/internal/usecase/commands"
	"reservation-calendar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseStoreModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Provide(
		usecase.NewCalendarSession,
	),
)

var usecaseStoreModule = fx.Module("usecase/store",
	fx.Provide(
		readstore.NewReservationStore,
		func(s readstore.ReservationStore) readstore.ReservationReader { return s },
		func(s readstore.ReservationStore) commands.ReservationWriter { return s },
		func(cfg config.Config, c clock.Clock) *notify.Feed {
			return notify.NewFeed(cfg.Calendar.NoticeHistory, c)
		},
		func(f *notify.Feed) notify.Sink { return f },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(source queries.ReferenceSource, cfg config.Config) queries.Catalog {
			return queries.NewCatalog(source, cfg.Calendar.StatusDomain)
		},
		func(c queries.Catalog) commands.ReferenceCatalog { return c },
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(m *metrics.Metrics) commands.MutationRecorder { return m },
		commands.NewSyncCoordinator,
	),
)
