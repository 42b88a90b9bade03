package bootstrap

import (
	"reservation-calendar/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
)
