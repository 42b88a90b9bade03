package components

import (
	"reservation-calendar/internal/handler"
	"reservation-calendar/internal/handler/api"
	"reservation-calendar/internal/infra/notify"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(f *notify.Feed) api.NoticeReader { return f },
		api.NewCalendarHandler,
		api.NewEditorHandler,
	),
	fx.Invoke(handler.NewRouter),
)
