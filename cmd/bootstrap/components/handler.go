package components

import (
	"oficina-agenda/internal/handler"
	"oficina-agenda/internal/handler/api"
	"oficina-agenda/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewWorkshopHandler,
		api.NewReminderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
