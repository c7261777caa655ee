package components

import (
	"hotel-reservas/internal/handler"
	"hotel-reservas/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
