package components

import (
	"campus-rooms/internal/handler"
	"campus-rooms/internal/handler/api"
	"campus-rooms/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewChangeRequestHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
