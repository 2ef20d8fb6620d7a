package components

import (
	"go.uber.org/fx"

	"parkhub/internal/handler"
	"parkhub/internal/handler/api"
	"parkhub/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEntryHandler,
		api.NewLotHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
