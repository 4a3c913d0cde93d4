package components

import (
	"barberline/internal/handler"
	"barberline/internal/handler/api"
	"barberline/internal/handler/middleware"
	"barberline/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.QueueConfig {
			return cfg.Queue
		},
		api.NewAuthHandler,
		api.NewQueueHandler,
		api.NewBarberHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
