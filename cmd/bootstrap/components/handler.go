package components

import (
	"mentor-availability/internal/handler"
	"mentor-availability/internal/handler/api"
	"mentor-availability/internal/handler/middleware"
	"mentor-availability/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTimeslotHandler,
		api.NewSessionHandler,
		api.NewAvailabilityHandler,
		handler.NewHandlers,
		newTokenValidator,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func newTokenValidator(s *jwt.Service) middleware.TokenValidator {
	return s
}
