package components

import (
	"booking-core/internal/handler"
	"booking-core/internal/handler/api"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		func(cmds commands.VerificationCommands, q queries.VerificationQueries, cfg config.Config) *api.VerificationHandler {
			return api.NewVerificationHandler(cmds, q, cfg.Verification.MaxAttempts)
		},
		api.NewScheduleHandler,
		api.NewServiceHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, v *api.VerificationHandler, s *api.ScheduleHandler, svc *api.ServiceHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Verification: v, Schedule: s, Service: svc}
		},
	),
	fx.Invoke(handler.NewRouter),
)
