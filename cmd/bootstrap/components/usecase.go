package components

import (
	"time"

	"booking-core/internal/domain/booking"
	"booking-core/internal/domain/cancellation"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/verification"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	func(clock clock.Clock, calc pricing.Calculator) *booking.Services {
		return &booking.Services{
			Clock:      clock,
			Calculator: calc,
		}
	},
	func(cfg config.Config) (cancellation.Policy, error) {
		return cancellation.NewPolicy(cfg.Booking.FreeCancellationWindow, cfg.Booking.LateCancelFeePercent, cfg.Booking.NoShowFeePercent)
	},
	func(cfg config.Config) (*time.Location, error) {
		return cfg.Booking.Location()
	},
	func(cfg config.Config) (verification.Window, error) {
		return verification.NewWindow(cfg.Verification.WindowOpen, cfg.Verification.Grace)
	},
	fx.Annotate(
		func(cfg config.Config) (*verification.RandomGenerator, error) {
			return verification.NewRandomGenerator(cfg.Verification.CodeLength)
		},
		fx.As(new(verification.Generator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewVerificationCommands,
		commands.NewScheduleCommands,
		commands.NewServiceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewVerificationQueries,
		queries.NewScheduleQueries,
		queries.NewServiceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
