package components

import (
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystem,
	func(cfg config.Config) commands.BookingSettings {
		return commands.BookingSettings{
			Currency:       cfg.Booking.Currency,
			FromEmail:      cfg.Booking.FromEmail,
			ReferenceTries: cfg.Booking.ReferenceTries,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAvailabilityUseCase,
		commands.NewBookingUseCase,
		commands.NewBookingAdminUseCase,
		commands.NewCatalogUseCase,
		func(store shared.DraftStore, clk clock.Clock, cfg config.Config) commands.DraftCommands {
			return commands.NewDraftUseCase(store, clk, cfg.Booking.DraftTTL)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
