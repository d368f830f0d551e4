package components

import (
	"time"

	"probook/internal/domain/booking"
	"probook/internal/pkg/clock"
	"probook/internal/pkg/config"
	"probook/internal/usecase/commands"
	"probook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewHourlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewIdempotencyLedger,
		NewAvailabilityOracle,
		commands.NewOverlapGuard,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewProfessionalQueries,
		queries.NewClientQueries,
	),
)

func NewIdempotencyLedger(repo commands.IdempotencyRepository, clk clock.Clock, cfg config.Config) *commands.IdempotencyLedger {
	return commands.NewIdempotencyLedger(repo, clk, cfg.Booking.IdempotencyTTL)
}

func NewAvailabilityOracle(reads commands.AvailabilityReads, cfg config.Config) (*commands.AvailabilityOracle, error) {
	loc, err := time.LoadLocation(cfg.Booking.AvailabilityTimeZone)
	if err != nil {
		return nil, err
	}
	return commands.NewAvailabilityOracle(reads, loc), nil
}
