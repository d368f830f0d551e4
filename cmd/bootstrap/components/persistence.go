package components

import (
	"probook/internal/infra/db"
	"probook/internal/infra/readstore"
	"probook/internal/infra/repository"
	"probook/internal/usecase/commands"
	"probook/internal/usecase/queries"
	"probook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	shared.NewPgxTxRunner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Professional
		fx.Annotate(
			readstore.NewProfessionalReadStore,
			fx.As(new(commands.ProfessionalReads)),
			fx.As(new(queries.ProfessionalSearchStore)),
		),
		// Client
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(commands.ClientReads)),
			fx.As(new(queries.ClientReadStore)),
		),
		// Availability
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(commands.AvailabilityReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Booking
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Idempotency
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
