package components

import (
	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/infra/uow"
	"travel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogViewQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Dashboard
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DashboardViewQueries)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)

// The unit of work builds the write repositories per transaction.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}
