package components

import (
	"barberline/internal/infra/db"
	"barberline/internal/infra/readstore"
	"barberline/internal/infra/uow"
	"barberline/internal/usecase/commands"
	"barberline/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side goes through the unit of work; only read stores are
		// bound here.
		uow.NewPostgresUoW,
		// Queue
		fx.Annotate(
			readstore.NewQueueReadStore,
			fx.As(new(queries.QueueReadStore)),
		),
		// Barber
		fx.Annotate(
			readstore.NewBarberReadStore,
			fx.As(new(queries.BarberReadStore)),
			fx.As(new(queries.BarberExistsStore)),
			fx.As(new(commands.BarberAuthStore)),
		),
		// Customer
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(commands.CustomerAuthStore)),
		),
		// History
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.As(new(queries.HistoryReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
