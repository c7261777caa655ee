package components

import (
	"hotel-reservas/internal/infra/db"
	"hotel-reservas/internal/infra/readstore"
	"hotel-reservas/internal/infra/uow"
	"hotel-reservas/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(usecase.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(usecase.AdminReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
