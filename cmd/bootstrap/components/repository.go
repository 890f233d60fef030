package components

import (
	"oficina-agenda/internal/infra/db"
	"oficina-agenda/internal/infra/memstore"
	"oficina-agenda/internal/infra/readstore"
	repo_impl "oficina-agenda/internal/infra/repository"
	"oficina-agenda/internal/usecase"
	"oficina-agenda/internal/usecase/commands"
	"oficina-agenda/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// The sweeper needs the concrete type; commands go through the interface
		repo_impl.NewAppointmentRepository,
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewOperatorRepository,
			fx.As(new(commands.OperatorRepository)),
		),
		fx.Annotate(
			repo_impl.NewWorkshopRepository,
			fx.As(new(commands.WorkshopRepository)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			memstore.NewReminderStore,
			fx.As(new(usecase.ReminderRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
