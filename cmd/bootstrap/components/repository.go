package components

import (
	"campus-rooms/internal/infra/repository"
	"campus-rooms/internal/infra/uow"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"
	"campus-rooms/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
			fx.As(new(queries.RoomReader)),
		),
		fx.Annotate(
			repository.NewSectionRepository,
			fx.As(new(commands.SectionRepository)),
			fx.As(new(queries.SectionReader)),
		),
		fx.Annotate(
			repository.NewSubjectRepository,
			fx.As(new(commands.SubjectRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReader)),
		),
		fx.Annotate(
			repository.NewChangeRequestRepository,
			fx.As(new(commands.ChangeRequestRepository)),
			fx.As(new(queries.ChangeRequestReader)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReader)),
		),
	),
)
