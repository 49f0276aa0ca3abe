package components

import (
	"campus-rooms/internal/pkg/clock"
	"campus-rooms/internal/usecase/commands"
	"campus-rooms/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewChangeRequestQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomCommands,
		commands.NewReservationCommands,
		commands.NewChangeRequestCommands,
	),
)
