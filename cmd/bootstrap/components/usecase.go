package components

import (
	"mentor-availability/internal/pkg/clock"
	"mentor-availability/internal/pkg/config"
	"mentor-availability/internal/usecase/commands"
	"mentor-availability/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *queries.Formatter {
		return queries.NewFormatter(cfg.Engine.DisplayLocation())
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTimeslotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTimeslotQueries,
	),
)
