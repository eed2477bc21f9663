package components

import (
	"cellar-shop/internal/domain/order"
	"cellar-shop/internal/pkg/clock"
	"cellar-shop/internal/pkg/config"
	"cellar-shop/internal/usecase"
	"cellar-shop/internal/usecase/commands"
	"cellar-shop/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock) *order.Factory {
		return order.NewFactory(clk, order.RandomIdentifiers{})
	},
	func(cfg config.Config) commands.NotificationSettings {
		return commands.NotificationSettings{OwnerEmail: cfg.Mail.OwnerEmail}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewProductCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewShipmentCommands,
		commands.NewConfirmationRecorder,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
