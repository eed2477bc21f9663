package bootstrap

import (
	"cellar-shop/cmd/bootstrap/components"
	"cellar-shop/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module is the whole service graph; main adds only the HTTP listener.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.IntegrationModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
