package bootstrap

import (
	"hotel-guest-manager/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.StorageConfig { return cfg.Storage },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)
