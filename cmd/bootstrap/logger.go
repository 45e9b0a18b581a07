package bootstrap

import (
	"log/slog"

	"hotel-guest-manager/internal/pkg/config"
	"hotel-guest-manager/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.LogConfig) *slog.Logger {
	l := logger.New(cfg)
	slog.SetDefault(l)
	return l
}
