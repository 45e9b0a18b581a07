package components

import (
	"log/slog"
	"os"

	"hotel-guest-manager/internal/handler/console"
	"hotel-guest-manager/internal/pkg/config"
	"hotel-guest-manager/internal/usecase"

	"go.uber.org/fx"
)

var ConsoleModule = fx.Module("console",
	fx.Provide(
		NewConsole,
	),
)

func NewConsole(store *usecase.GuestStore, cfg config.StorageConfig, logger *slog.Logger) *console.Console {
	return console.NewConsole(store, os.Stdin, os.Stdout, logger, console.Options{
		AutoLoad: cfg.AutoLoad,
	})
}
