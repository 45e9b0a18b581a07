package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-guest-manager/cmd/bootstrap"
	"hotel-guest-manager/internal/handler/console"

	"go.uber.org/fx"
)

func startConsole(lc fx.Lifecycle, shutdowner fx.Shutdowner, c *console.Console, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("console started")
			go func() {
				exitCode := 0
				if err := c.Run(ctx); err != nil {
					logger.Error("console stopped with error", "error", err)
					exitCode = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("failed to request shutdown", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			logger.Info("console stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Invoke(
			startConsole,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	os.Exit(sig.ExitCode)
}
