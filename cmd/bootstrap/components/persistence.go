package components

import (
	"log/slog"

	"hotel-guest-manager/internal/infra/serializer"
	"hotel-guest-manager/internal/pkg/clock"
	"hotel-guest-manager/internal/pkg/config"
	"hotel-guest-manager/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewSystem,
		fx.Annotate(
			NewSerializer,
			fx.As(new(usecase.Serializer)),
		),
	),
)

func NewSerializer(cfg config.StorageConfig, clk clock.Clock, logger *slog.Logger) (*serializer.FileSerializer, error) {
	s, err := serializer.NewFileSerializer(cfg, clk, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("guest file configured", slog.String("path", s.Path()), slog.String("format", s.Format()))
	return s, nil
}
