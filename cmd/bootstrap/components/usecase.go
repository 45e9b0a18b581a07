package components

import (
	"hotel-guest-manager/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewGuestStore,
	),
)
