package usecase

import (
	"context"

	"hotel-guest-manager/internal/domain/guest"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/serializer.go -package=usecasemock

// Serializer persists and restores the whole guest collection. Implementations are
// interchangeable; only the guest/reservation shape crosses this boundary.
type Serializer interface {
	Read(ctx context.Context) ([]*guest.Guest, error)
	Write(ctx context.Context, guests []*guest.Guest) error
}
