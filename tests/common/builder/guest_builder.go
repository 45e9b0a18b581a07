//go:build unit || e2e

package builder

import (
	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/handler/console"
)

type GuestBuilder struct {
	Name         string
	Phone        string
	Email        string
	Archived     bool
	Reservations []guest.Reservation
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Name:  "joe",
		Phone: "123456789",
		Email: "joe@example.com",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *GuestBuilder) BuildDomain() *guest.Guest {
	g := guest.NewGuest(b.BuildDetails())
	for _, r := range b.Reservations {
		g.AddReservation(r)
	}
	if b.Archived {
		g.Archive()
	}
	return g
}

// BuildPersisted rebuilds the guest the way a serializer does, with a fixed id.
func (b *GuestBuilder) BuildPersisted(id int) (*guest.Guest, error) {
	return guest.ReconstructGuest(id, b.BuildDetails(), b.Archived, b.Reservations)
}

func (b *GuestBuilder) BuildDetails() guest.Details {
	return guest.Details{
		Name:  b.Name,
		Phone: b.Phone,
		Email: b.Email,
	}
}

func (b *GuestBuilder) BuildForm() console.GuestForm {
	return console.GuestForm{
		Name:  b.Name,
		Phone: b.Phone,
		Email: b.Email,
	}
}

// Fluent builder methods
func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	b.Name = name
	return b
}

func (b *GuestBuilder) WithPhone(phone string) *GuestBuilder {
	b.Phone = phone
	return b
}

func (b *GuestBuilder) WithEmail(email string) *GuestBuilder {
	b.Email = email
	return b
}

func (b *GuestBuilder) WithReservation(r guest.Reservation) *GuestBuilder {
	b.Reservations = append(b.Reservations, r)
	return b
}

func (b *GuestBuilder) AsArchived() *GuestBuilder {
	b.Archived = true
	return b
}
