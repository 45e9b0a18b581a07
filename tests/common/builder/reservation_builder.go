//go:build unit || e2e

package builder

import (
	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/handler/console"
)

type ReservationBuilder struct {
	ID         int
	RoomNumber int
	Cost       int
	PartySize  int
	Paid       bool
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         1,
		RoomNumber: 101,
		Cost:       200,
		PartySize:  2,
		Paid:       false,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build() guest.Reservation {
	return guest.NewReservation(b.ID, b.BuildDetails())
}

func (b *ReservationBuilder) BuildDetails() guest.ReservationDetails {
	return guest.ReservationDetails{
		RoomNumber: b.RoomNumber,
		Cost:       b.Cost,
		PartySize:  b.PartySize,
		Paid:       b.Paid,
	}
}

func (b *ReservationBuilder) BuildForm() console.ReservationForm {
	return console.ReservationForm{
		RoomNumber: b.RoomNumber,
		Cost:       b.Cost,
		PartySize:  b.PartySize,
		Paid:       b.Paid,
	}
}

func (b *ReservationBuilder) WithID(id int) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithRoomNumber(room int) *ReservationBuilder {
	b.RoomNumber = room
	return b
}

func (b *ReservationBuilder) WithCost(cost int) *ReservationBuilder {
	b.Cost = cost
	return b
}

func (b *ReservationBuilder) WithPartySize(size int) *ReservationBuilder {
	b.PartySize = size
	return b
}

func (b *ReservationBuilder) AsPaid() *ReservationBuilder {
	b.Paid = true
	return b
}
