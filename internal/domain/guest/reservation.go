package guest

import "fmt"

// ReservationDetails holds the mutable part of a reservation.
type ReservationDetails struct {
	RoomNumber int
	Cost       int
	PartySize  int
	Paid       bool
}

// Reservation is a booking owned by exactly one Guest. Its id is unique within that guest only.
type Reservation struct {
	id         int
	roomNumber int
	cost       int
	partySize  int
	paid       bool
}

func NewReservation(id int, details ReservationDetails) Reservation {
	return Reservation{
		id:         id,
		roomNumber: details.RoomNumber,
		cost:       details.Cost,
		partySize:  details.PartySize,
		paid:       details.Paid,
	}
}

func (r Reservation) ID() int         { return r.id }
func (r Reservation) RoomNumber() int { return r.roomNumber }
func (r Reservation) Cost() int       { return r.cost }
func (r Reservation) PartySize() int  { return r.partySize }
func (r Reservation) IsPaid() bool    { return r.paid }

func (r Reservation) Details() ReservationDetails {
	return ReservationDetails{
		RoomNumber: r.roomNumber,
		Cost:       r.cost,
		PartySize:  r.partySize,
		Paid:       r.paid,
	}
}

func (r Reservation) String() string {
	return fmt.Sprintf("Reservation %d: Room(%d), Cost(%d), People(%d), Paid(%c)",
		r.id, r.roomNumber, r.cost, r.partySize, yesNo(r.paid))
}

func (r Reservation) withDetails(details ReservationDetails) Reservation {
	return NewReservation(r.id, details)
}

func yesNo(b bool) rune {
	if b {
		return 'Y'
	}
	return 'N'
}
