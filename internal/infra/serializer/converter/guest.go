package converter

import (
	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/infra/serializer/record"
	"hotel-guest-manager/internal/pkg/errs"
)

func GuestsToDocument(guests []*guest.Guest) record.Document {
	doc := record.Document{
		Guests: make([]record.Guest, 0, len(guests)),
	}
	for _, g := range guests {
		doc.Guests = append(doc.Guests, GuestToRecord(g))
	}
	return doc
}

func GuestToRecord(g *guest.Guest) record.Guest {
	reservations := g.Reservations()
	rec := record.Guest{
		ID:           g.ID(),
		Name:         g.Name(),
		Phone:        g.Phone(),
		Email:        g.Email(),
		Archived:     g.IsArchived(),
		Reservations: make([]record.Reservation, 0, len(reservations)),
	}
	for _, r := range reservations {
		rec.Reservations = append(rec.Reservations, record.Reservation{
			ID:         r.ID(),
			RoomNumber: r.RoomNumber(),
			Cost:       r.Cost(),
			PartySize:  r.PartySize(),
			Paid:       r.IsPaid(),
		})
	}
	return rec
}

func DocumentToGuests(doc record.Document) ([]*guest.Guest, error) {
	guests := make([]*guest.Guest, 0, len(doc.Guests))
	for _, rec := range doc.Guests {
		g, err := RecordToGuest(rec)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, nil
}

func RecordToGuest(rec record.Guest) (*guest.Guest, error) {
	reservations := make([]guest.Reservation, 0, len(rec.Reservations))
	for _, r := range rec.Reservations {
		reservations = append(reservations, guest.NewReservation(r.ID, guest.ReservationDetails{
			RoomNumber: r.RoomNumber,
			Cost:       r.Cost,
			PartySize:  r.PartySize,
			Paid:       r.Paid,
		}))
	}

	g, err := guest.ReconstructGuest(
		rec.ID,
		guest.Details{Name: rec.Name, Phone: rec.Phone, Email: rec.Email},
		rec.Archived,
		reservations,
	)
	if err != nil {
		return nil, errs.Wrap(err, "invalid guest record")
	}
	return g, nil
}
