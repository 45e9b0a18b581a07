package guest

import (
	"fmt"
	"slices"
	"strings"

	"hotel-guest-manager/internal/pkg/errs"
)

const NoReservationsMessage = "NO RESERVATIONS ADDED"

var (
	ErrInvalidGuestID         = errs.New("guest id must be positive")
	ErrDuplicateReservationID = errs.New("duplicate reservation id")
)

// Details are the contact fields of a guest. Update replaces exactly these.
type Details struct {
	Name  string
	Phone string
	Email string
}

// Guest is the aggregate root. Its reservation set is only mutated through its own methods.
type Guest struct {
	id           int
	name         string
	phone        string
	email        string
	archived     bool
	reservations []Reservation
}

// NewGuest creates an active guest without an identity. The store assigns the id on add.
func NewGuest(details Details) *Guest {
	return &Guest{
		name:  details.Name,
		phone: details.Phone,
		email: details.Email,
	}
}

// ReconstructGuest rebuilds a persisted guest, rejecting a non-positive id or repeated reservation ids.
func ReconstructGuest(id int, details Details, archived bool, reservations []Reservation) (*Guest, error) {
	if id <= 0 {
		return nil, errs.Wrapf(ErrInvalidGuestID, "guest id %d", id)
	}

	g := NewGuest(details)
	g.id = id
	g.archived = archived
	for _, r := range reservations {
		if !g.AddReservation(r) {
			return nil, errs.Wrapf(ErrDuplicateReservationID, "guest %d reservation %d", id, r.ID())
		}
	}
	return g, nil
}

func (g *Guest) ID() int          { return g.id }
func (g *Guest) Name() string     { return g.name }
func (g *Guest) Phone() string    { return g.phone }
func (g *Guest) Email() string    { return g.email }
func (g *Guest) IsArchived() bool { return g.archived }

func (g *Guest) Details() Details {
	return Details{Name: g.name, Phone: g.phone, Email: g.email}
}

// Reservations returns a copy of the reservation set.
func (g *Guest) Reservations() []Reservation {
	return slices.Clone(g.reservations)
}

// WithID returns an independent copy of g carrying id. g itself is left unchanged.
func (g *Guest) WithID(id int) *Guest {
	c := *g
	c.id = id
	c.reservations = slices.Clone(g.reservations)
	return &c
}

func (g *Guest) UpdateDetails(details Details) {
	g.name = details.Name
	g.phone = details.Phone
	g.email = details.Email
}

// Archive reports false when the guest is already archived.
func (g *Guest) Archive() bool {
	if g.archived {
		return false
	}
	g.archived = true
	return true
}

// Unarchive reports false when the guest is already active.
func (g *Guest) Unarchive() bool {
	if !g.archived {
		return false
	}
	g.archived = false
	return true
}

// AddReservation never overwrites: an existing id makes it return false.
func (g *Guest) AddReservation(r Reservation) bool {
	if g.indexOf(r.ID()) >= 0 {
		return false
	}
	g.reservations = append(g.reservations, r)
	return true
}

func (g *Guest) FindReservation(id int) (Reservation, bool) {
	i := g.indexOf(id)
	if i < 0 {
		return Reservation{}, false
	}
	return g.reservations[i], true
}

// UpdateReservation replaces every field except the id.
func (g *Guest) UpdateReservation(id int, details ReservationDetails) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}
	g.reservations[i] = g.reservations[i].withDetails(details)
	return true
}

func (g *Guest) DeleteReservation(id int) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}
	g.reservations = slices.Delete(g.reservations, i, i+1)
	return true
}

func (g *Guest) ReservationCount() int {
	return len(g.reservations)
}

func (g *Guest) ListReservations() string {
	if len(g.reservations) == 0 {
		return "\t" + NoReservationsMessage
	}
	lines := make([]string, 0, len(g.reservations))
	for _, r := range g.reservations {
		lines = append(lines, "\t"+r.String())
	}
	return strings.Join(lines, "\n")
}

func (g *Guest) String() string {
	return fmt.Sprintf("id %d: name %s, Phone(%s), Email(%s), Archived(%c)\n%s",
		g.id, g.name, g.phone, g.email, yesNo(g.archived), g.ListReservations())
}

func (g *Guest) indexOf(reservationID int) int {
	return slices.IndexFunc(g.reservations, func(r Reservation) bool {
		return r.ID() == reservationID
	})
}
