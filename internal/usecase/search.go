package usecase

import (
	"fmt"
	"strings"

	"hotel-guest-manager/internal/domain/guest"
)

// ReservationMatch pairs a reservation with the guest that owns it. Reservation ids are
// only unique per guest, so one id can produce several matches.
type ReservationMatch struct {
	Guest       *guest.Guest
	Reservation guest.Reservation
}

func (m ReservationMatch) String() string {
	return fmt.Sprintf("Guest %d (%s): %s", m.Guest.ID(), m.Guest.Name(), m.Reservation)
}

// SearchByID returns at most one guest given id uniqueness; an empty slice means no match.
func (s *GuestStore) SearchByID(id int) []*guest.Guest {
	return s.filter(func(g *guest.Guest) bool {
		return g.ID() == id
	})
}

// SearchByName matches a case-insensitive substring of the guest name.
func (s *GuestStore) SearchByName(substring string) []*guest.Guest {
	needle := strings.ToLower(substring)
	return s.filter(func(g *guest.Guest) bool {
		return strings.Contains(strings.ToLower(g.Name()), needle)
	})
}

// SearchReservationByID scans every guest and returns all matches, in guest insertion order.
func (s *GuestStore) SearchReservationByID(reservationID int) []ReservationMatch {
	var matches []ReservationMatch
	for _, g := range s.guests {
		if r, ok := g.FindReservation(reservationID); ok {
			matches = append(matches, ReservationMatch{Guest: g, Reservation: r})
		}
	}
	return matches
}

func FormatReservationMatches(matches []ReservationMatch) string {
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, m.String())
	}
	return strings.Join(lines, "\n")
}
