package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/infra"
	"hotel-guest-manager/internal/pkg/errs"
)

const (
	NoGuestsMessage         = "NO GUESTS STORED"
	NoActiveGuestsMessage   = "NO ACTIVE GUESTS STORED"
	NoArchivedGuestsMessage = "NO ARCHIVED GUESTS STORED"
)

// GuestStore owns the guest collection and the identifier counter.
// Not-found and already-in-state outcomes are reported as false, never as errors.
type GuestStore struct {
	guests     []*guest.Guest
	lastID     int
	serializer Serializer
	logger     *slog.Logger
}

func NewGuestStore(serializer Serializer, logger *slog.Logger) *GuestStore {
	return &GuestStore{
		serializer: serializer,
		logger:     logger,
	}
}

// Add stores a copy of g under the next identifier, whatever id g carried.
// g itself is not retained, so adding the same guest twice yields two distinct records.
func (s *GuestStore) Add(g *guest.Guest) bool {
	if g == nil {
		return false
	}
	s.lastID++
	s.guests = append(s.guests, g.WithID(s.lastID))

	s.logger.Info("guest added", slog.Int("guest_id", s.lastID))
	return true
}

// LastID is the most recently issued identifier, 0 before the first Add.
func (s *GuestStore) LastID() int {
	return s.lastID
}

func (s *GuestStore) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.guests = slices.Delete(s.guests, i, i+1)

	s.logger.Info("guest deleted", slog.Int("guest_id", id))
	return true
}

// Update corrects contact details only; the archived flag and reservations are left alone.
func (s *GuestStore) Update(id int, details guest.Details) bool {
	g := s.FindGuest(id)
	if g == nil {
		return false
	}
	g.UpdateDetails(details)

	s.logger.Info("guest updated", slog.Int("guest_id", id))
	return true
}

func (s *GuestStore) FindGuest(id int) *guest.Guest {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	return s.guests[i]
}

// ArchiveGuest returns false for an unknown id and for a guest that is already archived.
func (s *GuestStore) ArchiveGuest(id int) bool {
	g := s.FindGuest(id)
	if g == nil || !g.Archive() {
		return false
	}

	s.logger.Info("guest archived", slog.Int("guest_id", id))
	return true
}

// UnarchiveGuest mirrors ArchiveGuest: only an archived guest can be made active again.
func (s *GuestStore) UnarchiveGuest(id int) bool {
	g := s.FindGuest(id)
	if g == nil || !g.Unarchive() {
		return false
	}

	s.logger.Info("guest unarchived", slog.Int("guest_id", id))
	return true
}

func (s *GuestStore) ListAll() string {
	return formatOrMessage(s.guests, NoGuestsMessage)
}

func (s *GuestStore) ListActive() string {
	return formatOrMessage(s.filter(isActive), NoActiveGuestsMessage)
}

func (s *GuestStore) ListArchived() string {
	return formatOrMessage(s.filter(isArchived), NoArchivedGuestsMessage)
}

func (s *GuestStore) Count() int {
	return len(s.guests)
}

func (s *GuestStore) ActiveCount() int {
	return len(s.filter(isActive))
}

func (s *GuestStore) ArchivedCount() int {
	return len(s.filter(isArchived))
}

// ReservationCount totals reservations across every guest.
func (s *GuestStore) ReservationCount() int {
	total := 0
	for _, g := range s.guests {
		total += g.ReservationCount()
	}
	return total
}

func (s *GuestStore) Save(ctx context.Context) error {
	if err := s.serializer.Write(ctx, s.guests); err != nil {
		return errs.Mark(err, errs.ErrSaveFailed)
	}

	s.logger.Info("guests saved", slog.Int("count", len(s.guests)))
	return nil
}

// Load replaces the in-memory collection with the persisted one. On any failure the
// current collection is kept as is.
func (s *GuestStore) Load(ctx context.Context) error {
	loaded, err := s.serializer.Read(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrLoadFailed)
	}

	maxID, err := validateCollection(loaded)
	if err != nil {
		err = infra.WrapPersistenceErr(s.logger, infra.KindDecode, "loaded guests break store invariants", err)
		return errs.Mark(err, errs.ErrLoadFailed)
	}

	s.guests = slices.Clone(loaded)
	s.lastID = max(s.lastID, maxID)

	s.logger.Info("guests loaded", slog.Int("count", len(s.guests)), slog.Int("last_id", s.lastID))
	return nil
}

func (s *GuestStore) indexOf(id int) int {
	return slices.IndexFunc(s.guests, func(g *guest.Guest) bool {
		return g.ID() == id
	})
}

func (s *GuestStore) filter(keep func(*guest.Guest) bool) []*guest.Guest {
	var out []*guest.Guest
	for _, g := range s.guests {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}

func isActive(g *guest.Guest) bool   { return !g.IsArchived() }
func isArchived(g *guest.Guest) bool { return g.IsArchived() }

func validateCollection(guests []*guest.Guest) (int, error) {
	seen := make(map[int]struct{}, len(guests))
	maxID := 0
	for i, g := range guests {
		if g == nil {
			return 0, errs.Wrapf(errs.ErrCorruptCollection, "nil guest at position %d", i)
		}
		if g.ID() <= 0 {
			return 0, errs.Wrapf(errs.ErrCorruptCollection, "guest id %d is not positive", g.ID())
		}
		if _, dup := seen[g.ID()]; dup {
			return 0, errs.Wrapf(errs.ErrCorruptCollection, "guest id %d appears twice", g.ID())
		}
		seen[g.ID()] = struct{}{}
		maxID = max(maxID, g.ID())
	}
	return maxID, nil
}

// FormatGuests renders one guest per entry, each followed by its reservations.
func FormatGuests(guests []*guest.Guest) string {
	lines := make([]string, 0, len(guests))
	for _, g := range guests {
		lines = append(lines, g.String())
	}
	return strings.Join(lines, "\n")
}

func formatOrMessage(guests []*guest.Guest, empty string) string {
	if len(guests) == 0 {
		return empty
	}
	return FormatGuests(guests)
}
