package console

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/infra"
	"hotel-guest-manager/internal/pkg/errs"
	"hotel-guest-manager/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const mainMenu = `
 --------------------------------------------------
 |         Hotel Guests                           |
 --------------------------------------------------
 | Guest MENU                                     |
 |   1) Add a guest                               |
 |   2) Update a guest                            |
 |   3) Delete a guest                            |
 |   4) Search guests                             |
 |   5) Archive a guest                           |
 |   6) List guests                               |
 |  11) Unarchive a guest                         |
 |------------------------------------------------|
 | Reservation MENU                               |
 |   7) Add reservation to guest                  |
 |   8) Update reservation in guest               |
 |   9) Delete reservation from guest             |
 |  10) Search reservations                       |
 --------------------------------------------------
 |  20) Save guests                               |
 |  21) Load guests                               |
 --------------------------------------------------
 |   0) Exit                                      |
 --------------------------------------------------
 ==>> `

// GuestService is the part of usecase.GuestStore the console drives.
type GuestService interface {
	Add(g *guest.Guest) bool
	LastID() int
	Delete(id int) bool
	Update(id int, details guest.Details) bool
	FindGuest(id int) *guest.Guest
	ArchiveGuest(id int) bool
	UnarchiveGuest(id int) bool
	SearchByID(id int) []*guest.Guest
	SearchByName(substring string) []*guest.Guest
	SearchReservationByID(reservationID int) []usecase.ReservationMatch
	ListAll() string
	ListActive() string
	ListArchived() string
	Count() int
	ActiveCount() int
	ArchivedCount() int
	Save(ctx context.Context) error
	Load(ctx context.Context) error
}

type Options struct {
	AutoLoad bool
}

type Console struct {
	store    GuestService
	in       *Prompter
	out      io.Writer
	logger   *slog.Logger
	validate *validator.Validate
	opts     Options
}

func NewConsole(store GuestService, in io.Reader, out io.Writer, logger *slog.Logger, opts Options) *Console {
	return &Console{
		store:    store,
		in:       NewPrompter(in, out),
		out:      out,
		logger:   logger,
		validate: newValidator(),
		opts:     opts,
	}
}

// Run shows the menu until the user picks 0 or input ends. Action failures are printed, never returned.
func (c *Console) Run(ctx context.Context) error {
	if c.opts.AutoLoad {
		c.autoLoad(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		choice, err := c.in.ReadInt(mainMenu)
		if err != nil {
			return endOfInput(err)
		}
		if choice == 0 {
			c.println("Exiting...bye")
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return endOfInput(err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, choice int) error {
	actions := map[int]struct {
		name string
		run  func(context.Context) error
	}{
		1:  {"add_guest", c.addGuest},
		2:  {"update_guest", c.updateGuest},
		3:  {"delete_guest", c.deleteGuest},
		4:  {"search_guests", c.searchGuests},
		5:  {"archive_guest", c.archiveGuest},
		6:  {"list_guests", c.listGuests},
		7:  {"add_reservation", c.addReservation},
		8:  {"update_reservation", c.updateReservation},
		9:  {"delete_reservation", c.deleteReservation},
		10: {"search_reservations", c.searchReservations},
		11: {"unarchive_guest", c.unarchiveGuest},
		20: {"save", c.save},
		21: {"load", c.load},
	}

	action, ok := actions[choice]
	if !ok {
		c.printf("Invalid option entered: %d\n", choice)
		return nil
	}

	operationID := uuid.NewString()
	c.logger.Debug("Action started", slog.String("operation_id", operationID), slog.String("action", action.name))
	err := action.run(ctx)
	c.logger.Debug("Action completed", slog.String("operation_id", operationID), slog.String("action", action.name))
	return err
}

// -----------------------------------------------------------------------------
// Guest actions
// -----------------------------------------------------------------------------

func (c *Console) addGuest(_ context.Context) error {
	details, ok, err := c.readGuestDetails()
	if err != nil || !ok {
		return err
	}
	if c.store.Add(guest.NewGuest(details)) {
		c.printf("Added Successfully (guest id %d)\n", c.store.LastID())
	} else {
		c.println("Add Failed")
	}
	return nil
}

func (c *Console) updateGuest(_ context.Context) error {
	c.println(c.store.ListAll())
	if c.store.Count() == 0 {
		return nil
	}

	id, err := c.in.ReadInt("Enter the id of the guest to update: ")
	if err != nil {
		return err
	}
	if c.store.FindGuest(id) == nil {
		c.println("There are no guests for this id")
		return nil
	}

	details, ok, err := c.readGuestDetails()
	if err != nil || !ok {
		return err
	}
	if c.store.Update(id, details) {
		c.println("Update Successful")
	} else {
		c.println("Update Failed")
	}
	return nil
}

func (c *Console) deleteGuest(_ context.Context) error {
	c.println(c.store.ListAll())
	if c.store.Count() == 0 {
		return nil
	}

	id, err := c.in.ReadInt("Enter the id of the guest to delete: ")
	if err != nil {
		return err
	}
	if c.store.Delete(id) {
		c.println("Deleted Successfully")
	} else {
		c.println("Delete Failed. Guest not found.")
	}
	return nil
}

func (c *Console) searchGuests(_ context.Context) error {
	if c.store.Count() == 0 {
		c.println("Option Invalid - No Guests stored")
		return nil
	}

	option, err := c.in.ReadInt("  1) Search by id\n  2) Search by name\n ==>> ")
	if err != nil {
		return err
	}

	var found []*guest.Guest
	switch option {
	case 1:
		id, err := c.in.ReadInt("Enter the guest id to search by: ")
		if err != nil {
			return err
		}
		found = c.store.SearchByID(id)
	case 2:
		name, err := c.in.ReadLine("Enter the name to search by: ")
		if err != nil {
			return err
		}
		found = c.store.SearchByName(name)
	default:
		c.printf("Invalid option entered: %d\n", option)
		return nil
	}

	if len(found) == 0 {
		c.println("No guests found")
	} else {
		c.println(usecase.FormatGuests(found))
	}
	return nil
}

func (c *Console) archiveGuest(_ context.Context) error {
	c.println(c.store.ListActive())
	if c.store.ActiveCount() == 0 {
		return nil
	}

	id, err := c.in.ReadInt("Enter the id of the guest to archive: ")
	if err != nil {
		return err
	}
	if c.store.ArchiveGuest(id) {
		c.println("Archive Successful!")
	} else {
		c.println("Archive NOT Successful")
	}
	return nil
}

func (c *Console) unarchiveGuest(_ context.Context) error {
	c.println(c.store.ListArchived())
	if c.store.ArchivedCount() == 0 {
		return nil
	}

	id, err := c.in.ReadInt("Enter the id of the guest to unarchive: ")
	if err != nil {
		return err
	}
	if c.store.UnarchiveGuest(id) {
		c.println("Unarchive Successful!")
	} else {
		c.println("Unarchive NOT Successful")
	}
	return nil
}

func (c *Console) listGuests(_ context.Context) error {
	if c.store.Count() == 0 {
		c.println("Option Invalid - No Guests stored")
		return nil
	}

	option, err := c.in.ReadInt("  1) View ALL guests\n  2) View ACTIVE guests\n  3) View ARCHIVED guests\n ==>> ")
	if err != nil {
		return err
	}
	switch option {
	case 1:
		c.println(c.store.ListAll())
	case 2:
		c.println(c.store.ListActive())
	case 3:
		c.println(c.store.ListArchived())
	default:
		c.printf("Invalid option entered: %d\n", option)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Reservation actions
// -----------------------------------------------------------------------------

func (c *Console) addReservation(_ context.Context) error {
	g, err := c.chooseActiveGuest()
	if err != nil || g == nil {
		return err
	}

	reservationID, err := c.in.ReadInt("\t Reservation id: ")
	if err != nil {
		return err
	}
	details, ok, err := c.readReservationDetails()
	if err != nil || !ok {
		return err
	}

	if g.AddReservation(guest.NewReservation(reservationID, details)) {
		c.println("Add Successful!")
	} else {
		c.println("Add NOT Successful")
	}
	return nil
}

func (c *Console) updateReservation(_ context.Context) error {
	g, err := c.chooseActiveGuest()
	if err != nil || g == nil {
		return err
	}
	r, ok, err := c.chooseReservation(g)
	if err != nil {
		return err
	}
	if !ok {
		c.println("Invalid Reservation Id")
		return nil
	}

	details, ok, err := c.readReservationDetails()
	if err != nil || !ok {
		return err
	}
	if g.UpdateReservation(r.ID(), details) {
		c.println("Reservation updated successfully")
	} else {
		c.println("Failed to update Reservation")
	}
	return nil
}

func (c *Console) deleteReservation(_ context.Context) error {
	g, err := c.chooseActiveGuest()
	if err != nil || g == nil {
		return err
	}
	r, ok, err := c.chooseReservation(g)
	if err != nil {
		return err
	}
	if !ok {
		c.println("Invalid Reservation Id")
		return nil
	}

	if g.DeleteReservation(r.ID()) {
		c.println("Delete Successful!")
	} else {
		c.println("Delete NOT Successful")
	}
	return nil
}

func (c *Console) searchReservations(_ context.Context) error {
	reservationID, err := c.in.ReadInt("Enter the reservation id: ")
	if err != nil {
		return err
	}
	matches := c.store.SearchReservationByID(reservationID)
	if len(matches) == 0 {
		c.println("No items found")
	} else {
		c.println(usecase.FormatReservationMatches(matches))
	}
	return nil
}

// -----------------------------------------------------------------------------
// Persistence actions
// -----------------------------------------------------------------------------

func (c *Console) save(ctx context.Context) error {
	if err := c.store.Save(ctx); err != nil {
		c.logFailure("save", err)
		c.printf("Error saving guests: %v\n", err)
		return nil
	}
	c.println("Guests saved successfully.")
	return nil
}

func (c *Console) load(ctx context.Context) error {
	if err := c.store.Load(ctx); err != nil {
		c.logFailure("load", err)
		c.printf("Error loading guests: %v\n", err)
		return nil
	}
	c.println("Guests loaded successfully.")
	return nil
}

func (c *Console) autoLoad(ctx context.Context) {
	err := c.store.Load(ctx)
	switch {
	case err == nil:
		c.logger.Info("guests restored at startup", slog.Int("count", c.store.Count()))
	case errs.Is(err, fs.ErrNotExist):
		c.logger.Warn("no saved guests to restore", slog.String("error", err.Error()))
	default:
		c.logFailure("autoload", err)
		c.printf("Error loading guests: %v\n", err)
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// chooseActiveGuest returns nil without error when nothing suitable was picked.
func (c *Console) chooseActiveGuest() (*guest.Guest, error) {
	c.println(c.store.ListActive())
	if c.store.ActiveCount() == 0 {
		return nil, nil
	}

	id, err := c.in.ReadInt("\nEnter the id of the guest: ")
	if err != nil {
		return nil, err
	}
	g := c.store.FindGuest(id)
	switch {
	case g == nil:
		c.println("guest id is not valid")
		return nil, nil
	case g.IsArchived():
		c.println("guest is NOT Active, it is Archived")
		return nil, nil
	}
	return g, nil
}

func (c *Console) chooseReservation(g *guest.Guest) (guest.Reservation, bool, error) {
	if g.ReservationCount() == 0 {
		c.println("No reservations for chosen guest")
		return guest.Reservation{}, false, nil
	}

	c.println(g.ListReservations())
	id, err := c.in.ReadInt("\nEnter the id of the reservation: ")
	if err != nil {
		return guest.Reservation{}, false, err
	}
	r, ok := g.FindReservation(id)
	return r, ok, nil
}

func (c *Console) readGuestDetails() (guest.Details, bool, error) {
	var form GuestForm
	var err error
	if form.Name, err = c.in.ReadLine("Enter the guest name: "); err != nil {
		return guest.Details{}, false, err
	}
	if form.Phone, err = c.in.ReadLine("Enter the guest phone: "); err != nil {
		return guest.Details{}, false, err
	}
	if form.Email, err = c.in.ReadLine("Enter the guest email: "); err != nil {
		return guest.Details{}, false, err
	}

	details, err := form.ToDomain(c.validate)
	if err != nil {
		c.printf("Invalid guest details: %v\n", err)
		return guest.Details{}, false, nil
	}
	return details, true, nil
}

func (c *Console) readReservationDetails() (guest.ReservationDetails, bool, error) {
	var form ReservationForm
	var err error
	if form.RoomNumber, err = c.in.ReadInt("\t Room number: "); err != nil {
		return guest.ReservationDetails{}, false, err
	}
	if form.Cost, err = c.in.ReadInt("\t Cost: "); err != nil {
		return guest.ReservationDetails{}, false, err
	}
	if form.PartySize, err = c.in.ReadInt("\t Number of people: "); err != nil {
		return guest.ReservationDetails{}, false, err
	}
	if form.Paid, err = c.in.ReadBool("\t Is the bill paid? (y/n): "); err != nil {
		return guest.ReservationDetails{}, false, err
	}

	details, err := form.ToDomain(c.validate)
	if err != nil {
		c.printf("Invalid reservation details: %v\n", err)
		return guest.ReservationDetails{}, false, nil
	}
	return details, true, nil
}

func (c *Console) logFailure(action string, err error) {
	attrs := []any{
		slog.String("action", action),
		slog.String("error", err.Error()),
	}
	for _, kind := range []infra.PersistenceErrorKind{infra.KindIO, infra.KindEncode, infra.KindDecode} {
		if infra.IsKind(err, kind) {
			attrs = append(attrs, slog.String("kind", string(kind)))
		}
	}
	attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(err, 10)))
	c.logger.Error("Persistence action failed", attrs...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func endOfInput(err error) error {
	if errs.Is(err, io.EOF) {
		return nil
	}
	return err
}
