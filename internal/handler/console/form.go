package console

import (
	"fmt"
	"strings"

	"hotel-guest-manager/internal/domain/guest"
	"hotel-guest-manager/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
)

var ErrInvalidInput = errs.New("invalid input")

type GuestForm struct {
	Name  string `validate:"required,max=100"`
	Phone string `validate:"required,max=20"`
	Email string `validate:"required,email"`
}

type ReservationForm struct {
	RoomNumber int `validate:"gte=1"`
	Cost       int `validate:"gte=0"`
	PartySize  int `validate:"gte=1"`
	Paid       bool
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func (f GuestForm) ToDomain(v *validator.Validate) (guest.Details, error) {
	var details guest.Details
	if err := v.Struct(f); err != nil {
		return details, describe(err)
	}
	if err := copier.Copy(&details, &f); err != nil {
		return details, errs.Wrap(err, "copy guest form")
	}
	return details, nil
}

func (f ReservationForm) ToDomain(v *validator.Validate) (guest.ReservationDetails, error) {
	var details guest.ReservationDetails
	if err := v.Struct(f); err != nil {
		return details, describe(err)
	}
	if err := copier.Copy(&details, &f); err != nil {
		return details, errs.Wrap(err, "copy reservation form")
	}
	return details, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return errs.Mark(err, ErrInvalidInput)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errs.Mark(errs.New(strings.Join(msgs, ", ")), ErrInvalidInput)
}
