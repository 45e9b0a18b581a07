// Package record holds the on-disk shape of the guest collection shared by every file format.
package record

import (
	"encoding/xml"
	"time"
)

type Document struct {
	XMLName xml.Name  `json:"-" yaml:"-" xml:"guests"`
	SavedAt time.Time `json:"saved_at" yaml:"saved_at" xml:"savedAt,attr"`
	Guests  []Guest   `json:"guests" yaml:"guests" xml:"guest"`
}

type Guest struct {
	ID           int           `json:"id" yaml:"id" xml:"id"`
	Name         string        `json:"name" yaml:"name" xml:"name"`
	Phone        string        `json:"phone" yaml:"phone" xml:"phone"`
	Email        string        `json:"email" yaml:"email" xml:"email"`
	Archived     bool          `json:"archived" yaml:"archived" xml:"archived"`
	Reservations []Reservation `json:"reservations" yaml:"reservations" xml:"reservations>reservation"`
}

type Reservation struct {
	ID         int  `json:"id" yaml:"id" xml:"id"`
	RoomNumber int  `json:"room_number" yaml:"room_number" xml:"roomNumber"`
	Cost       int  `json:"cost" yaml:"cost" xml:"cost"`
	PartySize  int  `json:"party_size" yaml:"party_size" xml:"partySize"`
	Paid       bool `json:"paid" yaml:"paid" xml:"paid"`
}
