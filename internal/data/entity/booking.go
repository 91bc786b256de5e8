package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusCheckedIn  BookingStatus = "CheckedIn"
	BookingStatusCheckedOut BookingStatus = "CheckedOut"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// IsActive reports whether a booking in this status occupies its room's
// calendar. Cancelled and CheckedOut bookings are historical and never
// participate in overlap checks.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCheckedIn
}

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking holds a half-open [CheckIn, CheckOut) stay. PricePerNight is a
// snapshot of the room rate taken at creation or last modification; it is
// never recomputed when the room's rate changes.
type Booking struct {
	Base
	CustomerID    uuid.UUID     `db:"customer_id"`
	RoomNumber    string        `db:"room_number"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      time.Time     `db:"check_out"`
	Status        BookingStatus `db:"status"`
	PricePerNight float64       `db:"price_per_night"`
}
