package usecase

import "errors"

// Business-rule failures. These are expected, recoverable conditions that
// handlers surface to the caller; anything not matching one of them is a
// storage failure and maps to an internal error.
var (
	ErrInvalidDateRange  = errors.New("check-out date must be after check-in date")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomUnavailable   = errors.New("room unavailable")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrIllegalTransition = errors.New("illegal booking transition")
)
