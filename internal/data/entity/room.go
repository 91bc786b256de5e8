package entity

import "time"

type RoomType string

const (
	RoomTypeStandard RoomType = "Standard"
	RoomTypeDeluxe   RoomType = "Deluxe"
	RoomTypeSuite    RoomType = "Suite"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

// Room is keyed by its natural room number. Status is a denormalized view
// of active bookings: Occupied while a booking is checked in, Available
// otherwise. Maintenance is a manual operator override.
type Room struct {
	RoomNumber string     `db:"room_number"`
	Type       RoomType   `db:"type"`
	Price      float64    `db:"price"`
	Status     RoomStatus `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}
