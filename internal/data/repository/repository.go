package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room     RoomRepository
	Customer CustomerRepository
	Booking  BookingRepository
	User     UserRepository
	Session  SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:     NewRoomRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
	}
}
