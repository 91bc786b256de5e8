package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Room         RoomService
	Customer     CustomerService
	Availability AvailabilityService
	Booking      BookingService
	Report       ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Room:         NewRoomService(repo, log),
		Customer:     NewCustomerService(repo, log),
		Availability: availability,
		Booking:      NewBookingService(repo, availability, log),
		Report:       NewReportService(repo, log),
	}
}
