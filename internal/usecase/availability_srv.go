package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// IsAvailable reports whether the room is free of active bookings over
	// the half-open range [checkIn, checkOut). Pass uuid.Nil as
	// excludeBookingID to exclude nothing; pass a booking's own ID when
	// re-validating a modification so its prior occupancy does not block it.
	IsAvailable(ctx context.Context, roomNumber string, checkIn, checkOut time.Time, excludeBookingID uuid.UUID) (bool, error)

	// ListAvailableRooms returns every room that is not under Maintenance
	// and has no active booking overlapping the range.
	ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]response.RoomResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) IsAvailable(ctx context.Context, roomNumber string, checkIn, checkOut time.Time, excludeBookingID uuid.UUID) (bool, error) {
	// Half-open interval overlap: an active booking conflicts iff
	// check_out > checkIn AND check_in < checkOut. Back-to-back stays
	// (one ending the day another begins) do not conflict.
	count, err := s.repo.Booking.CountOverlapping(ctx, roomNumber, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("check availability for room %s: %w", roomNumber, err)
	}

	return count == 0, nil
}

func (s *availabilityService) ListAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms for availability", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	available := []response.RoomResponse{}
	for _, room := range rooms {
		// Maintenance means manual operator lockout, regardless of dates.
		if room.Status == entity.RoomStatusMaintenance {
			continue
		}

		free, err := s.IsAvailable(ctx, room.RoomNumber, checkIn, checkOut, uuid.Nil)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, response.RoomToResponse(room))
		}
	}

	s.log.Info("Available rooms listed",
		zap.Time("check_in", checkIn),
		zap.Time("check_out", checkOut),
		zap.Int("count", len(available)),
	)

	return available, nil
}
