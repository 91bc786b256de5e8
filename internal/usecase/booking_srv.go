package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ModifyBooking(ctx context.Context, bookingID string, req *request.ModifyBookingRequest) (*response.BookingResponse, error)
	CheckIn(ctx context.Context, bookingID string) error
	CheckOut(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, bookingID string) error

	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

// bookingService owns the booking state machine. A single mutex serializes
// every mutating operation so that the availability check and the
// subsequent writes of one operation can never interleave with another's;
// the write itself commits booking and room-status rows in one
// transaction, so readers never see a half-applied transition.
type bookingService struct {
	mu           sync.Mutex
	repo         *repository.Repository
	availability AvailabilityService
	log          *zap.Logger
}

func NewBookingService(repo *repository.Repository, availability AvailabilityService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		availability: availability,
		log:          log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.repo.Room.FindByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("find room %s: %w", req.RoomNumber, err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomNumber)
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find customer %s: %w", req.CustomerID, err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, req.CustomerID)
	}

	free, err := s.availability.IsAvailable(ctx, req.RoomNumber, checkIn, checkOut, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, fmt.Errorf("%w: room %s is already booked or occupied during this period", ErrRoomUnavailable, req.RoomNumber)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID: customerID,
		RoomNumber: room.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     entity.BookingStatusConfirmed,
		// Rate snapshot: the room's price at creation time, never
		// recomputed if the room's rate later changes.
		PricePerNight: room.Price,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("room_number", req.RoomNumber),
			zap.String("customer_id", req.CustomerID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("room_number", booking.RoomNumber),
		zap.String("customer_id", req.CustomerID),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
		zap.Float64("price_per_night", booking.PricePerNight),
	)

	resp := response.BookingToResponse(booking, customer.Name)
	return &resp, nil
}

// ModifyBooking moves a booking to a new room, date range, and status
// while re-validating availability with the booking's own prior occupancy
// excluded. The target status is applied without transition validation:
// this is the administrative override path, unlike the dedicated
// check-in/check-out/cancel operations.
func (s *bookingService) ModifyBooking(ctx context.Context, bookingID string, req *request.ModifyBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Modify booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	newCheckIn, newCheckOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	newStatus := entity.BookingStatus(req.Status)

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	newRoom, err := s.repo.Room.FindByNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("find room %s: %w", req.RoomNumber, err)
	}
	if newRoom == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomNumber)
	}

	// Excluding the booking's own ID is essential: its old interval must
	// not block a no-op or partial move.
	free, err := s.availability.IsAvailable(ctx, req.RoomNumber, newCheckIn, newCheckOut, booking.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, fmt.Errorf("%w: room %s is not available for the new dates", ErrRoomUnavailable, req.RoomNumber)
	}

	// Room side effects derive from the transition, not just the target
	// state: release the old room if the booking occupied it, claim the
	// new one if it will. When the stay remains checked in on the same
	// room, skip the release entirely so no reader ever sees the room
	// flicker to Available.
	var changes []repository.RoomStatusChange

	oldRoomNumber := booking.RoomNumber
	stayingCheckedIn := oldRoomNumber == newRoom.RoomNumber &&
		booking.Status == entity.BookingStatusCheckedIn &&
		newStatus == entity.BookingStatusCheckedIn

	if booking.Status == entity.BookingStatusCheckedIn && !stayingCheckedIn {
		change, err := s.releaseChange(ctx, oldRoomNumber)
		if err != nil {
			return nil, err
		}
		if change != nil {
			changes = append(changes, *change)
		}
	}
	if newStatus == entity.BookingStatusCheckedIn {
		changes = append(changes, repository.RoomStatusChange{
			RoomNumber: newRoom.RoomNumber,
			Status:     entity.RoomStatusOccupied,
		})
	}

	booking.RoomNumber = newRoom.RoomNumber
	booking.CheckIn = newCheckIn
	booking.CheckOut = newCheckOut
	booking.Status = newStatus
	// Rate is re-snapshotted from the new room on every modify.
	booking.PricePerNight = newRoom.Price
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.UpdateWithRooms(ctx, booking, changes); err != nil {
		s.log.Error("Failed to modify booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("modify booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking modified",
		zap.String("booking_id", bookingID),
		zap.String("room_number", booking.RoomNumber),
		zap.String("status", string(booking.Status)),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
	)

	resp := response.BookingToResponse(booking, s.customerName(ctx, booking.CustomerID))
	return &resp, nil
}

func (s *bookingService) CheckIn(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return fmt.Errorf("%w: cannot check in a %s booking", ErrIllegalTransition, booking.Status)
	}

	booking.Status = entity.BookingStatusCheckedIn
	booking.UpdatedAt = time.Now()

	changes := []repository.RoomStatusChange{
		{RoomNumber: booking.RoomNumber, Status: entity.RoomStatusOccupied},
	}

	if err := s.repo.Booking.UpdateWithRooms(ctx, booking, changes); err != nil {
		s.log.Error("Failed to check in booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("check in booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking checked in",
		zap.String("booking_id", bookingID),
		zap.String("room_number", booking.RoomNumber),
	)

	return nil
}

func (s *bookingService) CheckOut(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	if booking.Status != entity.BookingStatusCheckedIn {
		return fmt.Errorf("%w: cannot check out a %s booking", ErrIllegalTransition, booking.Status)
	}

	booking.Status = entity.BookingStatusCheckedOut
	booking.UpdatedAt = time.Now()

	var changes []repository.RoomStatusChange
	change, err := s.releaseChange(ctx, booking.RoomNumber)
	if err != nil {
		return err
	}
	if change != nil {
		changes = append(changes, *change)
	}

	if err := s.repo.Booking.UpdateWithRooms(ctx, booking, changes); err != nil {
		s.log.Error("Failed to check out booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("check out booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking checked out",
		zap.String("booking_id", bookingID),
		zap.String("room_number", booking.RoomNumber),
	)

	return nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	// A Confirmed booking never occupied its room, so cancellation has no
	// room-status side effect.
	if booking.Status != entity.BookingStatusConfirmed {
		return fmt.Errorf("%w: cannot cancel a %s booking", ErrIllegalTransition, booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))

	return nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	resp := response.BookingToResponse(booking, s.customerName(ctx, booking.CustomerID))
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking, s.customerName(ctx, booking.CustomerID))
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

// releaseChange returns the status patch freeing a room after its
// occupant leaves, or nil when the patch must be skipped: a Maintenance
// override set by an operator mid-stay survives the departure.
func (s *bookingService) releaseChange(ctx context.Context, roomNumber string) (*repository.RoomStatusChange, error) {
	room, err := s.repo.Room.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("find room %s: %w", roomNumber, err)
	}
	if room == nil || room.Status == entity.RoomStatusMaintenance {
		return nil, nil
	}

	return &repository.RoomStatusChange{
		RoomNumber: roomNumber,
		Status:     entity.RoomStatusAvailable,
	}, nil
}

func (s *bookingService) customerName(ctx context.Context, customerID uuid.UUID) string {
	customer, _ := s.repo.Customer.FindByID(ctx, customerID)
	if customer == nil {
		return "Unknown"
	}
	return customer.Name
}

func parseStayDates(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-in date %s: %w", checkInStr, err)
	}

	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-out date %s: %w", checkOutStr, err)
	}

	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return checkIn, checkOut, nil
}
