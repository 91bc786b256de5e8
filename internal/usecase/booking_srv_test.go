package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, "101", resp.RoomNumber)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, 100.0, resp.PricePerNight)
	assert.Equal(t, 200.0, resp.TotalPrice)
	assert.Equal(t, "Alice", resp.CustomerName)

	// A Confirmed booking reserves the calendar without occupying the room.
	room, _ := env.repo.Room.FindByNumber(ctx, "101")
	assert.Equal(t, entity.RoomStatusAvailable, room.Status)
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	_, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	// Overlapping stay on the same room is rejected.
	_, err = env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-11",
		CheckOut:   "2024-01-13",
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// Back-to-back stay starting on the previous check-out day is fine.
	_, err = env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-12",
		CheckOut:   "2024-01-14",
	})
	assert.NoError(t, err)
}

func TestCreateBookingInvalidDateRange(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	for _, tc := range []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"zero nights", "2024-01-10", "2024-01-10"},
		{"reversed", "2024-01-12", "2024-01-10"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
				CustomerID: customer.ID.String(),
				RoomNumber: "101",
				CheckIn:    tc.checkIn,
				CheckOut:   tc.checkOut,
			})
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}
}

func TestCreateBookingMissingEntities(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	_, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "999",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: "3f1e9ab2-7c44-4d8a-9e15-2b6f0c8d4a71",
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCheckInCheckOutRoomStatus(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	require.NoError(t, env.bookings.CheckIn(ctx, resp.ID))

	room, _ := env.repo.Room.FindByNumber(ctx, "101")
	assert.Equal(t, entity.RoomStatusOccupied, room.Status)

	booking, err := env.bookings.GetBookingByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCheckedIn, booking.Status)

	require.NoError(t, env.bookings.CheckOut(ctx, resp.ID))

	room, _ = env.repo.Room.FindByNumber(ctx, "101")
	assert.Equal(t, entity.RoomStatusAvailable, room.Status)

	booking, err = env.bookings.GetBookingByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCheckedOut, booking.Status)
}

func TestCheckOutKeepsMaintenanceOverride(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)
	require.NoError(t, env.bookings.CheckIn(ctx, resp.ID))

	// Operator flags the room mid-stay; checkout must not clear the flag.
	env.roomRepo.rooms["101"].Status = entity.RoomStatusMaintenance

	require.NoError(t, env.bookings.CheckOut(ctx, resp.ID))

	room, _ := env.repo.Room.FindByNumber(ctx, "101")
	assert.Equal(t, entity.RoomStatusMaintenance, room.Status)
}

func TestIllegalTransitions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	env.seedRoom("102", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	confirmed, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	// Check-out requires a checked-in booking.
	assert.ErrorIs(t, env.bookings.CheckOut(ctx, confirmed.ID), ErrIllegalTransition)

	require.NoError(t, env.bookings.CancelBooking(ctx, confirmed.ID))

	// Cancelled bookings accept no further lifecycle transitions.
	assert.ErrorIs(t, env.bookings.CheckIn(ctx, confirmed.ID), ErrIllegalTransition)
	assert.ErrorIs(t, env.bookings.CancelBooking(ctx, confirmed.ID), ErrIllegalTransition)

	checkedIn, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "102",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)
	require.NoError(t, env.bookings.CheckIn(ctx, checkedIn.ID))

	// An in-house guest cannot be cancelled or checked in again.
	assert.ErrorIs(t, env.bookings.CancelBooking(ctx, checkedIn.ID), ErrIllegalTransition)
	assert.ErrorIs(t, env.bookings.CheckIn(ctx, checkedIn.ID), ErrIllegalTransition)
}

func TestCancelHasNoRoomEffect(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)
	require.NoError(t, env.bookings.CancelBooking(ctx, resp.ID))

	room, _ := env.repo.Room.FindByNumber(ctx, "101")
	assert.Equal(t, entity.RoomStatusAvailable, room.Status)

	// The cancelled interval no longer blocks the calendar.
	free, err := env.avail.IsAvailable(ctx, "101", date(2024, 1, 10), date(2024, 1, 12), uuid.Nil)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestModifyBookingNoOp(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	// Re-submitting the same room and dates must not collide with the
	// booking's own interval.
	modified, err := env.bookings.ModifyBooking(ctx, resp.ID, &request.ModifyBookingRequest{
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
		Status:     "Confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, modified.Status)
	assert.Equal(t, "101", modified.RoomNumber)
}

func TestModifyBookingMoveCheckedInGuest(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	env.seedRoom("102", entity.RoomTypeDeluxe, 150, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)
	require.NoError(t, env.bookings.CheckIn(ctx, resp.ID))

	modified, err := env.bookings.ModifyBooking(ctx, resp.ID, &request.ModifyBookingRequest{
		RoomNumber: "102",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
		Status:     "CheckedIn",
	})
	require.NoError(t, err)
	assert.Equal(t, "102", modified.RoomNumber)

	// Rate follows the new room.
	assert.Equal(t, 150.0, modified.PricePerNight)

	oldRoom, _ := env.repo.Room.FindByNumber(ctx, "101")
	newRoom, _ := env.repo.Room.FindByNumber(ctx, "102")
	assert.Equal(t, entity.RoomStatusAvailable, oldRoom.Status)
	assert.Equal(t, entity.RoomStatusOccupied, newRoom.Status)
}

func TestModifyBookingStatusOverride(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	// The modify path applies any target status without transition checks.
	modified, err := env.bookings.ModifyBooking(ctx, resp.ID, &request.ModifyBookingRequest{
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
		Status:     "CheckedOut",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCheckedOut, modified.Status)
}

func TestModifyBookingConflictOnTargetRoom(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	env.seedRoom("102", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	_, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "102",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	_, err = env.bookings.ModifyBooking(ctx, resp.ID, &request.ModifyBookingRequest{
		RoomNumber: "102",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
		Status:     "Confirmed",
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestListBookings(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	env.seedRoom("102", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	for _, roomNumber := range []string{"101", "102"} {
		_, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
			CustomerID: customer.ID.String(),
			RoomNumber: roomNumber,
			CheckIn:    "2024-01-10",
			CheckOut:   "2024-01-12",
		})
		require.NoError(t, err)
	}

	page, err := env.bookings.ListBookings(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(2), page.Pagination.Total)
	assert.Equal(t, "Alice", page.Data[0].CustomerName)
}

func TestGetBookingNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.bookings.GetBookingByID(context.Background(), "3f1e9ab2-7c44-4d8a-9e15-2b6f0c8d4a71")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
