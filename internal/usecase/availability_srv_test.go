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

func TestIsAvailableOverlapRules(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	booked, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-15",
	})
	require.NoError(t, err)

	for _, tc := range []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"identical range", "2024-01-10", "2024-01-15", false},
		{"contained", "2024-01-11", "2024-01-13", false},
		{"straddles start", "2024-01-08", "2024-01-11", false},
		{"straddles end", "2024-01-14", "2024-01-17", false},
		{"ends at check-in", "2024-01-08", "2024-01-10", true},
		{"starts at check-out", "2024-01-15", "2024-01-18", true},
		{"disjoint before", "2024-01-01", "2024-01-05", true},
		{"disjoint after", "2024-01-20", "2024-01-25", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			free, err := env.avail.IsAvailable(ctx, "101", mustDate(t, tc.checkIn), mustDate(t, tc.checkOut), uuid.Nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, free)
		})
	}

	// Excluding the booking itself frees its own interval.
	id, err := uuid.Parse(booked.ID)
	require.NoError(t, err)
	free, err := env.avail.IsAvailable(ctx, "101", date(2024, 1, 10), date(2024, 1, 15), id)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestIsAvailableIgnoresInactiveBookings(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	customer := env.seedCustomer("Alice")

	resp, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-15",
	})
	require.NoError(t, err)

	require.NoError(t, env.bookings.CheckIn(ctx, resp.ID))

	// A checked-in guest still blocks the calendar.
	free, err := env.avail.IsAvailable(ctx, "101", date(2024, 1, 10), date(2024, 1, 15), uuid.Nil)
	require.NoError(t, err)
	assert.False(t, free)

	require.NoError(t, env.bookings.CheckOut(ctx, resp.ID))

	// A completed stay does not.
	free, err = env.avail.IsAvailable(ctx, "101", date(2024, 1, 10), date(2024, 1, 15), uuid.Nil)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestListAvailableRooms(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.seedRoom("101", entity.RoomTypeStandard, 100, entity.RoomStatusAvailable)
	env.seedRoom("102", entity.RoomTypeDeluxe, 150, entity.RoomStatusAvailable)
	env.seedRoom("103", entity.RoomTypeSuite, 300, entity.RoomStatusMaintenance)
	customer := env.seedCustomer("Alice")

	_, err := env.bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		CustomerID: customer.ID.String(),
		RoomNumber: "101",
		CheckIn:    "2024-01-10",
		CheckOut:   "2024-01-12",
	})
	require.NoError(t, err)

	// 101 is booked and 103 is under maintenance; only 102 remains.
	rooms, err := env.avail.ListAvailableRooms(ctx, date(2024, 1, 10), date(2024, 1, 12))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "102", rooms[0].RoomNumber)

	// Outside the booked window the maintenance room is still excluded.
	rooms, err = env.avail.ListAvailableRooms(ctx, date(2024, 2, 1), date(2024, 2, 3))
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}
