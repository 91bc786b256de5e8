package usecase

import (
	"context"
	"strconv"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory repositories backing the service tests. They implement the
// same contracts as the pgx-backed ones, including the not-found-is-nil
// convention and the half-open overlap rule.

type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*entity.Room)}
}

func (r *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.rooms[room.RoomNumber] = room
	return nil
}

func (r *fakeRoomRepo) FindByNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	return r.rooms[roomNumber], nil
}

func (r *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	rooms := make([]*entity.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *fakeRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rooms)), nil
}

func (r *fakeRoomRepo) MaxRoomNumber(_ context.Context) (int, error) {
	max := 0
	for number := range r.rooms {
		if n, err := strconv.Atoi(number); err == nil && n > max {
			max = n
		}
	}
	return max, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	r.rooms[room.RoomNumber] = room
	return nil
}

func (r *fakeRoomRepo) UpdateStatus(_ context.Context, roomNumber string, status entity.RoomStatus) error {
	if room, ok := r.rooms[roomNumber]; ok {
		room.Status = status
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) FindAll(_ context.Context) ([]*entity.Customer, error) {
	customers := make([]*entity.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
	rooms    *fakeRoomRepo
}

func newFakeBookingRepo(rooms *fakeRoomRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		rooms:    rooms,
	}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	all, _ := r.ListAll(context.Background())
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) ListAll(_ context.Context) ([]*entity.Booking, error) {
	bookings := make([]*entity.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if booking, ok := r.bookings[bookingID]; ok {
		booking.Status = status
	}
	return nil
}

func (r *fakeBookingRepo) CountOverlapping(_ context.Context, roomNumber string, checkIn, checkOut time.Time, excludeID uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range r.bookings {
		if booking.RoomNumber != roomNumber || !booking.Status.IsActive() {
			continue
		}
		if excludeID != uuid.Nil && booking.ID == excludeID {
			continue
		}
		if booking.CheckOut.After(checkIn) && booking.CheckIn.Before(checkOut) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) UpdateWithRooms(ctx context.Context, booking *entity.Booking, changes []repository.RoomStatusChange) error {
	r.bookings[booking.ID] = booking
	for _, change := range changes {
		if err := r.rooms.UpdateStatus(ctx, change.RoomNumber, change.Status); err != nil {
			return err
		}
	}
	return nil
}

type testEnv struct {
	repo        *repository.Repository
	roomRepo    *fakeRoomRepo
	bookingRepo *fakeBookingRepo
	rooms       RoomService
	bookings    BookingService
	customers   CustomerService
	avail       AvailabilityService
	reports     ReportService
}

func newTestEnv() *testEnv {
	roomRepo := newFakeRoomRepo()
	bookingRepo := newFakeBookingRepo(roomRepo)
	repo := &repository.Repository{
		Room:     roomRepo,
		Customer: newFakeCustomerRepo(),
		Booking:  bookingRepo,
	}

	log := zap.NewNop()
	avail := NewAvailabilityService(repo, log)

	return &testEnv{
		repo:        repo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		rooms:       NewRoomService(repo, log),
		bookings:    NewBookingService(repo, avail, log),
		customers:   NewCustomerService(repo, log),
		avail:       avail,
		reports:     NewReportService(repo, log),
	}
}

func (e *testEnv) seedBooking(roomNumber string, checkIn, checkOut time.Time, status entity.BookingStatus, pricePerNight float64) *entity.Booking {
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CustomerID:    uuid.New(),
		RoomNumber:    roomNumber,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        status,
		PricePerNight: pricePerNight,
	}
	e.bookingRepo.bookings[booking.ID] = booking
	return booking
}

func (e *testEnv) seedRoom(roomNumber string, roomType entity.RoomType, price float64, status entity.RoomStatus) *entity.Room {
	room := &entity.Room{
		RoomNumber: roomNumber,
		Type:       roomType,
		Price:      price,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	e.roomRepo.rooms[roomNumber] = room
	return room
}

func (e *testEnv) seedCustomer(name string) *entity.Customer {
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  name,
		Email: "guest@example.com",
		Phone: "555-0100",
	}
	e.repo.Customer.Create(context.Background(), customer)
	return customer
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}
