package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RoomStatusChange is a room-status patch applied atomically with a
// booking write.
type RoomStatusChange struct {
	RoomNumber string
	Status     entity.RoomStatus
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// CountOverlapping counts active bookings on a room whose half-open
	// [check_in, check_out) interval intersects the given range, optionally
	// excluding one booking by ID (uuid.Nil excludes nothing).
	CountOverlapping(ctx context.Context, roomNumber string, checkIn, checkOut time.Time, excludeID uuid.UUID) (int64, error)

	// UpdateWithRooms persists the booking record and any room-status
	// patches in a single transaction, so no reader observes the booking
	// updated without its room side effects.
	UpdateWithRooms(ctx context.Context, booking *entity.Booking, rooms []RoomStatusChange) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_id, room_number, check_in, check_out, status, price_per_night, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.RoomNumber,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Status,
		&booking.PricePerNight,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.RoomNumber,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.PricePerNight,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("room_number", booking.RoomNumber),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list all bookings", zap.Error(err))
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows, r.log)
}

func collectBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, roomNumber string, checkIn, checkOut time.Time, excludeID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE room_number = $1
		AND status IN ('Confirmed', 'CheckedIn')
		AND check_out > $2
		AND check_in < $3
	`
	args := []any{roomNumber, checkIn, checkOut}

	if excludeID != uuid.Nil {
		query += ` AND id != $4`
		args = append(args, excludeID)
	}

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_number", roomNumber),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return 0, fmt.Errorf("count overlapping bookings for room %s: %w", roomNumber, err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET customer_id = $2, room_number = $3, check_in = $4, check_out = $5,
		    status = $6, price_per_night = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.RoomNumber,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.PricePerNight,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateWithRooms(ctx context.Context, booking *entity.Booking, rooms []RoomStatusChange) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin booking update: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE bookings
		SET customer_id = $2, room_number = $3, check_in = $4, check_out = $5,
		    status = $6, price_per_night = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.RoomNumber,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.PricePerNight,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking in transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	for _, change := range rooms {
		result, err := tx.Exec(ctx,
			`UPDATE rooms SET status = $2, updated_at = NOW() WHERE room_number = $1`,
			change.RoomNumber, change.Status,
		)
		if err != nil {
			r.log.Error("Failed to update room status in transaction",
				zap.Error(err),
				zap.String("room_number", change.RoomNumber),
				zap.String("status", string(change.Status)),
			)
			return fmt.Errorf("update room %s status: %w", change.RoomNumber, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("room %s not found", change.RoomNumber)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking update",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("commit booking update %s: %w", booking.ID.String(), err)
	}

	return nil
}
