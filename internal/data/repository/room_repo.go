package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Count(ctx context.Context) (int64, error)
	MaxRoomNumber(ctx context.Context) (int, error)
	Update(ctx context.Context, room *entity.Room) error
	UpdateStatus(ctx context.Context, roomNumber string, status entity.RoomStatus) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (room_number, type, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.RoomNumber,
		room.Type,
		room.Price,
		room.Status,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	query := `
		SELECT room_number, type, price, status, created_at, updated_at
		FROM rooms
		WHERE room_number = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, roomNumber).Scan(
		&room.RoomNumber,
		&room.Type,
		&room.Price,
		&room.Status,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room %s: %w", roomNumber, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT room_number, type, price, status, created_at, updated_at
		FROM rooms
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.RoomNumber,
			&room.Type,
			&room.Price,
			&room.Status,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM rooms`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

func (r *roomRepository) MaxRoomNumber(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(room_number AS INTEGER)), 0) FROM rooms`

	var max int
	err := r.db.QueryRow(ctx, query).Scan(&max)
	if err != nil {
		r.log.Error("Failed to get max room number", zap.Error(err))
		return 0, fmt.Errorf("max room number: %w", err)
	}

	return max, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET type = $2, price = $3, status = $4, updated_at = $5
		WHERE room_number = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.RoomNumber,
		room.Type,
		room.Price,
		room.Status,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("update room %s: %w", room.RoomNumber, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.RoomNumber)
	}

	return nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, roomNumber string, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $2, updated_at = NOW() WHERE room_number = $1`

	result, err := r.db.Exec(ctx, query, roomNumber, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.String("room_number", roomNumber),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %s status to %s: %w", roomNumber, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", roomNumber)
	}

	return nil
}
