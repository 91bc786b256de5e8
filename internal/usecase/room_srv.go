package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomNumber string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	GetRoom(ctx context.Context, roomNumber string) (*response.RoomResponse, error)
	ListRooms(ctx context.Context) ([]response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Room numbers are assigned sequentially from the highest existing
	// number, starting the inventory at 101.
	max, err := s.repo.Room.MaxRoomNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("next room number: %w", err)
	}
	roomNumber := "101"
	if max > 0 {
		roomNumber = strconv.Itoa(max + 1)
	}

	now := time.Now()
	room := &entity.Room{
		RoomNumber: roomNumber,
		Type:       entity.RoomType(req.Type),
		Price:      req.Price,
		Status:     entity.RoomStatusAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("room_number", roomNumber))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_number", roomNumber),
		zap.String("type", req.Type),
		zap.Float64("price", req.Price),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomNumber string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, err := s.repo.Room.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("find room %s: %w", roomNumber, err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomNumber)
	}

	if req.Type != nil {
		room.Type = entity.RoomType(*req.Type)
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Status != nil {
		// Occupied is owned by the booking lifecycle; the manual path only
		// toggles the Maintenance override on an unoccupied room.
		if room.Status == entity.RoomStatusOccupied {
			return nil, fmt.Errorf("%w: room %s is occupied, check the guest out first", ErrIllegalTransition, roomNumber)
		}
		room.Status = entity.RoomStatus(*req.Status)
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_number", roomNumber))
		return nil, fmt.Errorf("update room %s: %w", roomNumber, err)
	}

	s.log.Info("Room updated",
		zap.String("room_number", roomNumber),
		zap.String("status", string(room.Status)),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetRoom(ctx context.Context, roomNumber string) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("find room %s: %w", roomNumber, err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomNumber)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return roomResponses, nil
}
