package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms - List all rooms (paginated)
	r.Get("/api/rooms", roomHandler.ListRooms)

	// GET /api/rooms/available - List rooms free for a stay window
	r.Get("/api/rooms/available", roomHandler.ListAvailableRooms)

	// GET /api/rooms/{number} - Room details
	r.Get("/api/rooms/{number}", roomHandler.GetRoom)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/rooms - Register a new room
		r.Post("/api/rooms", roomHandler.CreateRoom)

		// PUT /api/rooms/{number} - Update room details or status
		r.Put("/api/rooms/{number}", roomHandler.UpdateRoom)
	})
}
