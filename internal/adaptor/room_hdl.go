package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service      usecase.RoomService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, availability usecase.AvailabilityService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service:      service,
		availability: availability,
		log:          log.With(zap.String("handler", "room")),
	}
}

// CreateRoom handles POST /api/rooms (protected)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/rooms/{number} (protected)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomNumber := chi.URLParam(r, "number")
	if roomNumber == "" {
		utils.ResponseBadRequest(w, "Room number is required", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomNumber, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// GetRoom handles GET /api/rooms/{number}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomNumber := chi.URLParam(r, "number")
	if roomNumber == "" {
		utils.ResponseBadRequest(w, "Room number is required", nil)
		return
	}

	room, err := h.service.GetRoom(r.Context(), roomNumber)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// ListRooms handles GET /api/rooms
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// ListAvailableRooms handles GET /api/rooms/available?check_in=&check_out=
func (h *RoomHandler) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.AvailableRoomsRequest{
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid check_in date", nil)
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid check_out date", nil)
		return
	}
	if !checkIn.Before(checkOut) {
		utils.ResponseBadRequest(w, "check_out must be after check_in", nil)
		return
	}

	rooms, err := h.availability.ListAvailableRooms(r.Context(), checkIn, checkOut)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}
