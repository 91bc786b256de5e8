package response

import (
	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	RoomNumber string            `json:"room_number"`
	Type       entity.RoomType   `json:"type"`
	Price      float64           `json:"price"`
	Status     entity.RoomStatus `json:"status"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		RoomNumber: room.RoomNumber,
		Type:       room.Type,
		Price:      room.Price,
		Status:     room.Status,
	}
}
