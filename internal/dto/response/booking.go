package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	CustomerName  string               `json:"customer_name,omitempty"`
	RoomNumber    string               `json:"room_number"`
	CheckIn       string               `json:"check_in"`
	CheckOut      string               `json:"check_out"`
	Nights        int                  `json:"nights"`
	Status        entity.BookingStatus `json:"status"`
	PricePerNight float64              `json:"price_per_night"`
	TotalPrice    float64              `json:"total_price"`
	CreatedAt     time.Time            `json:"created_at"`
}

func BookingToResponse(b *entity.Booking, customerName string) BookingResponse {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)

	return BookingResponse{
		ID:            b.ID.String(),
		CustomerID:    b.CustomerID.String(),
		CustomerName:  customerName,
		RoomNumber:    b.RoomNumber,
		CheckIn:       b.CheckIn.Format("2006-01-02"),
		CheckOut:      b.CheckOut.Format("2006-01-02"),
		Nights:        nights,
		Status:        b.Status,
		PricePerNight: b.PricePerNight,
		TotalPrice:    float64(nights) * b.PricePerNight,
		CreatedAt:     b.CreatedAt,
	}
}
