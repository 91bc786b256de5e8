package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Every booking mutation goes through the lifecycle engine, which
	// serializes writers and keeps room status consistent with bookings.
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/bookings - List bookings (paginated)
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - Create new booking (starts Confirmed)
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - Booking details
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id} - Modify stay dates, room, or status
		r.Put("/{id}", bookingHandler.ModifyBooking)

		// PUT /api/bookings/{id}/check-in - Confirmed -> CheckedIn
		r.Put("/{id}/check-in", bookingHandler.CheckIn)

		// PUT /api/bookings/{id}/check-out - CheckedIn -> CheckedOut
		r.Put("/{id}/check-out", bookingHandler.CheckOut)

		// PUT /api/bookings/{id}/cancel - Confirmed -> Cancelled
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
