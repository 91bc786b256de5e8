package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/customers - List customers (paginated)
		r.Get("/api/customers", customerHandler.ListCustomers)

		// GET /api/customers/{id} - Customer details
		r.Get("/api/customers/{id}", customerHandler.GetCustomer)

		// POST /api/customers - Register a new customer
		r.Post("/api/customers", customerHandler.CreateCustomer)

		// PUT /api/customers/{id} - Update customer contact details
		r.Put("/api/customers/{id}", customerHandler.UpdateCustomer)
	})
}
