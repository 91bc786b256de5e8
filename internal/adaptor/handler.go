package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Room     *RoomHandler
	Customer *CustomerHandler
	Booking  *BookingHandler
	Report   *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Room:     NewRoomHandler(service.Room, service.Availability, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Report:   NewReportHandler(service.Report, log),
	}
}

// writeServiceError maps business-rule failures to 4xx responses; anything
// unrecognized is a storage failure and reports 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrCustomerNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrRoomUnavailable):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrIllegalTransition):
		utils.ResponseUnprocessable(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidDateRange):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case strings.Contains(err.Error(), "validation failed"),
		strings.HasPrefix(err.Error(), "invalid"):
		utils.ResponseBadRequest(w, err.Error(), nil)
	default:
		utils.ResponseInternalError(w, err.Error())
	}
}
