package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// OccupancyReport handles GET /api/reports/occupancy?start=&end= (protected)
func (h *ReportHandler) OccupancyReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.OccupancyReportRequest{
		Start: query.Get("start"),
		End:   query.Get("end"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	start, err := utils.ParseDate(req.Start)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid start date", nil)
		return
	}
	end, err := utils.ParseDate(req.End)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid end date", nil)
		return
	}

	report, err := h.service.OccupancyReport(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
