package response

type OccupancyReportResponse struct {
	Start             string  `json:"start"`
	End               string  `json:"end"`
	TotalRevenue      float64 `json:"total_revenue"`
	OccupiedNights    int     `json:"occupied_nights"`
	CompletedBookings int     `json:"completed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalNights       int     `json:"total_nights"`
	OccupancyRate     float64 `json:"occupancy_rate"`
}
