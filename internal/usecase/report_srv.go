package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportService interface {
	// OccupancyReport aggregates revenue and occupancy over the half-open
	// window [start, end).
	OccupancyReport(ctx context.Context, start, end time.Time) (*response.OccupancyReportResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) OccupancyReport(ctx context.Context, start, end time.Time) (*response.OccupancyReportResponse, error) {
	if !start.Before(end) {
		return nil, ErrInvalidDateRange
	}

	bookings, err := s.repo.Booking.ListAll(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings for report", zap.Error(err))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	report := &response.OccupancyReportResponse{
		Start: utils.FormatDate(start),
		End:   utils.FormatDate(end),
	}

	for _, booking := range bookings {
		// Clamp the stay to the report window.
		overlapStart := maxTime(booking.CheckIn, start)
		overlapEnd := minTime(booking.CheckOut, end)

		if overlapStart.Before(overlapEnd) {
			nights := int(overlapEnd.Sub(overlapStart).Hours() / 24)

			// Revenue is recognized on completed stays only; a booking
			// checked out after the window still counts for the nights
			// that fell inside it.
			if booking.Status == entity.BookingStatusCheckedOut {
				report.TotalRevenue += float64(nights) * booking.PricePerNight
				report.CompletedBookings++
			}

			if booking.Status == entity.BookingStatusConfirmed ||
				booking.Status == entity.BookingStatusCheckedIn ||
				booking.Status == entity.BookingStatusCheckedOut {
				report.OccupiedNights += nights
			}
		}

		// Cancellations count by intended arrival date, inclusive on both
		// ends of the window.
		if booking.Status == entity.BookingStatusCancelled &&
			!booking.CheckIn.Before(start) && !booking.CheckIn.After(end) {
			report.CancelledBookings++
		}
	}

	roomCount, err := s.repo.Room.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count rooms for report", zap.Error(err))
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	windowNights := int(end.Sub(start).Hours() / 24)
	report.TotalNights = int(roomCount) * windowNights

	if report.TotalNights > 0 {
		report.OccupancyRate = float64(report.OccupiedNights) / float64(report.TotalNights) * 100
	}

	s.log.Info("Occupancy report generated",
		zap.String("start", report.Start),
		zap.String("end", report.End),
		zap.Float64("total_revenue", report.TotalRevenue),
		zap.Int("occupied_nights", report.OccupiedNights),
		zap.Float64("occupancy_rate", report.OccupancyRate),
	)

	return report, nil
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
