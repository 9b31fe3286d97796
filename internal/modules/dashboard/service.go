package dashboard

import (
	"context"
	"time"

	"carservice/internal/analytics"
	"carservice/internal/domain"
)

type Service struct {
	bookings BookingStatsRepository
	now      func() time.Time
}

func NewService(bookings BookingStatsRepository) *Service {
	return &Service{
		bookings: bookings,
		now:      time.Now,
	}
}

// Stats builds the raw dashboard payload for the current clock: the four
// headline counters, today's booking table, the sparse per-day chart for the
// current month and the twelve-month breakdown for the current year.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -6)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	nextYear := yearStart.AddDate(1, 0, 0)

	daily, err := s.bookings.CountByStatus(ctx, today, tomorrow, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	weekly, err := s.bookings.CountByStatus(ctx, weekStart, tomorrow, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	monthly, err := s.bookings.CountByStatus(ctx, monthStart, nextMonth, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	cancellations, err := s.bookings.CountByStatus(ctx, monthStart, nextMonth, domain.BookingCancelled)
	if err != nil {
		return nil, err
	}

	rows, err := s.bookings.ListForDayWithCustomer(ctx, today)
	if err != nil {
		return nil, err
	}
	todaysList := make([]domain.BookingDetail, 0, len(rows))
	for _, r := range rows {
		todaysList = append(todaysList, domain.BookingDetail{
			CustomerName:    r.CustomerName,
			Vehicle:         r.RegistrationNo,
			AppointmentDate: analytics.FormatDateKey(r.AppointmentDate),
			Status:          r.Status,
		})
	}

	yearBookings, err := s.bookings.ListBetween(ctx, yearStart, nextYear)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		DailyBookings:        &daily,
		WeeklyBookings:       &weekly,
		MonthlyBookings:      &monthly,
		TotalCancellations:   &cancellations,
		TodaysBookingsList:   todaysList,
		DailyBookingsChart:   dailyChart(yearBookings, monthStart, nextMonth),
		YearlyBreakdownChart: yearlyBreakdown(yearBookings),
	}, nil
}

// Series runs the aggregation layer on a freshly built payload, giving the
// renderer the dense month series and validated breakdown.
func (s *Service) Series(ctx context.Context) (*analytics.Report, error) {
	payload, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Aggregate(s.now().UTC(), payload)
}

// dailyChart buckets confirmed bookings of the current month by date key.
// The map stays sparse; the aggregation layer densifies it.
func dailyChart(bookings []domain.Booking, monthStart, nextMonth time.Time) map[string]int {
	chart := make(map[string]int)
	for _, b := range bookings {
		if b.Status != domain.BookingConfirmed {
			continue
		}
		if b.AppointmentDate.Before(monthStart) || !b.AppointmentDate.Before(nextMonth) {
			continue
		}
		chart[analytics.FormatDateKey(b.AppointmentDate)]++
	}
	return chart
}

// yearlyBreakdown always emits twelve entries, Jan through Dec, zero-filled
// for months with no data, so the chart never renders a gap and the order is
// chronological by construction.
func yearlyBreakdown(bookings []domain.Booking) []domain.MonthlyBreakdown {
	out := make([]domain.MonthlyBreakdown, 12)
	for m := time.January; m <= time.December; m++ {
		out[m-1] = domain.MonthlyBreakdown{Month: m.String()[:3]}
	}
	for _, b := range bookings {
		e := &out[b.AppointmentDate.Month()-1]
		switch b.Status {
		case domain.BookingConfirmed:
			e.Bookings++
		case domain.BookingCancelled:
			e.Cancellations++
		}
	}
	return out
}
