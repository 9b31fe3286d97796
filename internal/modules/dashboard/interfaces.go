package dashboard

import (
	"context"
	"time"

	"carservice/internal/domain"
	"carservice/internal/repository"
)

// BookingStatsRepository defines the interface for the booking queries the
// dashboard is built from
type BookingStatsRepository interface {
	CountByStatus(ctx context.Context, from, to time.Time, status domain.BookingStatus) (int, error)
	ListForDayWithCustomer(ctx context.Context, day time.Time) ([]repository.BookingWithCustomer, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}
