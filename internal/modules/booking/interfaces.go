package booking

import (
	"context"
	"time"

	"carservice/internal/domain"
	"carservice/internal/repository"
)

// CustomerRepository defines the interface for customer lookup and creation
type CustomerRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	GetVehicles(ctx context.Context, customerID string) ([]domain.Vehicle, error)
	LastCustomerID(ctx context.Context) (string, error)
	CreateWithVehicle(ctx context.Context, c *domain.Customer, registrationNo string) error
}

// AppointmentRepository defines the interface for slot capacity operations
type AppointmentRepository interface {
	AvailableOn(ctx context.Context, day time.Time) ([]repository.OpenSlot, error)
	ReserveSlot(ctx context.Context, scID string, day time.Time) (bool, error)
	ReleaseSlot(ctx context.Context, scID string, day time.Time) error
}

// BookingRepository defines the interface for booking records
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindActive(ctx context.Context, registrationNo string, day time.Time) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}
