package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"carservice/internal/analytics"
	"carservice/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	customers    CustomerRepository
	appointments AppointmentRepository
	bookings     BookingRepository
}

func NewService(
	customers CustomerRepository,
	appointments AppointmentRepository,
	bookings BookingRepository,
) *Service {
	return &Service{
		customers:    customers,
		appointments: appointments,
		bookings:     bookings,
	}
}

func (s *Service) CheckCustomer(ctx context.Context, phone string) (*CheckCustomerResponse, error) {
	c, err := s.customers.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	vehicles, err := s.customers.GetVehicles(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}

	out := &CheckCustomerResponse{CustomerID: c.ID, Vehicles: make([]VehicleResponse, 0, len(vehicles))}
	for _, v := range vehicles {
		out.Vehicles = append(out.Vehicles, VehicleResponse{
			Make:           v.Make,
			Model:          v.Model,
			RegistrationNo: v.RegistrationNo,
		})
	}
	return out, nil
}

func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CreateCustomerResponse, error) {
	lastID, err := s.customers.LastCustomerID(ctx)
	if err != nil {
		return nil, err
	}

	c := &domain.Customer{
		ID:          nextCustomerID(lastID),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	}

	if err := s.customers.CreateWithVehicle(ctx, c, req.RegistrationNo); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateVehicle
		}
		return nil, err
	}

	return &CreateCustomerResponse{
		Message:        "Registration successful! We can now proceed with booking your appointment.",
		CustomerID:     c.ID,
		RegistrationNo: req.RegistrationNo,
	}, nil
}

func (s *Service) Availability(ctx context.Context, dateStr string) ([]AvailabilityResponse, error) {
	day, err := parseDay(dateStr)
	if err != nil {
		return nil, ErrValidation
	}

	slots, err := s.appointments.AvailableOn(ctx, day)
	if err != nil {
		return nil, err
	}

	out := make([]AvailabilityResponse, 0, len(slots))
	for _, sl := range slots {
		out = append(out, AvailabilityResponse{
			Date:              analytics.FormatDateKey(sl.Date),
			ServiceCenterID:   sl.ServiceCenterID,
			ServiceCenterName: sl.ServiceCenterName,
		})
	}
	return out, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	day, err := parseDay(req.AppointmentDate)
	if err != nil {
		return nil, ErrValidation
	}

	ok, err := s.appointments.ReserveSlot(ctx, req.ServiceCenterID, day)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSlotUnavailable
	}

	b := &domain.Booking{
		CustomerID:      req.CustomerID,
		RegistrationNo:  req.RegistrationNo,
		ServiceCenterID: req.ServiceCenterID,
		AppointmentDate: day,
		Status:          domain.BookingConfirmed,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// Give back the slot so a failed insert does not leak capacity.
		_ = s.appointments.ReleaseSlot(ctx, req.ServiceCenterID, day)
		return nil, err
	}

	return b, nil
}

func (s *Service) CancelBooking(ctx context.Context, req CancelBookingRequest) (*domain.Booking, error) {
	day, err := parseDay(req.AppointmentDate)
	if err != nil {
		return nil, ErrValidation
	}

	b, err := s.bookings.FindActive(ctx, req.RegistrationNo, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled); err != nil {
		return nil, err
	}

	if err := s.appointments.ReleaseSlot(ctx, b.ServiceCenterID, day); err != nil {
		return nil, err
	}

	b.Status = domain.BookingCancelled
	return b, nil
}

func parseDay(dateStr string) (time.Time, error) {
	day, err := analytics.ParseDateKey(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC), nil
}

// nextCustomerID continues the C%03d sequence.
func nextCustomerID(lastID string) string {
	if lastID == "" {
		return "C001"
	}
	n, err := strconv.Atoi(strings.TrimPrefix(lastID, "C"))
	if err != nil {
		return "C001"
	}
	return fmt.Sprintf("C%03d", n+1)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}
