package booking

import (
	"context"
	"testing"
	"time"

	"carservice/internal/domain"
	"carservice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetVehicles(ctx context.Context, customerID string) ([]domain.Vehicle, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockCustomerRepository) LastCustomerID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCustomerRepository) CreateWithVehicle(ctx context.Context, c *domain.Customer, registrationNo string) error {
	args := m.Called(ctx, c, registrationNo)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) AvailableOn(ctx context.Context, day time.Time) ([]repository.OpenSlot, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OpenSlot), args.Error(1)
}

func (m *MockAppointmentRepository) ReserveSlot(ctx context.Context, scID string, day time.Time) (bool, error) {
	args := m.Called(ctx, scID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) ReleaseSlot(ctx context.Context, scID string, day time.Time) error {
	args := m.Called(ctx, scID, day)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) FindActive(ctx context.Context, registrationNo string, day time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, registrationNo, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func newTestService() (*Service, *MockCustomerRepository, *MockAppointmentRepository, *MockBookingRepository) {
	customers := new(MockCustomerRepository)
	appointments := new(MockAppointmentRepository)
	bookings := new(MockBookingRepository)
	return NewService(customers, appointments, bookings), customers, appointments, bookings
}

func TestService_CheckCustomer_Success(t *testing.T) {
	svc, customers, _, _ := newTestService()

	customers.On("GetByPhone", mock.Anything, "9876543210").
		Return(&domain.Customer{ID: "C007", FullName: "Priya Sharma", PhoneNumber: "9876543210"}, nil)
	customers.On("GetVehicles", mock.Anything, "C007").
		Return([]domain.Vehicle{{RegistrationNo: "MH14AB1234", Make: "Honda", Model: "City"}}, nil)

	res, err := svc.CheckCustomer(context.Background(), "9876543210")

	assert.NoError(t, err)
	assert.Equal(t, "C007", res.CustomerID)
	assert.Equal(t, []VehicleResponse{{Make: "Honda", Model: "City", RegistrationNo: "MH14AB1234"}}, res.Vehicles)
}

func TestService_CheckCustomer_NotFound(t *testing.T) {
	svc, customers, _, _ := newTestService()

	customers.On("GetByPhone", mock.Anything, "0000000000").Return(nil, gorm.ErrRecordNotFound)

	res, err := svc.CheckCustomer(context.Background(), "0000000000")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_CheckCustomer_NoVehicles(t *testing.T) {
	svc, customers, _, _ := newTestService()

	customers.On("GetByPhone", mock.Anything, "9876543210").
		Return(&domain.Customer{ID: "C007"}, nil)
	customers.On("GetVehicles", mock.Anything, "C007").Return([]domain.Vehicle{}, nil)

	res, err := svc.CheckCustomer(context.Background(), "9876543210")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoVehicles)
}

func TestService_CreateCustomer_ContinuesIDSequence(t *testing.T) {
	svc, customers, _, _ := newTestService()

	customers.On("LastCustomerID", mock.Anything).Return("C041", nil)
	customers.On("CreateWithVehicle", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.ID == "C042"
	}), "KA05CD6789").Return(nil)

	res, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		FullName:       "Arun Rao",
		PhoneNumber:    "9123456789",
		RegistrationNo: "KA05CD6789",
	})

	assert.NoError(t, err)
	assert.Equal(t, "C042", res.CustomerID)
	customers.AssertExpectations(t)
}

func TestService_CreateCustomer_FirstCustomer(t *testing.T) {
	svc, customers, _, _ := newTestService()

	customers.On("LastCustomerID", mock.Anything).Return("", nil)
	customers.On("CreateWithVehicle", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.ID == "C001"
	}), "KA05CD6789").Return(nil)

	res, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		FullName:       "Arun Rao",
		PhoneNumber:    "9123456789",
		RegistrationNo: "KA05CD6789",
	})

	assert.NoError(t, err)
	assert.Equal(t, "C001", res.CustomerID)
}

func TestService_CreateCustomer_DuplicateVehicle(t *testing.T) {
	svc, customers, _, _ := newTestService()

	customers.On("LastCustomerID", mock.Anything).Return("C001", nil)
	customers.On("CreateWithVehicle", mock.Anything, mock.Anything, "MH14AB1234").
		Return(gorm.ErrDuplicatedKey)

	res, err := svc.CreateCustomer(context.Background(), CreateCustomerRequest{
		FullName:       "Arun Rao",
		PhoneNumber:    "9123456789",
		RegistrationNo: "MH14AB1234",
	})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrDuplicateVehicle)
}

func TestService_CreateBooking_Success(t *testing.T) {
	svc, _, appointments, bookings := newTestService()
	day := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

	appointments.On("ReserveSlot", mock.Anything, "SC01", day).Return(true, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		CustomerID:      "C007",
		RegistrationNo:  "MH14AB1234",
		ServiceCenterID: "SC01",
		AppointmentDate: "2025-11-20",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, day, b.AppointmentDate)
}

func TestService_CreateBooking_SlotGone(t *testing.T) {
	svc, _, appointments, bookings := newTestService()
	day := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

	appointments.On("ReserveSlot", mock.Anything, "SC01", day).Return(false, nil)

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		CustomerID:      "C007",
		RegistrationNo:  "MH14AB1234",
		ServiceCenterID: "SC01",
		AppointmentDate: "2025-11-20",
	})

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_BadDate(t *testing.T) {
	svc, _, _, _ := newTestService()

	b, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
		CustomerID:      "C007",
		RegistrationNo:  "MH14AB1234",
		ServiceCenterID: "SC01",
		AppointmentDate: "20-11-2025",
	})

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CancelBooking_Success(t *testing.T) {
	svc, _, appointments, bookings := newTestService()
	day := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

	bookings.On("FindActive", mock.Anything, "MH14AB1234", day).
		Return(&domain.Booking{ID: 5, ServiceCenterID: "SC01", AppointmentDate: day, Status: domain.BookingConfirmed}, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingCancelled).Return(nil)
	appointments.On("ReleaseSlot", mock.Anything, "SC01", day).Return(nil)

	b, err := svc.CancelBooking(context.Background(), CancelBookingRequest{
		RegistrationNo:  "MH14AB1234",
		AppointmentDate: "2025-11-20",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	appointments.AssertExpectations(t)
}

func TestService_CancelBooking_NotFound(t *testing.T) {
	svc, _, _, bookings := newTestService()
	day := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)

	bookings.On("FindActive", mock.Anything, "MH14AB1234", day).Return(nil, gorm.ErrRecordNotFound)

	b, err := svc.CancelBooking(context.Background(), CancelBookingRequest{
		RegistrationNo:  "MH14AB1234",
		AppointmentDate: "2025-11-20",
	})

	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
