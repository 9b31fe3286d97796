package repository

import (
	"context"
	"time"

	"carservice/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:booking_id;primaryKey"`
	CustomerID      string     `gorm:"column:customer_id"`
	RegistrationNo  string     `gorm:"column:registration_no"`
	ServiceCenterID string     `gorm:"column:sc_id"`
	AppointmentDate time.Time  `gorm:"column:appointment_date"`
	Status          string     `gorm:"column:appointment_status"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		RegistrationNo:  m.RegistrationNo,
		ServiceCenterID: m.ServiceCenterID,
		AppointmentDate: m.AppointmentDate,
		Status:          domain.BookingStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CancelledAt:     m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		RegistrationNo:  b.RegistrationNo,
		ServiceCenterID: b.ServiceCenterID,
		AppointmentDate: b.AppointmentDate,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// FindActive returns the non-cancelled booking for a vehicle on a day, or
// gorm.ErrRecordNotFound.
func (r *BookingRepository) FindActive(ctx context.Context, registrationNo string, day time.Time) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("registration_no = ? AND appointment_date >= ? AND appointment_date < ? AND appointment_status <> ?",
			registrationNo, day, day.AddDate(0, 0, 1), string(domain.BookingCancelled)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	updates := map[string]any{"appointment_status": string(status)}
	if status == domain.BookingCancelled {
		now := time.Now()
		updates["cancelled_at"] = &now
	}
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booking_id = ?", bookingID).
		Updates(updates).
		Error
}

// CountByStatus counts bookings with the given status in [from, to).
func (r *BookingRepository) CountByStatus(ctx context.Context, from, to time.Time, status domain.BookingStatus) (int, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("appointment_date >= ? AND appointment_date < ? AND appointment_status = ?", from, to, string(status)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(cnt), nil
}

// BookingWithCustomer is one row of the today's-bookings table query.
type BookingWithCustomer struct {
	CustomerName    string    `gorm:"column:customer_name"`
	RegistrationNo  string    `gorm:"column:registration_no"`
	AppointmentDate time.Time `gorm:"column:appointment_date"`
	Status          string    `gorm:"column:appointment_status"`
}

func (r *BookingRepository) ListForDayWithCustomer(ctx context.Context, day time.Time) ([]BookingWithCustomer, error) {
	var rows []BookingWithCustomer
	q := `
SELECT c.full_name AS customer_name, b.registration_no, b.appointment_date, b.appointment_status
FROM bookings b
JOIN customers c ON b.customer_id = c.customer_id
WHERE b.appointment_date >= ? AND b.appointment_date < ?
ORDER BY b.appointment_date
`
	tx := r.db.WithContext(ctx).Raw(q, day, day.AddDate(0, 0, 1)).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// ListBetween returns every booking in [from, to), oldest first. The
// dashboard service buckets these into its chart series.
func (r *BookingRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date < ?", from, to).
		Order("appointment_date").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
