package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingPending   BookingStatus = "Pending"
)

type Booking struct {
	ID              int64         `json:"id" gorm:"column:booking_id;primaryKey"`
	CustomerID      string        `json:"customer_id" validate:"required"`
	RegistrationNo  string        `json:"registration_no" validate:"required"`
	ServiceCenterID string        `json:"sc_id" gorm:"column:sc_id" validate:"required"`
	AppointmentDate time.Time     `json:"appointment_date" validate:"required"`
	Status          BookingStatus `json:"status" gorm:"column:appointment_status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
