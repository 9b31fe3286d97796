package domain

import "time"

type Customer struct {
	ID          string    `json:"customer_id" gorm:"column:customer_id;primaryKey"`
	FullName    string    `json:"full_name" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`

	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:CustomerID"`
}

type Vehicle struct {
	RegistrationNo string `json:"registration_no" gorm:"column:registration_no;primaryKey"`
	CustomerID     string `json:"customer_id" gorm:"column:customer_id"`
	Make           string `json:"make"`
	Model          string `json:"model"`
}
