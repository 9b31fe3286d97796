package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNoVehicles       = errors.New("customer has no vehicles")
	ErrDuplicateVehicle = errors.New("vehicle already registered")
	ErrSlotUnavailable  = errors.New("no slot available")
	ErrBookingNotFound  = errors.New("active booking not found")
)
