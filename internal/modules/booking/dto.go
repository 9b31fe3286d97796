package booking

type CheckCustomerRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type VehicleResponse struct {
	Make           string `json:"make"`
	Model          string `json:"model"`
	RegistrationNo string `json:"registration_no"`
}

type CheckCustomerResponse struct {
	CustomerID string            `json:"customer_id"`
	Vehicles   []VehicleResponse `json:"vehicles"`
}

type CreateCustomerRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	RegistrationNo string `json:"registration_no" binding:"required"`
}

type CreateCustomerResponse struct {
	Message        string `json:"message"`
	CustomerID     string `json:"customer_id"`
	RegistrationNo string `json:"registration_no"`
}

type AvailabilityRequest struct {
	PreferredDate string `json:"preferred_date" binding:"required"`
}

type AvailabilityResponse struct {
	Date              string `json:"date"`
	ServiceCenterID   string `json:"sc_id"`
	ServiceCenterName string `json:"service_center_name"`
}

type CreateBookingRequest struct {
	CustomerID      string `json:"customer_id" binding:"required"`
	RegistrationNo  string `json:"registration_no" binding:"required"`
	ServiceCenterID string `json:"sc_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
}

type CancelBookingRequest struct {
	RegistrationNo  string `json:"registration_no" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
}
