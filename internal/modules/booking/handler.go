package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carservice/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/check-customer", h.CheckCustomer)
	rg.POST("/create-customer", h.CreateCustomer)
	rg.POST("/availability", h.Availability)
	rg.POST("/book-appointment", h.CreateBooking)
	rg.POST("/cancel-appointment", h.CancelBooking)
}

func (h *Handler) CheckCustomer(c *gin.Context) {
	var req CheckCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CheckCustomer(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		switch err {
		case ErrCustomerNotFound:
			response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "No record matches that phone number")
		case ErrNoVehicles:
			response.Error(c, http.StatusNotFound, "NO_VEHICLES", "No vehicle information on this profile")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check customer")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrDuplicateVehicle:
			response.Error(c, http.StatusConflict, "DUPLICATE_VEHICLE", "This registration number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create customer")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Availability(c.Request.Context(), req.PreferredDate)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid preferred date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment date")
		case ErrSlotUnavailable:
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "The selected slot is no longer available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to book appointment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Appointment confirmed successfully!",
		"booking": gin.H{
			"id":     b.ID,
			"status": b.Status,
		},
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	_, err := h.service.CancelBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment date")
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "No active booking with that registration number and date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel appointment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Your appointment has been successfully cancelled.",
	})
}
