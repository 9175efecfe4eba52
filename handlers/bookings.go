package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	consultationRepo "lightfield/database/repository/consultation"
	"lightfield/services/booking"
	"lightfield/services/paystack"
	"lightfield/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaystackWebhookValidator checks webhook deliveries; wired from main.
var PaystackWebhookValidator interface {
	ValidateWebhookSignature(body []byte, signature string) bool
}

// CreateBooking creates a consultation booking and initializes hosted checkout.
func CreateBooking(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	resp, err := BookingService.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		case errors.Is(err, booking.ErrGatewayFailure):
			utils.JSONError(c, http.StatusBadGateway, "Payment initialization failed", "Please try again in a moment.")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// VerifyPayment confirms a payment by reference. Idempotent.
func VerifyPayment(c *gin.Context) {
	var input struct {
		Reference string `json:"reference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	payload, err := BookingService.VerifyPayment(c.Request.Context(), input.Reference)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case errors.Is(err, booking.ErrNotSuccessful), errors.Is(err, booking.ErrAmountMismatch):
			utils.JSONError(c, http.StatusBadRequest, "Payment verification failed", err.Error())
		case errors.Is(err, booking.ErrGatewayFailure):
			utils.JSONError(c, http.StatusBadGateway, "Payment verification failed", "Could not reach the payment provider.")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Payment verification failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, payload)
}

// PaystackWebhook handles charge notifications. The signature is checked
// against the raw body before anything is parsed.
func PaystackWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	signature := c.GetHeader("X-Paystack-Signature")
	if PaystackWebhookValidator == nil || !PaystackWebhookValidator.ValidateWebhookSignature(body, signature) {
		utils.GetLogger().Warn("Rejected webhook with bad signature")
		c.Status(http.StatusUnauthorized)
		return
	}

	var event paystack.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := BookingService.HandleWebhookCharge(event); err != nil {
		utils.GetLogger().Error("Webhook processing failed",
			zap.String("reference", event.Data.Reference), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// GetBookingStatus is the public status lookup by reference.
func GetBookingStatus(c *gin.Context) {
	payload, err := BookingService.Status(c.Param("reference"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, payload)
}

// ListBookings returns bookings for the admin dashboard.
func ListBookings(c *gin.Context) {
	filter := consultationRepo.BookingFilter{
		Status:      c.Query("status"),
		ClientEmail: c.Query("client_email"),
		DateFrom:    c.Query("date_from"),
		DateTo:      c.Query("date_to"),
	}
	bookings, err := BookingRepo.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": bookings, "count": len(bookings)})
}

// GetBooking returns one booking by ID for admins.
func GetBooking(c *gin.Context) {
	b, err := BookingRepo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBooking applies an admin mutation: status transition, notes, assignment.
func UpdateBooking(c *gin.Context) {
	var update booking.AdminUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, err := BookingService.ApplyAdminUpdate(c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case errors.Is(err, booking.ErrValidation), errors.Is(err, booking.ErrBadTransition):
			utils.JSONError(c, http.StatusBadRequest, "Invalid update", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// BookingStats returns booking volume and revenue aggregates.
func BookingStats(c *gin.Context) {
	stats, err := BookingRepo.Stats()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
