package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"lightfield/config"
	consultationRepo "lightfield/database/repository/consultation"
	"lightfield/models"
	"lightfield/services/paystack"
	"lightfield/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gateway is the slice of the payment client the booking flow needs.
type Gateway interface {
	Initialize(ctx context.Context, req paystack.InitializeRequest) (*paystack.InitializeResponse, error)
	Verify(ctx context.Context, reference string) (*paystack.VerifyResponse, error)
}

// Mailer sends booking notification emails.
type Mailer interface {
	SendBookingConfirmation(b *models.ConsultationBooking) error
	SendAdminNotification(b *models.ConsultationBooking) error
}

// Service orchestrates consultation bookings and their payments.
type Service struct {
	Bookings consultationRepo.BookingRepository
	Services consultationRepo.ServiceRepository
	Gateway  Gateway
	Mailer   Mailer
}

// Flow errors surfaced to handlers for status-code mapping.
var (
	ErrValidation     = errors.New("invalid booking request")
	ErrNotFound       = errors.New("booking not found")
	ErrGatewayFailure = errors.New("payment gateway failure")
	ErrNotSuccessful  = errors.New("payment not successful")
	ErrAmountMismatch = errors.New("payment amount mismatch")
	ErrBadTransition  = errors.New("invalid status transition")
)

// CreateRequest is the public booking payload.
type CreateRequest struct {
	ServiceSlug              string `json:"service_slug"`
	CustomServiceDescription string `json:"custom_service_description"`
	ClientName               string `json:"client_name" binding:"required"`
	ClientEmail              string `json:"client_email" binding:"required,email"`
	ClientPhone              string `json:"client_phone"`
	ClientCompany            string `json:"client_company"`
	PreferredDate            string `json:"preferred_date" binding:"required"` // "YYYY-MM-DD"
	PreferredTime            string `json:"preferred_time" binding:"required"` // "HH:MM"
	Notes                    string `json:"notes"`
}

// CreateResponse hands the client everything needed to reach hosted checkout.
type CreateResponse struct {
	Reference        string `json:"reference"`
	AccessCode       string `json:"access_code"`
	AuthorizationURL string `json:"authorization_url"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
}

// StatusPayload is the public view of a booking, keyed by reference.
type StatusPayload struct {
	Reference       string `json:"reference"`
	Status          string `json:"status"`
	ServiceName     string `json:"service_name,omitempty"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	PreferredDate   string `json:"preferred_date"`
	PreferredTime   string `json:"preferred_time"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	PaymentVerified bool   `json:"payment_verified"`
	CreatedAt       string `json:"created_at"`
}

// NewReference mints a shareable booking reference like "LP-2026-A3F91C".
func NewReference(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		id := uuid.New()
		copy(buf, id[:])
	}
	return fmt.Sprintf("LP-%d-%s", now.Year(), strings.ToUpper(hex.EncodeToString(buf)))
}

// Create validates the request, persists a pending booking and initializes
// hosted checkout. The booking is removed again if the gateway call fails.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*CreateResponse, error) {
	logger := utils.GetLogger()

	if req.ServiceSlug == "" && strings.TrimSpace(req.CustomServiceDescription) == "" {
		return nil, fmt.Errorf("%w: either a service or a description of your matter is required", ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		return nil, fmt.Errorf("%w: preferred_date must be YYYY-MM-DD", ErrValidation)
	}
	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, fmt.Errorf("%w: preferred_date must not be in the past", ErrValidation)
	}

	amount := config.AppConfig.DefaultConsultationFee
	currency := config.AppConfig.DefaultCurrency
	var serviceID, serviceName string
	if req.ServiceSlug != "" {
		svc, err := s.Services.GetBySlug(req.ServiceSlug)
		if err != nil {
			return nil, err
		}
		if svc == nil || !svc.IsActive {
			return nil, fmt.Errorf("%w: unknown consultation service", ErrValidation)
		}
		serviceID = svc.ID
		serviceName = svc.Name
		amount = svc.Price
		if svc.Currency != "" {
			currency = svc.Currency
		}
	}

	b := &models.ConsultationBooking{
		ID:                       uuid.New().String(),
		Reference:                NewReference(time.Now()),
		ServiceID:                serviceID,
		ServiceName:              serviceName,
		CustomServiceDescription: strings.TrimSpace(req.CustomServiceDescription),
		ClientName:               req.ClientName,
		ClientEmail:              req.ClientEmail,
		ClientPhone:              req.ClientPhone,
		ClientCompany:            req.ClientCompany,
		PreferredDate:            req.PreferredDate,
		PreferredTime:            req.PreferredTime,
		Notes:                    req.Notes,
		Amount:                   amount,
		Currency:                 currency,
		Status:                   models.BookingPendingPayment,
	}
	if err := s.Bookings.Create(b); err != nil {
		return nil, err
	}

	init, err := s.Gateway.Initialize(ctx, paystack.InitializeRequest{
		Email:       b.ClientEmail,
		Amount:      b.Amount,
		Currency:    b.Currency,
		Reference:   b.Reference,
		CallbackURL: config.AppConfig.PaystackCallbackURL,
	})
	if err != nil {
		// A booking without a checkout handle is unrecoverable; drop it.
		if delErr := s.Bookings.Delete(b.ID); delErr != nil {
			logger.Error("Failed to clean up booking after gateway failure",
				zap.String("reference", b.Reference), zap.Error(delErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	b.PaystackAccessCode = init.AccessCode
	if err := s.Bookings.Update(b); err != nil {
		logger.Error("Failed to store access code", zap.String("reference", b.Reference), zap.Error(err))
	}

	logger.Info("Booking created", zap.String("reference", b.Reference), zap.Int64("amount", b.Amount))
	return &CreateResponse{
		Reference:        b.Reference,
		AccessCode:       init.AccessCode,
		AuthorizationURL: init.AuthorizationURL,
		Amount:           b.Amount,
		Currency:         b.Currency,
	}, nil
}

// VerifyPayment confirms a transaction with the gateway and marks the booking
// paid. Safe to call repeatedly: an already verified booking returns at once.
func (s *Service) VerifyPayment(ctx context.Context, reference string) (*StatusPayload, error) {
	logger := utils.GetLogger()

	b, err := s.Bookings.GetByReference(reference)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.PaymentVerified {
		return s.statusPayload(b), nil
	}

	verified, err := s.Gateway.Verify(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	if verified.Status != "success" {
		return nil, fmt.Errorf("%w: gateway status %q", ErrNotSuccessful, verified.Status)
	}
	if verified.Amount != b.Amount*100 {
		logger.Warn("Payment amount mismatch",
			zap.String("reference", reference),
			zap.Int64("expected", b.Amount*100),
			zap.Int64("got", verified.Amount))
		return nil, ErrAmountMismatch
	}

	return s.markPaid(b, verified.Channel)
}

// HandleWebhookCharge processes a charge.success delivery. Idempotent.
func (s *Service) HandleWebhookCharge(event paystack.WebhookEvent) error {
	if event.Event != "charge.success" {
		return nil
	}
	b, err := s.Bookings.GetByReference(event.Data.Reference)
	if err != nil {
		return err
	}
	if b == nil || b.PaymentVerified {
		return nil
	}
	if event.Data.Amount != b.Amount*100 {
		utils.GetLogger().Warn("Webhook amount mismatch", zap.String("reference", b.Reference))
		return nil
	}
	_, err = s.markPaid(b, event.Data.Channel)
	return err
}

func (s *Service) markPaid(b *models.ConsultationBooking, channel string) (*StatusPayload, error) {
	logger := utils.GetLogger()

	now := time.Now()
	b.PaymentVerified = true
	b.PaymentVerifiedAt = &now
	b.PaymentChannel = channel
	b.Status = models.BookingPaid
	if err := s.Bookings.Update(b); err != nil {
		return nil, err
	}

	// Emails are best effort; verification already succeeded.
	if s.Mailer != nil {
		if err := s.Mailer.SendBookingConfirmation(b); err != nil {
			logger.Warn("Failed to send booking confirmation", zap.String("reference", b.Reference), zap.Error(err))
		}
		if err := s.Mailer.SendAdminNotification(b); err != nil {
			logger.Warn("Failed to send admin notification", zap.String("reference", b.Reference), zap.Error(err))
		}
	}

	logger.Info("Payment verified", zap.String("reference", b.Reference), zap.String("channel", channel))
	return s.statusPayload(b), nil
}

// Status returns the public payload for a reference.
func (s *Service) Status(reference string) (*StatusPayload, error) {
	b, err := s.Bookings.GetByReference(reference)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return s.statusPayload(b), nil
}

// AdminUpdate mutates a booking from the dashboard: status transitions are
// validated against the lifecycle table, notes and assignment are free-form.
type AdminUpdate struct {
	Status              *string `json:"status"`
	AdminNotes          *string `json:"admin_notes"`
	AssignedAssociateID *string `json:"assigned_associate_id"`
}

// ApplyAdminUpdate applies an admin mutation to a booking by ID.
func (s *Service) ApplyAdminUpdate(id string, update AdminUpdate) (*models.ConsultationBooking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if update.Status != nil && *update.Status != b.Status {
		if !models.IsValidBookingStatus(*update.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *update.Status)
		}
		if !models.CanTransitionBooking(b.Status, *update.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, b.Status, *update.Status)
		}
		b.Status = *update.Status
	}
	if update.AdminNotes != nil {
		b.AdminNotes = *update.AdminNotes
	}
	if update.AssignedAssociateID != nil {
		b.AssignedAssociateID = *update.AssignedAssociateID
	}

	if err := s.Bookings.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) statusPayload(b *models.ConsultationBooking) *StatusPayload {
	return &StatusPayload{
		Reference:       b.Reference,
		Status:          b.Status,
		ServiceName:     b.ServiceName,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		PreferredDate:   b.PreferredDate,
		PreferredTime:   b.PreferredTime,
		Amount:          b.Amount,
		Currency:        b.Currency,
		PaymentVerified: b.PaymentVerified,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
