package booking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"lightfield/config"
	consultationRepo "lightfield/database/repository/consultation"
	"lightfield/models"
	"lightfield/services/paystack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	byID map[string]*models.ConsultationBooking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[string]*models.ConsultationBooking)}
}

func (f *fakeBookingRepo) Create(b *models.ConsultationBooking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	f.byID[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByReference(reference string) (*models.ConsultationBooking, error) {
	for _, b := range f.byID {
		if b.Reference == reference {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.ConsultationBooking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) Update(b *models.ConsultationBooking) error {
	if _, ok := f.byID[b.ID]; !ok {
		return fmt.Errorf("booking with id %s not found", b.ID)
	}
	cp := *b
	f.byID[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeBookingRepo) List(consultationRepo.BookingFilter) ([]models.ConsultationBooking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Stats() (*consultationRepo.BookingStats, error) { return nil, nil }

type fakeServiceRepo struct {
	services map[string]*models.ConsultationService
}

func (f *fakeServiceRepo) GetBySlug(slug string) (*models.ConsultationService, error) {
	return f.services[slug], nil
}
func (f *fakeServiceRepo) GetAll(bool) ([]models.ConsultationService, error) { return nil, nil }

func (f *fakeServiceRepo) GetByID(string) (*models.ConsultationService, error) { return nil, nil }

func (f *fakeServiceRepo) GetFeatured() ([]models.ConsultationService, error) { return nil, nil }

func (f *fakeServiceRepo) Create(*models.ConsultationService) error { return nil }

func (f *fakeServiceRepo) Update(*models.ConsultationService) error { return nil }

func (f *fakeServiceRepo) Delete(string) error { return nil }

func (f *fakeServiceRepo) Reorder([]models.ReorderItem) error { return nil }

type fakeGateway struct {
	initErr     error
	verifyResp  *paystack.VerifyResponse
	verifyErr   error
	verifyCalls int
}

func (f *fakeGateway) Initialize(_ context.Context, req paystack.InitializeRequest) (*paystack.InitializeResponse, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	return &paystack.InitializeResponse{
		AuthorizationURL: "https://checkout.paystack.com/" + req.Reference,
		AccessCode:       "ac_" + req.Reference,
		Reference:        req.Reference,
	}, nil
}

func (f *fakeGateway) Verify(context.Context, string) (*paystack.VerifyResponse, error) {
	f.verifyCalls++
	return f.verifyResp, f.verifyErr
}

func newTestService(gw *fakeGateway) (*Service, *fakeBookingRepo) {
	config.AppConfig.DefaultConsultationFee = 50000
	config.AppConfig.DefaultCurrency = "NGN"
	repo := newFakeBookingRepo()
	return &Service{
		Bookings: repo,
		Services: &fakeServiceRepo{services: map[string]*models.ConsultationService{
			"corporate-law": {ID: "svc-1", Name: "Corporate Law", Slug: "corporate-law", Price: 75000, Currency: "NGN", IsActive: true},
		}},
		Gateway: gw,
	}, repo
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestNewReferenceFormat(t *testing.T) {
	ref := NewReference(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^LP-2026-[0-9A-F]{6}$`), ref)
}

func TestCreateUsesServicePrice(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	resp, err := svc.Create(context.Background(), CreateRequest{
		ServiceSlug:   "corporate-law",
		ClientName:    "Ada Obi",
		ClientEmail:   "ada@example.com",
		PreferredDate: futureDate(),
		PreferredTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(75000), resp.Amount)
	assert.NotEmpty(t, resp.AuthorizationURL)
	assert.NotEmpty(t, resp.Reference)
}

func TestCreateRequiresServiceOrDescription(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	_, err := svc.Create(context.Background(), CreateRequest{
		ClientName:    "Ada Obi",
		ClientEmail:   "ada@example.com",
		PreferredDate: futureDate(),
		PreferredTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateRejectsPastDate(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	_, err := svc.Create(context.Background(), CreateRequest{
		CustomServiceDescription: "Contract review",
		ClientName:               "Ada Obi",
		ClientEmail:              "ada@example.com",
		PreferredDate:            "2020-01-01",
		PreferredTime:            "10:00",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateDeletesBookingOnGatewayFailure(t *testing.T) {
	svc, repo := newTestService(&fakeGateway{initErr: errors.New("boom")})
	_, err := svc.Create(context.Background(), CreateRequest{
		CustomServiceDescription: "Contract review",
		ClientName:               "Ada Obi",
		ClientEmail:              "ada@example.com",
		PreferredDate:            futureDate(),
		PreferredTime:            "10:00",
	})
	assert.ErrorIs(t, err, ErrGatewayFailure)
	assert.Empty(t, repo.byID)
}

func createPending(t *testing.T, svc *Service) string {
	t.Helper()
	resp, err := svc.Create(context.Background(), CreateRequest{
		CustomServiceDescription: "Contract review",
		ClientName:               "Ada Obi",
		ClientEmail:              "ada@example.com",
		PreferredDate:            futureDate(),
		PreferredTime:            "10:00",
	})
	require.NoError(t, err)
	return resp.Reference
}

func TestVerifyPaymentHappyPath(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw)
	ref := createPending(t, svc)

	gw.verifyResp = &paystack.VerifyResponse{Status: "success", Amount: 50000 * 100, Channel: "card"}
	payload, err := svc.VerifyPayment(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaid, payload.Status)
	assert.True(t, payload.PaymentVerified)
}

func TestVerifyPaymentIsIdempotent(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newTestService(gw)
	ref := createPending(t, svc)

	gw.verifyResp = &paystack.VerifyResponse{Status: "success", Amount: 50000 * 100, Channel: "card"}
	_, err := svc.VerifyPayment(context.Background(), ref)
	require.NoError(t, err)
	_, err = svc.VerifyPayment(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, 1, gw.verifyCalls)
}

func TestVerifyPaymentRejectsNonSuccess(t *testing.T) {
	gw := &fakeGateway{verifyResp: &paystack.VerifyResponse{Status: "abandoned"}}
	svc, _ := newTestService(gw)
	ref := createPending(t, svc)

	_, err := svc.VerifyPayment(context.Background(), ref)
	assert.ErrorIs(t, err, ErrNotSuccessful)
}

func TestVerifyPaymentRejectsAmountMismatch(t *testing.T) {
	gw := &fakeGateway{verifyResp: &paystack.VerifyResponse{Status: "success", Amount: 100}}
	svc, _ := newTestService(gw)
	ref := createPending(t, svc)

	_, err := svc.VerifyPayment(context.Background(), ref)
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestVerifyPaymentUnknownReference(t *testing.T) {
	svc, _ := newTestService(&fakeGateway{})
	_, err := svc.VerifyPayment(context.Background(), "LP-2026-FFFFFF")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWebhookMarksPaidOnce(t *testing.T) {
	gw := &fakeGateway{}
	svc, repo := newTestService(gw)
	ref := createPending(t, svc)

	event := paystack.WebhookEvent{Event: "charge.success"}
	event.Data.Reference = ref
	event.Data.Amount = 50000 * 100
	event.Data.Channel = "bank"

	require.NoError(t, svc.HandleWebhookCharge(event))
	require.NoError(t, svc.HandleWebhookCharge(event))

	b, err := repo.GetByReference(ref)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPaid, b.Status)
	assert.True(t, b.PaymentVerified)
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	svc, repo := newTestService(&fakeGateway{})
	ref := createPending(t, svc)

	event := paystack.WebhookEvent{Event: "transfer.success"}
	event.Data.Reference = ref
	require.NoError(t, svc.HandleWebhookCharge(event))

	b, _ := repo.GetByReference(ref)
	assert.Equal(t, models.BookingPendingPayment, b.Status)
}

func TestApplyAdminUpdateValidatesTransitions(t *testing.T) {
	gw := &fakeGateway{verifyResp: &paystack.VerifyResponse{Status: "success", Amount: 50000 * 100}}
	svc, repo := newTestService(gw)
	ref := createPending(t, svc)
	_, err := svc.VerifyPayment(context.Background(), ref)
	require.NoError(t, err)

	var id string
	for bid := range repo.byID {
		id = bid
	}

	confirmed := models.BookingConfirmed
	b, err := svc.ApplyAdminUpdate(id, AdminUpdate{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)

	pending := models.BookingPendingPayment
	_, err = svc.ApplyAdminUpdate(id, AdminUpdate{Status: &pending})
	assert.ErrorIs(t, err, ErrBadTransition)
}
