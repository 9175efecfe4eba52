package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBookingStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/consultations/booking/LP-2026-A1B2C3", r.URL.Path)
		json.NewEncoder(w).Encode(Booking{Reference: "LP-2026-A1B2C3", Status: "paid", Amount: 50000, Currency: "NGN"})
	}))
	defer srv.Close()

	b, err := NewClient(srv.URL).BookingStatus(context.Background(), "LP-2026-A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, "paid", b.Status)
	assert.Equal(t, int64(50000), b.Amount)
}

func TestClientBookingStatusNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Booking not found"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).BookingStatus(context.Background(), "LP-2026-000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientVerifyPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/consultations/verify-payment", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "LP-2026-A1B2C3", body["reference"])
		json.NewEncoder(w).Encode(Booking{Reference: body["reference"], Status: "paid", PaymentVerified: true})
	}))
	defer srv.Close()

	b, err := NewClient(srv.URL).VerifyPayment(context.Background(), "LP-2026-A1B2C3")
	require.NoError(t, err)
	assert.True(t, b.PaymentVerified)
}

func TestClientVerifyPaymentErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "Payment verification failed"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).VerifyPayment(context.Background(), "LP-2026-A1B2C3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Payment verification failed")
}

func TestClientCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/consultations/book", r.URL.Path)
		var req CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "general-consultation", req.ServiceSlug)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBookingResponse{
			Reference:        "LP-2026-9F8E7D",
			AuthorizationURL: "https://checkout.paystack.com/abc123",
			Amount:           50000,
			Currency:         "NGN",
		})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).CreateBooking(context.Background(), CreateBookingRequest{
		ServiceSlug:   "general-consultation",
		ClientName:    "Ada Obi",
		ClientEmail:   "ada@example.com",
		PreferredDate: "2026-09-15",
		PreferredTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "LP-2026-9F8E7D", resp.Reference)
	assert.Contains(t, resp.AuthorizationURL, "checkout.paystack.com")
}

func TestClientChatStreamsChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["message"])

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Session-Id", "session-abc")
		flusher := w.(http.Flusher)
		for _, chunk := range []string{"Hel", "lo ", "there"} {
			w.Write([]byte(chunk))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	var got strings.Builder
	sessionID, err := NewClient(srv.URL).Chat(context.Background(), "hello", "", func(chunk string) {
		got.WriteString(chunk)
	})
	require.NoError(t, err)
	assert.Equal(t, "session-abc", sessionID)
	assert.Equal(t, "Hello there", got.String())
}

func TestClientChatNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Message must not be empty"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Chat(context.Background(), "", "", func(string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Message must not be empty")
}
