package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConvertsAmountToKobo(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		require.Equal(t, "Bearer sk_test_x", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"status":true,"message":"ok","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"LP-2026-AB12CD"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_x")
	resp, err := c.Initialize(context.Background(), InitializeRequest{
		Email:       "client@example.com",
		Amount:      50000,
		Currency:    "NGN",
		Reference:   "LP-2026-AB12CD",
		CallbackURL: "https://example.com/consultations/verify",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.AccessCode)
	assert.Equal(t, "https://checkout.paystack.com/abc", resp.AuthorizationURL)
	assert.Equal(t, float64(5000000), got["amount"])
	assert.Equal(t, "https://example.com/consultations/verify", got["callback_url"])
}

func TestVerifyReturnsGatewayState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/verify/LP-2026-AB12CD", r.URL.Path)
		w.Write([]byte(`{"status":true,"message":"ok","data":{"status":"success","amount":5000000,"currency":"NGN","channel":"card","reference":"LP-2026-AB12CD"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_x")
	resp, err := c.Verify(context.Background(), "LP-2026-AB12CD")
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(5000000), resp.Amount)
	assert.Equal(t, "card", resp.Channel)
}

func TestVerifyErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_x")
	_, err := c.Verify(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transaction reference not found")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bank", r.URL.Path)
		require.Equal(t, "Bearer sk_test_x", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":true,"message":"Banks retrieved","data":[]}`))
	}))

	c := NewClient(srv.URL, "sk_test_x")
	assert.NoError(t, c.Ping(context.Background()))

	srv.Close()
	assert.Error(t, c.Ping(context.Background()))
}

func TestValidateWebhookSignature(t *testing.T) {
	c := NewClient("https://api.paystack.co", "sk_test_x")
	body := []byte(`{"event":"charge.success","data":{"reference":"LP-2026-AB12CD"}}`)

	mac := hmac.New(sha512.New, []byte("sk_test_x"))
	mac.Write(body)
	sig := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, c.ValidateWebhookSignature(body, sig))
	assert.False(t, c.ValidateWebhookSignature(body, "deadbeef"))
	assert.False(t, c.ValidateWebhookSignature([]byte(`tampered`), sig))
}
