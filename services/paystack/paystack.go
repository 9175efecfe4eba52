package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Paystack transaction API.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

// NewClient builds a Paystack client with a sane request timeout.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		SecretKey:  secretKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// InitializeRequest is the payload for starting a hosted checkout.
// Amount is in the major currency unit; it is converted to the
// smallest unit (kobo) on the wire.
type InitializeRequest struct {
	Email       string
	Amount      int64
	Currency    string
	Reference   string
	CallbackURL string
}

// InitializeResponse carries the hosted checkout handle returned by Paystack.
type InitializeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyResponse is the subset of the verify payload the booking flow needs.
type VerifyResponse struct {
	Status    string `json:"status"`     // gateway transaction status, e.g. "success"
	Amount    int64  `json:"amount"`     // smallest currency unit
	Currency  string `json:"currency"`
	Channel   string `json:"channel"`
	Reference string `json:"reference"`
	PaidAt    string `json:"paid_at"`
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize starts a transaction and returns the hosted checkout handle.
func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":        req.Email,
		"amount":       req.Amount * 100, // major unit to kobo
		"currency":     req.Currency,
		"reference":    req.Reference,
		"callback_url": req.CallbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build initialize request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	envelope, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var out InitializeResponse
	if err := json.Unmarshal(envelope.Data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode initialize response: %w", err)
	}
	return &out, nil
}

// Verify fetches the transaction state for a reference.
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verify request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)

	envelope, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var out VerifyResponse
	if err := json.Unmarshal(envelope.Data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}
	return &out, nil
}

func (c *Client) do(req *http.Request) (*apiEnvelope, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read paystack response: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode paystack response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 400 || !envelope.Status {
		return nil, fmt.Errorf("paystack error (%d): %s", resp.StatusCode, envelope.Message)
	}
	return &envelope, nil
}

// Ping reports whether the Paystack API is reachable. Any HTTP response
// counts; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/bank?perPage=1", nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

// ValidateWebhookSignature checks the HMAC-SHA512 signature Paystack sends
// in the X-Paystack-Signature header against the raw request body.
func (c *Client) ValidateWebhookSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.SecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// WebhookEvent is the envelope of a Paystack webhook delivery.
type WebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"` // smallest currency unit
		Channel   string `json:"channel"`
	} `json:"data"`
}
