// Package client consumes the public LightField API: booking creation,
// payment verification, status lookup and the Solo streaming chat.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotFound marks a reference the backend does not know about.
var ErrNotFound = errors.New("booking not found")

// Booking is the public view of a booking as returned by the status and
// verification endpoints.
type Booking struct {
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

// CreateBookingRequest is the public booking submission payload.
type CreateBookingRequest struct {
	ServiceSlug              string `json:"service_slug,omitempty"`
	CustomServiceDescription string `json:"custom_service_description,omitempty"`
	ClientName               string `json:"client_name"`
	ClientEmail              string `json:"client_email"`
	ClientPhone              string `json:"client_phone,omitempty"`
	ClientCompany            string `json:"client_company,omitempty"`
	PreferredDate            string `json:"preferred_date"`
	PreferredTime            string `json:"preferred_time"`
	Notes                    string `json:"notes,omitempty"`
}

// CreateBookingResponse carries the reference and the hosted checkout handle.
type CreateBookingResponse struct {
	Reference        string `json:"reference"`
	AccessCode       string `json:"access_code"`
	AuthorizationURL string `json:"authorization_url"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
}

type apiError struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// Client talks to the LightField API over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client for the given base URL. No request timeout is
// set because the chat endpoint holds the connection open while streaming.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// CreateBooking submits a booking and returns the checkout handle.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	var resp CreateBookingResponse
	if err := c.postJSON(ctx, "/api/consultations/book", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPayment asks the backend to confirm payment for a reference.
func (c *Client) VerifyPayment(ctx context.Context, reference string) (*Booking, error) {
	body := map[string]string{"reference": reference}
	var b Booking
	if err := c.postJSON(ctx, "/api/consultations/verify-payment", body, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// BookingStatus fetches the current state of a booking by reference.
func (c *Client) BookingStatus(ctx context.Context, reference string) (*Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/api/consultations/booking/"+reference, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}
	var b Booking
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Chat sends one message to the Solo endpoint and feeds the chunked text
// response to onChunk as it arrives. It returns the X-Session-Id header
// value, which may be empty.
func (c *Client) Chat(ctx context.Context, message, sessionID string, onChunk func(chunk string)) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"message":    message,
		"session_id": sessionID,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/solo/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	serverSession := resp.Header.Get("X-Session-Id")
	if resp.StatusCode != http.StatusOK {
		return serverSession, readAPIError(resp)
	}

	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			onChunk(string(buf[:n]))
		}
		if err == io.EOF {
			return serverSession, nil
		}
		if err != nil {
			return serverSession, err
		}
	}
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func readAPIError(resp *http.Response) error {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode)
}
