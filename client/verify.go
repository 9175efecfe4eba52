package client

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// VerificationState is the phase of the payment verification flow.
type VerificationState string

const (
	StateIdle               VerificationState = "idle"
	StateVerifying          VerificationState = "verifying"
	StateVerified           VerificationState = "verified"
	StateVerificationFailed VerificationState = "verification_failed"
	StateInvalidRequest     VerificationState = "invalid_request"
)

// Verifier is the slice of the API client the verification flow needs.
type Verifier interface {
	VerifyPayment(ctx context.Context, reference string) (*Booking, error)
}

// PaymentVerification confirms a payment after the gateway redirects back.
// It issues exactly one automatic verification call per instance; after a
// failure only Retry re-enters verification. On success it waits a short
// display delay, then hands the reference to the navigate callback so the
// caller can route to the status view.
type PaymentVerification struct {
	api      Verifier
	navigate func(reference string)
	delay    time.Duration

	mu        sync.Mutex
	state     VerificationState
	reference string
	booking   *Booking
	started   bool
	lastErr   error
}

// NewPaymentVerification builds the machine with the standard 2 second
// confirmation delay before navigation.
func NewPaymentVerification(api Verifier, navigate func(reference string)) *PaymentVerification {
	return &PaymentVerification{
		api:      api,
		navigate: navigate,
		delay:    2 * time.Second,
		state:    StateIdle,
	}
}

// Start reads the gateway redirect query and runs the automatic verification
// attempt. The gateway names the parameter either "reference" or "trxref"
// depending on the redirect path; both are accepted. Without a reference the
// machine lands in a terminal invalid state and no call is made. Repeated
// Start invocations after the first are no-ops.
func (m *PaymentVerification) Start(ctx context.Context, query url.Values) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true

	reference := query.Get("reference")
	if reference == "" {
		reference = query.Get("trxref")
	}
	if reference == "" {
		m.state = StateInvalidRequest
		m.mu.Unlock()
		return
	}
	m.reference = reference
	m.mu.Unlock()

	m.verify(ctx)
}

// Retry re-issues the verification call. It only applies after a failure;
// in every other state it is a no-op.
func (m *PaymentVerification) Retry(ctx context.Context) {
	m.mu.Lock()
	if m.state != StateVerificationFailed {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.verify(ctx)
}

func (m *PaymentVerification) verify(ctx context.Context) {
	m.mu.Lock()
	m.state = StateVerifying
	reference := m.reference
	m.mu.Unlock()

	booking, err := m.api.VerifyPayment(ctx, reference)
	m.mu.Lock()
	if err != nil {
		m.state = StateVerificationFailed
		m.lastErr = err
		m.mu.Unlock()
		return
	}
	m.state = StateVerified
	m.booking = booking
	m.lastErr = nil
	m.mu.Unlock()

	if m.navigate != nil {
		time.AfterFunc(m.delay, func() { m.navigate(reference) })
	}
}

// State returns the current phase.
func (m *PaymentVerification) State() VerificationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Reference returns the reference extracted from the redirect query.
func (m *PaymentVerification) Reference() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reference
}

// Booking returns the verified booking, nil before a successful attempt.
func (m *PaymentVerification) Booking() *Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.booking
}

// Err returns the error from the most recent failed attempt.
func (m *PaymentVerification) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
