package client

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	calls   int
	lastRef string
	booking *Booking
	err     error
}

func (f *fakeVerifier) VerifyPayment(ctx context.Context, reference string) (*Booking, error) {
	f.calls++
	f.lastRef = reference
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func TestVerificationSuccessNavigatesAfterDelay(t *testing.T) {
	api := &fakeVerifier{booking: &Booking{Reference: "LP-2026-A1B2C3", Status: "paid"}}
	navigated := make(chan string, 1)

	m := NewPaymentVerification(api, func(ref string) { navigated <- ref })
	m.delay = 10 * time.Millisecond

	m.Start(context.Background(), url.Values{"reference": {"LP-2026-A1B2C3"}})

	assert.Equal(t, StateVerified, m.State())
	assert.Equal(t, 1, api.calls)
	require.NotNil(t, m.Booking())
	assert.Equal(t, "paid", m.Booking().Status)

	select {
	case ref := <-navigated:
		assert.Equal(t, "LP-2026-A1B2C3", ref)
	case <-time.After(time.Second):
		t.Fatal("navigate callback never fired")
	}
}

func TestVerificationAcceptsTrxrefParameter(t *testing.T) {
	api := &fakeVerifier{booking: &Booking{Reference: "LP-2026-D4E5F6"}}
	m := NewPaymentVerification(api, nil)

	m.Start(context.Background(), url.Values{"trxref": {"LP-2026-D4E5F6"}})

	assert.Equal(t, StateVerified, m.State())
	assert.Equal(t, "LP-2026-D4E5F6", api.lastRef)
}

func TestVerificationWithoutReferenceIsTerminal(t *testing.T) {
	api := &fakeVerifier{}
	m := NewPaymentVerification(api, nil)

	m.Start(context.Background(), url.Values{})

	assert.Equal(t, StateInvalidRequest, m.State())
	assert.Zero(t, api.calls)

	// Retry has nothing to re-issue from here.
	m.Retry(context.Background())
	assert.Equal(t, StateInvalidRequest, m.State())
	assert.Zero(t, api.calls)
}

func TestVerificationCallsExactlyOnceAcrossRepeatedStarts(t *testing.T) {
	api := &fakeVerifier{booking: &Booking{Reference: "LP-2026-ABCDEF"}}
	m := NewPaymentVerification(api, nil)

	query := url.Values{"reference": {"LP-2026-ABCDEF"}}
	m.Start(context.Background(), query)
	m.Start(context.Background(), query)
	m.Start(context.Background(), query)

	assert.Equal(t, 1, api.calls)
}

func TestVerificationFailureRequiresManualRetry(t *testing.T) {
	api := &fakeVerifier{err: errors.New("gateway timeout")}
	m := NewPaymentVerification(api, nil)

	m.Start(context.Background(), url.Values{"reference": {"LP-2026-AA11BB"}})

	assert.Equal(t, StateVerificationFailed, m.State())
	assert.Equal(t, 1, api.calls)
	assert.Error(t, m.Err())

	// No automatic retries happen; only an explicit Retry re-enters.
	api.err = nil
	api.booking = &Booking{Reference: "LP-2026-AA11BB", Status: "paid"}
	m.Retry(context.Background())

	assert.Equal(t, StateVerified, m.State())
	assert.Equal(t, 2, api.calls)
	assert.NoError(t, m.Err())
}

func TestRetryIsNoOpAfterSuccess(t *testing.T) {
	api := &fakeVerifier{booking: &Booking{Reference: "LP-2026-CC22DD"}}
	m := NewPaymentVerification(api, nil)

	m.Start(context.Background(), url.Values{"reference": {"LP-2026-CC22DD"}})
	m.Retry(context.Background())

	assert.Equal(t, 1, api.calls)
	assert.Equal(t, StateVerified, m.State())
}
