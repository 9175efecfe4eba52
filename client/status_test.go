package client

import (
	"context"
	"errors"
	"testing"

	"lightfield/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	booking *Booking
	err     error
}

func (f *fakeFetcher) BookingStatus(ctx context.Context, reference string) (*Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type fakeClipboard struct {
	written string
}

func (f *fakeClipboard) WriteText(text string) error {
	f.written = text
	return nil
}

func TestStatusViewLoadsBooking(t *testing.T) {
	api := &fakeFetcher{booking: &Booking{
		Reference: "LP-2026-A1B2C3",
		Status:    models.BookingPendingPayment,
	}}
	v := NewStatusView(api, nil)
	assert.Equal(t, ViewLoading, v.State())

	v.Load(context.Background(), "LP-2026-A1B2C3")

	assert.Equal(t, ViewReady, v.State())
	require.NotNil(t, v.Booking())

	p, ok := v.Presentation()
	require.True(t, ok)
	assert.Equal(t, "Pending Payment", p.Label)
	assert.True(t, p.Spinner)
}

func TestStatusViewUnknownReference(t *testing.T) {
	v := NewStatusView(&fakeFetcher{err: ErrNotFound}, nil)

	v.Load(context.Background(), "LP-2026-000000")

	assert.Equal(t, ViewError, v.State())
	assert.True(t, v.NotFound())
	assert.Nil(t, v.Booking())
}

func TestStatusViewTransientErrorIsNotNotFound(t *testing.T) {
	v := NewStatusView(&fakeFetcher{err: errors.New("connection refused")}, nil)

	v.Load(context.Background(), "LP-2026-A1B2C3")

	assert.Equal(t, ViewError, v.State())
	assert.False(t, v.NotFound())
}

func TestPresentationCoversEveryStatus(t *testing.T) {
	statuses := []string{
		models.BookingPendingPayment,
		models.BookingPaid,
		models.BookingConfirmed,
		models.BookingCompleted,
		models.BookingCancelled,
		models.BookingRefunded,
	}
	for _, status := range statuses {
		p, ok := PresentationFor(status)
		require.True(t, ok, "no presentation for %q", status)
		assert.NotEmpty(t, p.Label, "empty label for %q", status)
		assert.NotEmpty(t, p.Tone, "empty tone for %q", status)
	}

	// Only the pre-payment state shows a spinner.
	for _, status := range statuses {
		p, _ := PresentationFor(status)
		assert.Equal(t, status == models.BookingPendingPayment, p.Spinner, status)
	}

	_, ok := PresentationFor("on_hold")
	assert.False(t, ok)
}

func TestCopyReference(t *testing.T) {
	clip := &fakeClipboard{}
	api := &fakeFetcher{booking: &Booking{Reference: "LP-2026-FF00AA", Status: models.BookingPaid}}
	v := NewStatusView(api, clip)

	// Nothing loaded yet, nothing copied.
	require.NoError(t, v.CopyReference())
	assert.Empty(t, clip.written)

	v.Load(context.Background(), "LP-2026-FF00AA")
	require.NoError(t, v.CopyReference())
	assert.Equal(t, "LP-2026-FF00AA", clip.written)
}
