package client

import (
	"context"
	"errors"
	"sync"
)

// ViewState is the render phase of the status viewer.
type ViewState string

const (
	ViewLoading ViewState = "loading"
	ViewError   ViewState = "error"
	ViewReady   ViewState = "ready"
)

// Tone groups statuses by visual treatment.
type Tone string

const (
	ToneCaution     Tone = "caution"
	ToneSuccess     Tone = "success"
	ToneInfo        Tone = "info"
	ToneBrand       Tone = "brand"
	ToneDestructive Tone = "destructive"
	ToneMuted       Tone = "muted"
)

// StatusPresentation is the display treatment for one booking status.
type StatusPresentation struct {
	Label   string
	Tone    Tone
	Spinner bool
}

// statusPresentations covers every booking status the backend can return.
// pending_payment gets a spinner instead of a static icon; completed uses
// the brand color to stand apart from the generic success tone.
var statusPresentations = map[string]StatusPresentation{
	"pending_payment": {Label: "Pending Payment", Tone: ToneCaution, Spinner: true},
	"paid":            {Label: "Paid", Tone: ToneSuccess},
	"confirmed":       {Label: "Confirmed", Tone: ToneInfo},
	"completed":       {Label: "Completed", Tone: ToneBrand},
	"cancelled":       {Label: "Cancelled", Tone: ToneDestructive},
	"refunded":        {Label: "Refunded", Tone: ToneMuted},
}

// PresentationFor looks up the display treatment for a status value.
func PresentationFor(status string) (StatusPresentation, bool) {
	p, ok := statusPresentations[status]
	return p, ok
}

// StatusFetcher is the slice of the API client the viewer needs.
type StatusFetcher interface {
	BookingStatus(ctx context.Context, reference string) (*Booking, error)
}

// Clipboard abstracts the copy-reference side effect.
type Clipboard interface {
	WriteText(text string) error
}

// StatusView shows one booking by reference. It fetches once per Load call
// and never polls; a later status change is only visible on a fresh Load.
type StatusView struct {
	api       StatusFetcher
	clipboard Clipboard

	mu       sync.Mutex
	state    ViewState
	booking  *Booking
	notFound bool
	lastErr  error
}

// NewStatusView builds a viewer over the given fetcher. The clipboard may
// be nil when the copy affordance is not needed.
func NewStatusView(api StatusFetcher, clipboard Clipboard) *StatusView {
	return &StatusView{api: api, clipboard: clipboard, state: ViewLoading}
}

// Load fetches the booking for a reference. An unknown reference is a
// terminal error for that reference; the caller should offer a link to a
// new booking rather than a retry.
func (v *StatusView) Load(ctx context.Context, reference string) {
	v.mu.Lock()
	v.state = ViewLoading
	v.booking = nil
	v.notFound = false
	v.lastErr = nil
	v.mu.Unlock()

	b, err := v.api.BookingStatus(ctx, reference)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = ViewError
		v.notFound = errors.Is(err, ErrNotFound)
		v.lastErr = err
		return
	}
	v.state = ViewReady
	v.booking = b
}

// State returns the current render phase.
func (v *StatusView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Booking returns the loaded booking, nil unless the view is ready.
func (v *StatusView) Booking() *Booking {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.booking
}

// NotFound reports whether the last error was an unknown reference.
func (v *StatusView) NotFound() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notFound
}

// Presentation returns the display treatment for the loaded booking.
func (v *StatusView) Presentation() (StatusPresentation, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.booking == nil {
		return StatusPresentation{}, false
	}
	return PresentationFor(v.booking.Status)
}

// CopyReference writes the loaded reference to the clipboard.
func (v *StatusView) CopyReference() error {
	v.mu.Lock()
	b := v.booking
	v.mu.Unlock()
	if b == nil || v.clipboard == nil {
		return nil
	}
	return v.clipboard.WriteText(b.Reference)
}
