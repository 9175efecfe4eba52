package models

// Booking lifecycle statuses.
const (
	BookingPendingPayment = "pending_payment"
	BookingPaid           = "paid"
	BookingConfirmed      = "confirmed"
	BookingCompleted      = "completed"
	BookingCancelled      = "cancelled"
	BookingRefunded       = "refunded"
)

// bookingTransitions maps each status to the statuses admins may move it to.
// Cancelled and refunded are terminal.
var bookingTransitions = map[string][]string{
	BookingPendingPayment: {BookingCancelled},
	BookingPaid:           {BookingConfirmed, BookingCancelled, BookingRefunded},
	BookingConfirmed:      {BookingCompleted, BookingCancelled, BookingRefunded},
	BookingCompleted:      {BookingRefunded},
	BookingCancelled:      {},
	BookingRefunded:       {},
}

// IsValidBookingStatus reports whether s is a known booking status.
func IsValidBookingStatus(s string) bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionBooking reports whether an admin may move a booking
// from one status to another.
func CanTransitionBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
