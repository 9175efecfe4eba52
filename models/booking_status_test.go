package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	assert.True(t, CanTransitionBooking(BookingPendingPayment, BookingCancelled))
	assert.False(t, CanTransitionBooking(BookingPendingPayment, BookingPaid))

	assert.True(t, CanTransitionBooking(BookingPaid, BookingConfirmed))
	assert.True(t, CanTransitionBooking(BookingPaid, BookingRefunded))
	assert.False(t, CanTransitionBooking(BookingPaid, BookingCompleted))

	assert.True(t, CanTransitionBooking(BookingConfirmed, BookingCompleted))
	assert.True(t, CanTransitionBooking(BookingCompleted, BookingRefunded))

	// Terminal statuses go nowhere.
	for _, to := range []string{BookingPendingPayment, BookingPaid, BookingConfirmed, BookingCompleted} {
		assert.False(t, CanTransitionBooking(BookingCancelled, to))
		assert.False(t, CanTransitionBooking(BookingRefunded, to))
	}
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []string{
		BookingPendingPayment, BookingPaid, BookingConfirmed,
		BookingCompleted, BookingCancelled, BookingRefunded,
	} {
		assert.True(t, IsValidBookingStatus(s))
	}
	assert.False(t, IsValidBookingStatus("archived"))
	assert.False(t, IsValidBookingStatus(""))
}
