package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBookingDate(t *testing.T) {
	assert.Equal(t, "Monday, January 5, 2026", FormatBookingDate("2026-01-05"))
	assert.Equal(t, "Friday, December 25, 2026", FormatBookingDate("2026-12-25"))
	assert.Equal(t, "not-a-date", FormatBookingDate("not-a-date"))
}

func TestFormatBookingTime(t *testing.T) {
	assert.Equal(t, "9:30 AM", FormatBookingTime("09:30"))
	assert.Equal(t, "2:00 PM", FormatBookingTime("14:00"))
	assert.Equal(t, "12:00 AM", FormatBookingTime("00:00"))
	assert.Equal(t, "later", FormatBookingTime("later"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₦50,000", FormatAmount(50000, "NGN"))
	assert.Equal(t, "$1,250", FormatAmount(1250, "USD"))
}
