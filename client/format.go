package client

import (
	"time"

	"lightfield/utils"
)

// FormatBookingDate renders a "YYYY-MM-DD" date the way the booking card
// shows it, e.g. "Monday, January 5, 2026". Unparseable input is returned
// unchanged.
func FormatBookingDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatBookingTime renders an "HH:MM" time as "3:04 PM". Unparseable
// input is returned unchanged.
func FormatBookingTime(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}

// FormatAmount renders a booking amount with its currency symbol,
// e.g. 50000 NGN -> "₦50,000".
func FormatAmount(amount int64, currency string) string {
	return utils.FormatMoney(amount, currency)
}
