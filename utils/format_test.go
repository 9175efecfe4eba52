package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₦50,000", FormatMoney(50000, "NGN"))
	assert.Equal(t, "₦1,250,000", FormatMoney(1250000, "NGN"))
	assert.Equal(t, "₦750", FormatMoney(750, "NGN"))
	assert.Equal(t, "$1,000", FormatMoney(1000, "USD"))
	assert.Equal(t, "KES 2,500", FormatMoney(2500, "KES"))
	assert.Equal(t, "-₦100", FormatMoney(-100, "NGN"))
}
