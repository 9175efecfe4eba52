package utils

import "strconv"

var currencySymbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
}

// FormatMoney renders an amount in the major currency unit with thousand
// separators and the currency symbol, e.g. 50000 NGN -> "₦50,000".
func FormatMoney(amount int64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := symbol + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
