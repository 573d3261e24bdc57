package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatEuro formats an amount with Italian separators and the euro
// symbol: thousands separated by ".", decimals by ",", always exactly
// 2 decimal places (e.g. 1234.5 → "1.234,50 €").
func FormatEuro(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := applyThousandsGrouping(intPart) + "," + decPart + " €"
	if negative {
		result = "-" + result
	}
	return result
}

// FormatNumber renders a quantity without decimals when it is a whole
// number, otherwise with 2 decimals and "," as the decimal separator
// (e.g. 300.0 → "300", 300.5 → "300,50").
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// applyThousandsGrouping inserts "." separators into an integer string,
// grouping digits in threes from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	if len(remaining) > 0 {
		result = remaining + "." + result
	}

	return result
}
