package services

import (
	"fmt"
	"strings"
)

// FormatARS formats an amount in Argentine peso notation: dots group the
// thousands, a comma separates exactly 2 decimals (e.g. $ 1.234.567,89).
func FormatARS(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "$ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts dots every 3 digits from the right.
func groupThousands(s string) string {
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
	return remaining + "." + result
}

// FormatDisplayDate renders an API date as DD/MM/YYYY, or "-" when the
// value is empty or unparseable.
func FormatDisplayDate(s string) string {
	t, ok := ParseAPIDate(s)
	if !ok {
		return "-"
	}
	return t.Format("02/01/2006")
}
