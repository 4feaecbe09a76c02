// Package utils provides shared formatting and validation helpers.
package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCurrency formats a number in Indian currency format with
// lakh/crore digit grouping.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	result := "₹" + formatIndianNumber(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// ParseCurrency parses a string produced by FormatCurrency back into a
// number. Unknown characters are stripped, so it also accepts plain
// numeric input.
func ParseCurrency(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}

// formatIndianNumber formats an integer string in the Indian numbering
// system: first group of 3 from the right, then groups of 2.
func formatIndianNumber(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]

	for len(s) > 0 {
		if len(s) >= 2 {
			result = s[len(s)-2:] + "," + result
			s = s[:len(s)-2]
		} else {
			result = s + "," + result
			s = ""
		}
	}

	return result
}

// FormatPercent formats a percentage with an explicit sign and the
// requested number of decimals.
func FormatPercent(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 2
	}
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.*f%%", sign, decimals, value)
}

// FormatPrice formats a price with two decimal places and no grouping.
func FormatPrice(price float64) string {
	return fmt.Sprintf("₹%.2f", price)
}

// FormatPnL formats a P&L amount with an explicit sign.
func FormatPnL(pnl float64) string {
	formatted := FormatCurrency(pnl)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatQuantity formats a share quantity with Indian digit grouping.
func FormatQuantity(qty int) string {
	if qty < 0 {
		return "-" + formatIndianNumber(strconv.Itoa(-qty))
	}
	return formatIndianNumber(strconv.Itoa(qty))
}

// FormatCompact formats an amount in lakhs or crores when large enough.
func FormatCompact(amount float64) string {
	abs := math.Abs(amount)
	if abs >= 10000000 {
		return fmt.Sprintf("%.2f Cr", amount/10000000)
	}
	if abs >= 100000 {
		return fmt.Sprintf("%.2f L", amount/100000)
	}
	return FormatCurrency(amount)
}
