package utils

import (
	"regexp"
)

// Validation bounds for user-supplied trade inputs.
const (
	MaxPrice   = 1000000.0
	MinCapital = 1000.0
	MaxCapital = 10000000.0
)

var symbolPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// IsValidSymbol reports whether s is a plausible stock symbol: 1 to 5
// uppercase letters.
func IsValidSymbol(s string) bool {
	return symbolPattern.MatchString(s)
}

// IsValidPrice reports whether p is a tradable price.
func IsValidPrice(p float64) bool {
	return p > 0 && p < MaxPrice
}

// IsValidCapital reports whether c is within the supported capital
// range.
func IsValidCapital(c float64) bool {
	return c >= MinCapital && c <= MaxCapital
}

// IsValidStopTarget reports whether the stop loss and target sit on
// opposite sides of the entry price, for either trade direction.
func IsValidStopTarget(entry, stopLoss, target float64) bool {
	return (entry > stopLoss && entry < target) || (entry < stopLoss && entry > target)
}
