// Package scoring provides heuristic scoring and market-aware signal
// enhancement.
package scoring

import (
	"kvk-trader/internal/models"
)

// Win probability bounds and adjustment weights.
const (
	baseProbability = 50
	minProbability  = 20
	maxProbability  = 80

	rsiOversold   = 30
	rsiOverbought = 70
)

// WinProbability scores RSI, trend, and volume trend into a bounded
// percentage in [20, 80].
//
// This is a heuristic weighted score, not a statistically calibrated
// probability; treat it as a relative quality indicator only.
func WinProbability(rsi float64, volumeTrend models.VolumeTrend, trend models.Trend) int {
	score := baseProbability

	if rsi < rsiOversold {
		score += 15
	} else if rsi > rsiOverbought {
		score -= 15
	}

	switch trend {
	case models.TrendUp:
		score += 10
	case models.TrendDown:
		score -= 10
	}

	switch volumeTrend {
	case models.VolumeIncreasing:
		score += 8
	case models.VolumeDecreasing:
		score -= 8
	}

	if score < minProbability {
		return minProbability
	}
	if score > maxProbability {
		return maxProbability
	}
	return score
}
