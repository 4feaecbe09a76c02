package scoring

import (
	"kvk-trader/internal/models"
)

// Confidence thresholds for signal quality buckets.
const (
	highQualityConfidence   = 85
	mediumQualityConfidence = 70
)

// Quality buckets a confidence level into HIGH, MEDIUM, or LOW.
func Quality(confidence float64) models.SignalQuality {
	switch {
	case confidence >= highQualityConfidence:
		return models.QualityHigh
	case confidence >= mediumQualityConfidence:
		return models.QualityMedium
	default:
		return models.QualityLow
	}
}

// HoldingPeriod returns the recommended holding period for a trading
// style.
func HoldingPeriod(style models.TradingStyle) string {
	switch style {
	case models.StyleIntraday:
		return "Minutes to Hours (Auto square-off at close)"
	case models.StyleSwing:
		return "2-5 Days"
	case models.StylePositional:
		return "1-3 Months"
	default:
		return "Custom"
	}
}

// Enhance annotates a signal with market-aware metadata: live or
// historical status, a quality bucket, the recommended holding period,
// and an advisory note. The input signal is not modified.
func Enhance(signal models.Signal, marketOpen bool) models.EnhancedSignal {
	enhanced := models.EnhancedSignal{
		Signal:        signal,
		IsMarketOpen:  marketOpen,
		Quality:       Quality(signal.Confidence),
		HoldingPeriod: HoldingPeriod(signal.TradingStyle),
	}

	if marketOpen {
		enhanced.MarketStatus = models.SignalLive
		enhanced.Note = "Live market signal. Use with risk management."
	} else {
		enhanced.MarketStatus = models.SignalHistorical
		enhanced.Note = "Market is closed. This is historical analysis. " +
			"Confirm with live market data before trading."
	}

	return enhanced
}
