package scoring

import (
	"strings"
	"testing"

	"kvk-trader/internal/models"
)

func TestQuality(t *testing.T) {
	tests := []struct {
		confidence float64
		want       models.SignalQuality
	}{
		{90, models.QualityHigh},
		{85, models.QualityHigh},
		{84.9, models.QualityMedium},
		{70, models.QualityMedium},
		{69.9, models.QualityLow},
		{0, models.QualityLow},
	}

	for _, tt := range tests {
		if got := Quality(tt.confidence); got != tt.want {
			t.Errorf("Quality(%v) = %v, want %v", tt.confidence, got, tt.want)
		}
	}
}

func TestHoldingPeriod(t *testing.T) {
	if got := HoldingPeriod(models.StyleSwing); got != "2-5 Days" {
		t.Errorf("HoldingPeriod(SWING) = %q", got)
	}
	if got := HoldingPeriod(models.TradingStyle("SCALP")); got != "Custom" {
		t.Errorf("unknown style should map to Custom, got %q", got)
	}
}

func TestEnhance(t *testing.T) {
	signal := models.Signal{
		Symbol:       "RELIANCE",
		Action:       models.SignalBuy,
		EntryPrice:   2900,
		StopLoss:     2850,
		Targets:      []float64{2980, 3050},
		Confidence:   88,
		TradingStyle: models.StyleIntraday,
	}

	t.Run("market open", func(t *testing.T) {
		enhanced := Enhance(signal, true)
		if enhanced.MarketStatus != models.SignalLive {
			t.Errorf("MarketStatus = %v, want LIVE", enhanced.MarketStatus)
		}
		if !enhanced.IsMarketOpen {
			t.Error("IsMarketOpen should be true")
		}
		if enhanced.Quality != models.QualityHigh {
			t.Errorf("Quality = %v, want HIGH", enhanced.Quality)
		}
		if !strings.Contains(enhanced.Note, "Live") {
			t.Errorf("Note = %q, want a live-market note", enhanced.Note)
		}
	})

	t.Run("market closed", func(t *testing.T) {
		enhanced := Enhance(signal, false)
		if enhanced.MarketStatus != models.SignalHistorical {
			t.Errorf("MarketStatus = %v, want HISTORICAL", enhanced.MarketStatus)
		}
		if !strings.Contains(enhanced.Note, "closed") {
			t.Errorf("Note = %q, want a market-closed note", enhanced.Note)
		}
	})

	t.Run("input not modified", func(t *testing.T) {
		_ = Enhance(signal, true)
		if signal.Confidence != 88 || len(signal.Targets) != 2 {
			t.Error("Enhance should not modify its input")
		}
	})
}
