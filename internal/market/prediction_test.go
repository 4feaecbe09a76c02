package market

import (
	"testing"

	"kvk-trader/internal/models"
)

func TestPredictionModeClosed(t *testing.T) {
	mode := PredictionMode(false)

	if mode.Mode != models.ModeAnalysisOnly {
		t.Errorf("Mode = %v, want %v", mode.Mode, models.ModeAnalysisOnly)
	}
	if mode.ShowLive {
		t.Error("ShowLive should be false when the market is closed")
	}
	if !mode.ShowHistorical || !mode.ShowCalculated {
		t.Error("historical and calculated views should always be shown")
	}
	if mode.RiskLevel != models.RiskLow {
		t.Errorf("RiskLevel = %v, want %v", mode.RiskLevel, models.RiskLow)
	}
}

func TestPredictionModeOpen(t *testing.T) {
	mode := PredictionMode(true)

	if mode.Mode != models.ModeLiveAnalysis {
		t.Errorf("Mode = %v, want %v", mode.Mode, models.ModeLiveAnalysis)
	}
	if !mode.ShowLive {
		t.Error("ShowLive should be true when the market is open")
	}
	if !mode.ShowHistorical || !mode.ShowCalculated {
		t.Error("historical and calculated views should always be shown")
	}
	if mode.RiskLevel != models.RiskMedium {
		t.Errorf("RiskLevel = %v, want %v", mode.RiskLevel, models.RiskMedium)
	}
}
