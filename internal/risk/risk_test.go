package risk

import (
	"math"
	"strings"
	"testing"

	"kvk-trader/internal/models"
)

func TestPositionSize(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name    string
		capital float64
		entry   float64
		stop    float64
		want    int
	}{
		{"one percent rule", 100000, 100, 98, 500},
		{"fractional shares floored", 100000, 100, 97, 333},
		{"short side", 100000, 98, 100, 500},
		{"zero capital", 0, 100, 98, 0},
		{"zero entry", 100000, 0, 98, 0},
		{"zero stop", 100000, 100, 0, 0},
		{"entry equals stop", 100000, 100, 100, 0},
		{"negative capital", -5000, 100, 98, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.PositionSize(tt.capital, tt.entry, tt.stop); got != tt.want {
				t.Errorf("PositionSize(%v, %v, %v) = %d, want %d",
					tt.capital, tt.entry, tt.stop, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	assessment := engine.Evaluate(models.TradeParameters{
		Capital:    100000,
		EntryPrice: 100,
		StopLoss:   98,
		Targets:    []float64{106},
	})

	if assessment == nil {
		t.Fatal("Evaluate returned nil for valid inputs")
	}
	if !assessment.Valid {
		t.Fatalf("Evaluate returned invalid: %s", assessment.Message)
	}
	if assessment.Position != 500 {
		t.Errorf("Position = %d, want 500", assessment.Position)
	}
	if len(assessment.Scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(assessment.Scenarios))
	}

	stop := assessment.Scenarios[0]
	if stop.Type != models.ScenarioLoss || stop.Name != "Stop Loss" {
		t.Errorf("first scenario = %+v, want the stop-loss outcome", stop)
	}
	if stop.PnL != -1000 {
		t.Errorf("stop scenario PnL = %v, want -1000", stop.PnL)
	}

	target := assessment.Scenarios[1]
	if target.Type != models.ScenarioProfit || target.Name != "Target 1" {
		t.Errorf("second scenario = %+v, want Target 1", target)
	}
	if target.PnL != 3000 {
		t.Errorf("target scenario PnL = %v, want 3000", target.PnL)
	}
	if math.Abs(target.PnLPercent-6.0) > 1e-9 {
		t.Errorf("target PnLPercent = %v, want 6.0", target.PnLPercent)
	}
}

func TestEvaluateRiskTooHigh(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	assessment := engine.Evaluate(models.TradeParameters{
		Capital:    100000,
		EntryPrice: 100,
		StopLoss:   98,
		Targets:    []float64{106},
		Quantity:   5000,
	})

	if assessment == nil {
		t.Fatal("Evaluate returned nil")
	}
	if assessment.Valid {
		t.Fatal("forced quantity of 5000 should exceed the risk budget")
	}
	if assessment.Error != ErrRiskTooHigh {
		t.Errorf("Error = %q, want %q", assessment.Error, ErrRiskTooHigh)
	}
	if assessment.RiskAmount != 10000 {
		t.Errorf("RiskAmount = %v, want 10000", assessment.RiskAmount)
	}
	if assessment.Message == "" {
		t.Error("rejection should carry a human-readable message")
	}
}

func TestEvaluateWithinTolerance(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// 540 shares risk 1080, within the 10% tolerance above 1000.
	assessment := engine.Evaluate(models.TradeParameters{
		Capital:    100000,
		EntryPrice: 100,
		StopLoss:   98,
		Quantity:   540,
	})

	if assessment == nil || !assessment.Valid {
		t.Fatal("risk within tolerance should be accepted")
	}
}

func TestEvaluateMissingInputs(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name   string
		params models.TradeParameters
	}{
		{"no capital", models.TradeParameters{EntryPrice: 100, StopLoss: 98}},
		{"no entry", models.TradeParameters{Capital: 100000, StopLoss: 98}},
		{"no stop", models.TradeParameters{Capital: 100000, EntryPrice: 100}},
		{"negative capital", models.TradeParameters{Capital: -100000, EntryPrice: 100, StopLoss: 98}},
		{"negative entry", models.TradeParameters{Capital: 100000, EntryPrice: -100, StopLoss: 98}},
		{"negative stop", models.TradeParameters{Capital: 100000, EntryPrice: 100, StopLoss: -98}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Evaluate(tt.params); got != nil {
				t.Errorf("Evaluate(%+v) = %+v, want nil", tt.params, got)
			}
		})
	}
}

func TestEvaluateSkipsTargetsBelowEntry(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	assessment := engine.Evaluate(models.TradeParameters{
		Capital:    100000,
		EntryPrice: 100,
		StopLoss:   98,
		Targets:    []float64{95, 104, 100, 108},
	})

	if assessment == nil || !assessment.Valid {
		t.Fatal("expected a valid assessment")
	}
	// 95 and 100 are not strictly above entry; 104 and 108 are.
	if len(assessment.Scenarios) != 3 {
		t.Fatalf("got %d scenarios, want stop + 2 targets", len(assessment.Scenarios))
	}
	if assessment.Scenarios[1].Price != 104 || assessment.Scenarios[1].Name != "Target 1" {
		t.Errorf("first profit scenario = %+v, want Target 1 at 104", assessment.Scenarios[1])
	}
	if assessment.Scenarios[2].Price != 108 || assessment.Scenarios[2].Name != "Target 2" {
		t.Errorf("second profit scenario = %+v, want Target 2 at 108", assessment.Scenarios[2])
	}
}

func TestAdvise(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	t.Run("stop too far", func(t *testing.T) {
		warnings := engine.Advise(100000, 100, 90, nil)
		if !containsSubstring(warnings.Warnings, "more than 5") {
			t.Errorf("10%% stop should warn about distance, got %v", warnings.Warnings)
		}
		if len(warnings.Recommendations) == 0 {
			t.Error("warning should come with a recommendation")
		}
	})

	t.Run("stop too tight", func(t *testing.T) {
		warnings := engine.Advise(100000, 100, 99.7, nil)
		if !containsSubstring(warnings.Warnings, "less than 0.5") {
			t.Errorf("0.3%% stop should warn about tightness, got %v", warnings.Warnings)
		}
	})

	t.Run("reward below risk", func(t *testing.T) {
		warnings := engine.Advise(100000, 100, 99, []float64{100.5})
		if !containsSubstring(warnings.Warnings, "ratio") {
			t.Errorf("reward/risk below 1 should warn, got %v", warnings.Warnings)
		}
	})

	t.Run("clean trade", func(t *testing.T) {
		warnings := engine.Advise(100000, 100, 98, []float64{106})
		if len(warnings.Warnings) != 0 {
			t.Errorf("expected no warnings, got %v", warnings.Warnings)
		}
	})

	t.Run("degenerate inputs stay quiet", func(t *testing.T) {
		warnings := engine.Advise(0, 0, 0, nil)
		if len(warnings.Warnings) != 0 || len(warnings.Recommendations) != 0 {
			t.Errorf("expected no findings, got %+v", warnings)
		}
	})
}

func TestRiskReward(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	if got := engine.RiskReward(100, 98, 106); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("RiskReward(100, 98, 106) = %v, want 3.0", got)
	}
	if got := engine.RiskReward(100, 100, 106); got != 0 {
		t.Errorf("RiskReward with zero stop distance = %v, want 0", got)
	}
}

func containsSubstring(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
