package risk

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"kvk-trader/internal/models"
)

// Property: the sized position never risks more than the budget. Floor
// rounding means the stop-loss exposure of PositionSize shares is at
// most RiskFraction of capital.
func TestProperty_PositionNeverExceedsRiskBudget(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	engine := NewEngine(DefaultConfig())

	properties.Property("stop-loss exposure stays within the 1% budget", prop.ForAll(
		func(capital, entry, stopDistance float64) bool {
			stop := entry - stopDistance
			if stop <= 0 {
				return true
			}
			position := engine.PositionSize(capital, entry, stop)
			if position < 0 {
				return false
			}
			exposure := float64(position) * math.Abs(entry-stop)
			// Small epsilon for the floating point division.
			return exposure <= capital*DefaultRiskFraction*(1+1e-9)
		},
		gen.Float64Range(1000, 10000000),
		gen.Float64Range(1, 100000),
		gen.Float64Range(0.05, 500),
	))

	properties.TestingRun(t)
}

// Property: Evaluate is pure - identical inputs produce identical
// assessments, and the scenario count is the stop scenario plus one per
// target strictly above entry.
func TestProperty_EvaluateDeterministicScenarios(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	engine := NewEngine(DefaultConfig())

	properties.Property("scenario count matches profitable targets", prop.ForAll(
		func(capital, entry, stopDistance float64, targets []float64) bool {
			stop := entry - stopDistance
			if stop <= 0 {
				return true
			}
			params := models.TradeParameters{
				Capital:    capital,
				EntryPrice: entry,
				StopLoss:   stop,
				Targets:    targets,
			}

			first := engine.Evaluate(params)
			second := engine.Evaluate(params)
			if first == nil || second == nil {
				return first == second
			}
			if !first.Valid {
				// Auto-sized positions never trip the budget check.
				return false
			}

			profitable := 0
			for _, target := range targets {
				if target > entry {
					profitable++
				}
			}
			if len(first.Scenarios) != 1+profitable {
				return false
			}

			// Determinism: the two runs agree field for field.
			if first.Position != second.Position || first.RiskAmount != second.RiskAmount {
				return false
			}
			for i := range first.Scenarios {
				if first.Scenarios[i] != second.Scenarios[i] {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1000, 10000000),
		gen.Float64Range(1, 100000),
		gen.Float64Range(0.05, 500),
		gen.SliceOfN(3, gen.Float64Range(0.5, 200000)),
	))

	properties.TestingRun(t)
}

// Property: the stop scenario is always first and always typed as a
// loss for a long trade.
func TestProperty_StopScenarioAlwaysPresent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	engine := NewEngine(DefaultConfig())

	properties.Property("first scenario is the stop-loss outcome", prop.ForAll(
		func(capital, entry, stopDistance float64) bool {
			stop := entry - stopDistance
			if stop <= 0 {
				return true
			}
			assessment := engine.Evaluate(models.TradeParameters{
				Capital:    capital,
				EntryPrice: entry,
				StopLoss:   stop,
			})
			if assessment == nil || !assessment.Valid {
				return false
			}
			if len(assessment.Scenarios) == 0 {
				return false
			}
			first := assessment.Scenarios[0]
			return first.Type == models.ScenarioLoss && first.Price == stop && first.PnL <= 0
		},
		gen.Float64Range(1000, 10000000),
		gen.Float64Range(1, 100000),
		gen.Float64Range(0.05, 500),
	))

	properties.TestingRun(t)
}
