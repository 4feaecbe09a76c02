package risk

import (
	"fmt"
	"math"

	"kvk-trader/internal/models"
)

// ErrRiskTooHigh is the error code carried by a rejected assessment.
const ErrRiskTooHigh = "RISK_TOO_HIGH"

// Evaluate builds the full P&L scenario table for a proposed trade and
// validates it against the risk budget.
//
// It returns nil when capital, entry price, or stop loss is missing
// or non-positive;
// every other degenerate input degrades to an empty or zero-valued
// result. The one hard failure is RISK_TOO_HIGH: a caller-forced
// quantity whose stop-loss exposure exceeds the budget by more than
// the configured tolerance.
func (e *Engine) Evaluate(params models.TradeParameters) *models.RiskAssessment {
	if params.Capital <= 0 || params.EntryPrice <= 0 || params.StopLoss <= 0 {
		return nil
	}

	position := params.Quantity
	if position == 0 {
		position = e.PositionSize(params.Capital, params.EntryPrice, params.StopLoss)
	}

	maxRisk := params.Capital * e.cfg.RiskFraction
	riskAmount := math.Abs(float64(position) * (params.EntryPrice - params.StopLoss))
	riskPercent := riskAmount / params.Capital * 100

	if riskAmount > maxRisk*e.cfg.RiskTolerance {
		return &models.RiskAssessment{
			Valid: false,
			Error: ErrRiskTooHigh,
			Message: fmt.Sprintf(
				"risk amount %.2f (%.2f%% of capital) exceeds the budget of %.2f",
				riskAmount, riskPercent, maxRisk),
			Capital:     params.Capital,
			Position:    position,
			EntryPrice:  params.EntryPrice,
			StopLoss:    params.StopLoss,
			MaxRisk:     maxRisk,
			RiskAmount:  riskAmount,
			RiskPercent: riskPercent,
		}
	}

	scenarios := []models.PnLScenario{
		{
			Name:       "Stop Loss",
			Price:      params.StopLoss,
			Quantity:   position,
			TotalValue: float64(position) * params.StopLoss,
			PnL:        float64(position) * (params.StopLoss - params.EntryPrice),
			PnLPercent: (params.StopLoss - params.EntryPrice) / params.EntryPrice * 100,
			Type:       models.ScenarioLoss,
		},
	}

	// Only targets on the profitable side of the entry produce a
	// scenario; input order is preserved.
	n := 0
	for _, target := range params.Targets {
		if target <= params.EntryPrice {
			continue
		}
		n++
		scenarios = append(scenarios, models.PnLScenario{
			Name:       fmt.Sprintf("Target %d", n),
			Price:      target,
			Quantity:   position,
			TotalValue: float64(position) * target,
			PnL:        float64(position) * (target - params.EntryPrice),
			PnLPercent: (target - params.EntryPrice) / params.EntryPrice * 100,
			Type:       models.ScenarioProfit,
		})
	}

	return &models.RiskAssessment{
		Valid:       true,
		Capital:     params.Capital,
		Position:    position,
		EntryPrice:  params.EntryPrice,
		StopLoss:    params.StopLoss,
		MaxRisk:     maxRisk,
		RiskAmount:  riskAmount,
		RiskPercent: riskPercent,
		Scenarios:   scenarios,
	}
}
