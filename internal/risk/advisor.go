package risk

import (
	"fmt"
	"math"

	"kvk-trader/internal/models"
)

// Advise scores a proposed trade's stop distance and risk/reward into
// warnings and recommendations. Output is advisory only: it never
// blocks a caller and degenerate inputs simply produce no findings.
func (e *Engine) Advise(capital, entryPrice, stopLoss float64, targets []float64) models.RiskWarnings {
	result := models.RiskWarnings{
		Warnings:        []string{},
		Recommendations: []string{},
	}

	if entryPrice == 0 || stopLoss == 0 {
		return result
	}

	riskPercent := math.Abs((entryPrice-stopLoss)/entryPrice) * 100

	if riskPercent > e.cfg.MaxStopPercent {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Stop loss is %.2f%% away from entry (more than %.1f%%)",
				riskPercent, e.cfg.MaxStopPercent))
		result.Recommendations = append(result.Recommendations,
			"Consider a tighter stop loss or a smaller position size")
	}

	if riskPercent < e.cfg.MinStopPercent {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Stop loss is only %.2f%% away from entry (less than %.1f%%)",
				riskPercent, e.cfg.MinStopPercent))
		result.Recommendations = append(result.Recommendations,
			"Consider widening the stop loss to avoid being stopped out by noise")
	}

	if len(targets) > 0 {
		ratio := e.RiskReward(entryPrice, stopLoss, targets[0])
		if ratio < e.cfg.MinRewardRatio {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Reward to risk ratio is %.2f, below %.1f", ratio, e.cfg.MinRewardRatio))
			result.Recommendations = append(result.Recommendations,
				"Consider a higher target or skip the trade")
		}
	}

	return result
}
