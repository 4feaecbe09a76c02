package market

import (
	"kvk-trader/internal/models"
)

// PredictionMode maps market availability to the views a dashboard may
// show. When the market is closed only historical and calculated
// analysis is shown; live predictions require an open market.
func PredictionMode(marketOpen bool) models.PredictionMode {
	if !marketOpen {
		return models.PredictionMode{
			Mode:           models.ModeAnalysisOnly,
			ShowLive:       false,
			ShowHistorical: true,
			ShowCalculated: true,
			RiskLevel:      models.RiskLow,
		}
	}
	return models.PredictionMode{
		Mode:           models.ModeLiveAnalysis,
		ShowLive:       true,
		ShowHistorical: true,
		ShowCalculated: true,
		RiskLevel:      models.RiskMedium,
	}
}
