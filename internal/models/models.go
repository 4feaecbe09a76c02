// Package models provides domain models for the trading engine.
package models

// Exchange represents a stock exchange.
type Exchange string

const (
	NSE Exchange = "NSE"
	BSE Exchange = "BSE"
)

// Trend represents the price trend direction of a stock.
type Trend string

const (
	TrendUp      Trend = "UPTREND"
	TrendDown    Trend = "DOWNTREND"
	TrendNeutral Trend = "NEUTRAL"
)

// VolumeTrend represents the direction of traded volume.
type VolumeTrend string

const (
	VolumeIncreasing VolumeTrend = "INCREASING"
	VolumeDecreasing VolumeTrend = "DECREASING"
	VolumeStable     VolumeTrend = "STABLE"
)

// TradingStyle represents the intended holding horizon of a trade.
type TradingStyle string

const (
	StyleIntraday   TradingStyle = "INTRADAY"
	StyleSwing      TradingStyle = "SWING"
	StylePositional TradingStyle = "POSITIONAL"
)

// DisplayMode controls what kind of analysis a dashboard may show.
type DisplayMode string

const (
	ModeAnalysisOnly DisplayMode = "ANALYSIS_ONLY"
	ModeLiveAnalysis DisplayMode = "LIVE_ANALYSIS"
)

// RiskLevel is a coarse risk classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
)

// PredictionMode describes which signal views are allowed for the
// current market state.
type PredictionMode struct {
	Mode           DisplayMode `json:"mode"`
	ShowLive       bool        `json:"show_live"`
	ShowHistorical bool        `json:"show_historical"`
	ShowCalculated bool        `json:"show_calculated"`
	RiskLevel      RiskLevel   `json:"risk_level"`
}

// TradeParameters is the user-supplied input for a trade calculation.
// Quantity overrides the position sizer when non-zero.
type TradeParameters struct {
	Symbol       string       `json:"symbol,omitempty"`
	Capital      float64      `json:"capital"`
	EntryPrice   float64      `json:"entry_price"`
	StopLoss     float64      `json:"stop_loss"`
	Targets      []float64    `json:"targets"`
	Quantity     int          `json:"quantity,omitempty"`
	TradingStyle TradingStyle `json:"trading_style,omitempty"`
}

// ScenarioType distinguishes loss and profit exit scenarios.
type ScenarioType string

const (
	ScenarioLoss   ScenarioType = "loss"
	ScenarioProfit ScenarioType = "profit"
)

// PnLScenario is one hypothetical exit outcome with its resulting P&L.
type PnLScenario struct {
	Name       string       `json:"name" csv:"scenario"`
	Price      float64      `json:"price" csv:"price"`
	Quantity   int          `json:"quantity" csv:"quantity"`
	TotalValue float64      `json:"total_value" csv:"total_value"`
	PnL        float64      `json:"pnl" csv:"pnl"`
	PnLPercent float64      `json:"pnl_percent" csv:"pnl_percent"`
	Type       ScenarioType `json:"type" csv:"type"`
}

// RiskAssessment is the full result of evaluating a proposed trade.
// When Valid is false, Error and Message describe the rejection.
type RiskAssessment struct {
	Valid       bool          `json:"valid"`
	Error       string        `json:"error,omitempty"`
	Message     string        `json:"message,omitempty"`
	Capital     float64       `json:"capital"`
	Position    int           `json:"position"`
	EntryPrice  float64       `json:"entry_price"`
	StopLoss    float64       `json:"stop_loss"`
	MaxRisk     float64       `json:"max_risk"`
	RiskAmount  float64       `json:"risk_amount"`
	RiskPercent float64       `json:"risk_percent"`
	Scenarios   []PnLScenario `json:"scenarios"`
}

// RiskWarnings holds advisory findings for a proposed trade. Findings
// never block an action; an empty value means no findings.
type RiskWarnings struct {
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// Holiday is one exchange holiday from the market calendar.
type Holiday struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
}
