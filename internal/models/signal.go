package models

// SignalAction represents the direction of a trade signal.
type SignalAction string

const (
	SignalBuy  SignalAction = "BUY"
	SignalSell SignalAction = "SELL"
	SignalHold SignalAction = "HOLD"
)

// SignalStatus tells whether a signal reflects live or historical data.
type SignalStatus string

const (
	SignalLive       SignalStatus = "LIVE"
	SignalHistorical SignalStatus = "HISTORICAL"
)

// SignalQuality is a coarse quality bucket derived from confidence.
type SignalQuality string

const (
	QualityHigh   SignalQuality = "HIGH"
	QualityMedium SignalQuality = "MEDIUM"
	QualityLow    SignalQuality = "LOW"
)

// Signal is a trade recommendation as produced by an external signal
// source. The engine only annotates it; generation is out of scope.
type Signal struct {
	Symbol       string       `json:"symbol"`
	Action       SignalAction `json:"action"`
	EntryPrice   float64      `json:"entry_price"`
	StopLoss     float64      `json:"stop_loss"`
	Targets      []float64    `json:"targets"`
	Confidence   float64      `json:"confidence"`
	TradingStyle TradingStyle `json:"trading_style"`
}

// EnhancedSignal is a Signal with market-aware annotations attached.
type EnhancedSignal struct {
	Signal
	MarketStatus  SignalStatus  `json:"market_status"`
	IsMarketOpen  bool          `json:"is_market_open"`
	Quality       SignalQuality `json:"signal_quality"`
	HoldingPeriod string        `json:"recommended_holding_period"`
	Note          string        `json:"note"`
}
