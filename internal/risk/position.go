// Package risk provides position sizing, P&L scenario modeling, and
// advisory risk checks under a fixed percent-of-capital risk rule.
package risk

import (
	"math"
)

// Default risk parameters. Every value is overridable via Config.
const (
	// DefaultRiskFraction caps the loss-if-stopped at 1% of capital
	// per trade (the 1% rule).
	DefaultRiskFraction = 0.01

	// DefaultRiskTolerance allows a caller-forced quantity to exceed
	// the risk budget by 10% before the trade is rejected.
	DefaultRiskTolerance = 1.1

	// DefaultMaxStopPercent flags stops wider than 5% of entry.
	DefaultMaxStopPercent = 5.0

	// DefaultMinStopPercent flags stops tighter than 0.5% of entry.
	DefaultMinStopPercent = 0.5

	// DefaultMinRewardRatio flags trades whose first target pays less
	// than the stop risks.
	DefaultMinRewardRatio = 1.0
)

// Config holds the risk rule parameters.
type Config struct {
	RiskFraction   float64
	RiskTolerance  float64
	MaxStopPercent float64
	MinStopPercent float64
	MinRewardRatio float64
}

// DefaultConfig returns the standard 1%-rule parameters.
func DefaultConfig() Config {
	return Config{
		RiskFraction:   DefaultRiskFraction,
		RiskTolerance:  DefaultRiskTolerance,
		MaxStopPercent: DefaultMaxStopPercent,
		MinStopPercent: DefaultMinStopPercent,
		MinRewardRatio: DefaultMinRewardRatio,
	}
}

// Engine performs risk calculations. It is stateless between calls and
// safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates a risk engine with the given parameters.
func NewEngine(cfg Config) *Engine {
	if cfg.RiskFraction <= 0 {
		cfg.RiskFraction = DefaultRiskFraction
	}
	if cfg.RiskTolerance <= 0 {
		cfg.RiskTolerance = DefaultRiskTolerance
	}
	if cfg.MaxStopPercent <= 0 {
		cfg.MaxStopPercent = DefaultMaxStopPercent
	}
	if cfg.MinStopPercent <= 0 {
		cfg.MinStopPercent = DefaultMinStopPercent
	}
	if cfg.MinRewardRatio <= 0 {
		cfg.MinRewardRatio = DefaultMinRewardRatio
	}
	return &Engine{cfg: cfg}
}

// PositionSize returns the number of shares such that a stop-loss exit
// loses no more than RiskFraction of capital. Rounding is always
// toward zero so the position never sizes past the risk budget.
// Degenerate inputs (zero or negative values, entry equal to stop)
// return 0 rather than an error so UI layers can render empty states.
func (e *Engine) PositionSize(capital, entryPrice, stopLoss float64) int {
	if capital <= 0 || entryPrice <= 0 || stopLoss <= 0 {
		return 0
	}
	riskPerShare := math.Abs(entryPrice - stopLoss)
	if riskPerShare == 0 {
		return 0
	}
	maxRisk := capital * e.cfg.RiskFraction
	return int(math.Floor(maxRisk / riskPerShare))
}

// RiskReward returns reward/risk for a trade, where risk is the entry
// to stop distance and reward the entry to target distance. Returns 0
// when the stop distance is zero.
func (e *Engine) RiskReward(entryPrice, stopLoss, target float64) float64 {
	riskPerShare := math.Abs(entryPrice - stopLoss)
	if riskPerShare == 0 {
		return 0
	}
	return math.Abs(target-entryPrice) / riskPerShare
}
