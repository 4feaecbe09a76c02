package models

import "time"

// TradePlan is one evaluated trade persisted to the journal.
type TradePlan struct {
	ID          int64     `json:"id" csv:"id"`
	Symbol      string    `json:"symbol" csv:"symbol"`
	Capital     float64   `json:"capital" csv:"capital"`
	EntryPrice  float64   `json:"entry_price" csv:"entry_price"`
	StopLoss    float64   `json:"stop_loss" csv:"stop_loss"`
	Position    int       `json:"position" csv:"position"`
	RiskAmount  float64   `json:"risk_amount" csv:"risk_amount"`
	RiskPercent float64   `json:"risk_percent" csv:"risk_percent"`
	Valid       bool      `json:"valid" csv:"valid"`
	CreatedAt   time.Time `json:"created_at" csv:"created_at"`
}
