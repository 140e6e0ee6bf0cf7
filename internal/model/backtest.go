package model

import "time"

// Trade records one completed long position during a backtest.
type Trade struct {
	EntryDate     time.Time
	ExitDate      time.Time
	EntryPrice    float64
	ExitPrice     float64
	Direction     string // "long" only; no short positions are simulated
	Profit        float64
	ProfitPercent float64
}

// BacktestMetrics summarizes a simulated run over one price series.
type BacktestMetrics struct {
	SharpeRatio  float64 `json:"sharpeRatio"`
	MaxDrawdown  float64 `json:"maxDrawdown"` // percent
	WinRate      float64 `json:"winRate"`     // percent
	TotalTrades  int     `json:"totalTrades"`
	ProfitFactor float64 `json:"profitFactor"`
	Return       float64 `json:"return"` // fraction of initial capital
}
