// Package params defines the tunable parameter set shared by the scoring
// engine, backtester and optimizer. The JSON field names are a persisted
// contract: optimized weight files written by earlier runs must keep
// loading unchanged.
package params

// IndicatorWeights holds the score contribution of each indicator condition.
type IndicatorWeights struct {
	RSI        float64 `json:"rsi"`
	Stochastic float64 `json:"stochastic"`
	Bollinger  float64 `json:"bollinger"`
	Donchian   float64 `json:"donchian"`
	WilliamsR  float64 `json:"williamsR"`
	FearGreed  float64 `json:"fearGreed"`
	MACD       float64 `json:"macd"`
	SMA        float64 `json:"sma"`
	EMA        float64 `json:"ema"`
}

// PatternWeights holds the score contribution of each chart pattern.
type PatternWeights struct {
	AscendingTriangle float64 `json:"ascendingTriangle"`
	BullishFlag       float64 `json:"bullishFlag"`
	DoubleBottom      float64 `json:"doubleBottom"`
	FallingWedge      float64 `json:"fallingWedge"`
	IslandReversal    float64 `json:"islandReversal"`
}

// Thresholds holds the minimum accumulator scores for BUY and SELL.
type Thresholds struct {
	Buy  int `json:"buy"`
	Sell int `json:"sell"`
}

// Calibration holds the Platt scaling sigmoid parameters.
type Calibration struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Set is one complete parameter configuration. Values are passed
// explicitly through every call so concurrent candidate evaluations
// cannot interfere.
type Set struct {
	IndicatorWeights IndicatorWeights `json:"indicatorWeights"`
	PatternWeights   PatternWeights   `json:"patternWeights"`
	Thresholds       Thresholds       `json:"thresholds"`
	Calibration      Calibration      `json:"calibration"`
}

// DefaultCalibration is used whenever no fitted calibration is available.
func DefaultCalibration() Calibration {
	return Calibration{Slope: 0.01, Intercept: -1.0}
}

// Defaults returns the built-in parameter set used before any
// optimization run has been persisted.
func Defaults() Set {
	return Set{
		IndicatorWeights: IndicatorWeights{
			RSI:        79,
			Stochastic: 76,
			Bollinger:  78,
			Donchian:   74,
			WilliamsR:  72,
			FearGreed:  50,
			MACD:       73,
			SMA:        71,
			EMA:        71,
		},
		PatternWeights: PatternWeights{
			AscendingTriangle: 75,
			BullishFlag:       75,
			DoubleBottom:      70,
			FallingWedge:      70,
			IslandReversal:    73,
		},
		Thresholds:  Thresholds{Buy: 200, Sell: 200},
		Calibration: DefaultCalibration(),
	}
}
