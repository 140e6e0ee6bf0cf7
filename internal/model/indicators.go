package model

// IndicatorSnapshot holds all technical indicator values for the latest bar.
type IndicatorSnapshot struct {
	RSI           float64
	StochasticK   float64
	StochasticD   float64
	BBLower       float64
	BBMiddle      float64
	BBUpper       float64
	DonchLower    float64
	DonchUpper    float64
	WilliamsR     float64
	ATR           float64
	MACD          float64
	MACDSignal    float64
	MACDHistogram float64
	SMA20         float64
	EMA20         float64
}
