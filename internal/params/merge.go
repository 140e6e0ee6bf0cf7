package params

import "fmt"

// MergeIndicatorWeights applies a partial override onto base. Unknown keys
// fail loudly instead of being silently dropped, so a typo in a weight
// file cannot masquerade as a default.
func MergeIndicatorWeights(base IndicatorWeights, override map[string]float64) (IndicatorWeights, error) {
	for key, v := range override {
		switch key {
		case "rsi":
			base.RSI = v
		case "stochastic":
			base.Stochastic = v
		case "bollinger":
			base.Bollinger = v
		case "donchian":
			base.Donchian = v
		case "williamsR":
			base.WilliamsR = v
		case "fearGreed":
			base.FearGreed = v
		case "macd":
			base.MACD = v
		case "sma":
			base.SMA = v
		case "ema":
			base.EMA = v
		default:
			return IndicatorWeights{}, fmt.Errorf("unknown indicator weight key %q", key)
		}
	}
	return base, nil
}

// MergePatternWeights applies a partial override onto base, rejecting
// unknown keys.
func MergePatternWeights(base PatternWeights, override map[string]float64) (PatternWeights, error) {
	for key, v := range override {
		switch key {
		case "ascendingTriangle":
			base.AscendingTriangle = v
		case "bullishFlag":
			base.BullishFlag = v
		case "doubleBottom":
			base.DoubleBottom = v
		case "fallingWedge":
			base.FallingWedge = v
		case "islandReversal":
			base.IslandReversal = v
		default:
			return PatternWeights{}, fmt.Errorf("unknown pattern weight key %q", key)
		}
	}
	return base, nil
}
