// Package indicator computes technical indicators from raw price columns.
// Every function windows the supplied history internally and yields a
// defined neutral fallback instead of an error when data is short, so
// downstream scoring stays computable on sparse series.
package indicator

import "StockSentinel/internal/model"

// Lookback periods. Fixed by the scoring contract, not configurable.
const (
	rsiPeriod        = 14
	stochPeriod      = 14
	stochSmooth      = 3
	bollingerPeriod  = 20
	bollingerStdDev  = 2.0
	williamsPeriod   = 14
	atrPeriod        = 14
	donchianPeriod   = 20
	smaPeriod        = 20
	emaPeriod        = 20
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// Compute derives the full indicator snapshot for the latest bar of the
// given same-length price columns.
func Compute(closes, highs, lows []float64) model.IndicatorSnapshot {
	var snap model.IndicatorSnapshot

	snap.RSI = RSI(closes, rsiPeriod)
	snap.StochasticK, snap.StochasticD = Stochastic(closes, highs, lows, stochPeriod, stochSmooth)
	snap.BBLower, snap.BBMiddle, snap.BBUpper = Bollinger(closes, bollingerPeriod, bollingerStdDev)
	snap.DonchLower, snap.DonchUpper = Donchian(highs, lows, donchianPeriod)
	snap.WilliamsR = WilliamsR(closes, highs, lows, williamsPeriod)
	snap.ATR = ATR(highs, lows, closes, atrPeriod)
	snap.MACD, snap.MACDSignal, snap.MACDHistogram = MACD(closes, macdFastPeriod, macdSlowPeriod, macdSignalPeriod)
	snap.SMA20 = SMA(closes, smaPeriod)
	snap.EMA20 = EMA(closes, emaPeriod)

	return snap
}

// ComputeAt derives the snapshot as it would have looked at bar index i,
// using only history up to and including i. The backtester calls this for
// every bar past its warmup window.
func ComputeAt(closes, highs, lows []float64, i int) model.IndicatorSnapshot {
	return Compute(closes[:i+1], highs[:i+1], lows[:i+1])
}
