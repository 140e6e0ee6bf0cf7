package indicator

// SMA computes the simple moving average of the trailing window.
// Returns 0 when fewer than period values exist.
func SMA(values []float64, period int) float64 {
	if period <= 0 || len(values) < period {
		return 0
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period)
}

// EMA computes the exponential moving average over the full history,
// seeded with the value at index period-1 and smoothing constant
// k = 2/(period+1). Returns 0 when fewer than period values exist.
func EMA(values []float64, period int) float64 {
	if period <= 0 || len(values) < period {
		return 0
	}
	k := 2.0 / float64(period+1)
	ema := values[period-1]
	for i := period; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
	}
	return ema
}

// emaSeries returns the running EMA for every index >= period-1, seeded
// like EMA. The returned slice is aligned to values (leading entries 0).
func emaSeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	k := 2.0 / float64(period+1)
	ema := values[period-1]
	out[period-1] = ema
	for i := period; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out[i] = ema
	}
	return out
}

// MACD computes the 12/26 moving average convergence divergence line, its
// 9-period signal line and the histogram for the latest bar. All three are
// 0 when fewer than 26 closes exist.
func MACD(closes []float64, fast, slow, signal int) (macd, signalLine, histogram float64) {
	if len(closes) < slow {
		return 0, 0, 0
	}
	fastEMA := emaSeries(closes, fast)
	slowEMA := emaSeries(closes, slow)

	// MACD line exists from the first index where the slow EMA does.
	line := make([]float64, 0, len(closes)-slow+1)
	for i := slow - 1; i < len(closes); i++ {
		line = append(line, fastEMA[i]-slowEMA[i])
	}

	macd = line[len(line)-1]
	if len(line) < signal {
		return macd, 0, macd
	}
	sig := emaSeries(line, signal)
	signalLine = sig[len(sig)-1]
	return macd, signalLine, macd - signalLine
}
