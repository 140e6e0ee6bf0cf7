package indicator

import "math"

// Bollinger computes the moving-average envelope over the trailing window:
// middle = SMA(period), upper/lower = middle +/- stdDev sigma. All three
// collapse to 0 when fewer than period closes exist.
func Bollinger(closes []float64, period int, stdDev float64) (lower, middle, upper float64) {
	if period <= 0 || len(closes) < period {
		return 0, 0, 0
	}
	middle = SMA(closes, period)

	var variance float64
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - middle
		variance += d * d
	}
	sigma := math.Sqrt(variance / float64(period))
	return middle - stdDev*sigma, middle, middle + stdDev*sigma
}

// Donchian returns the lowest low and highest high of the trailing window.
// No smoothing is applied. Falls back to the full available range when
// fewer than period bars exist.
func Donchian(highs, lows []float64, period int) (lower, upper float64) {
	n := len(highs)
	if n == 0 || len(lows) == 0 {
		return 0, 0
	}
	start := n - period
	if start < 0 {
		start = 0
	}
	upper = math.Inf(-1)
	lower = math.Inf(1)
	for i := start; i < n; i++ {
		if highs[i] > upper {
			upper = highs[i]
		}
		if lows[i] < lower {
			lower = lows[i]
		}
	}
	return lower, upper
}
