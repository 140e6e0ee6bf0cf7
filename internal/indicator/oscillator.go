package indicator

// stochasticKAt computes %K for the bar at index i over the trailing
// period. A flat high/low range yields a neutral 50.
func stochasticKAt(closes, highs, lows []float64, period, i int) float64 {
	start := i - period + 1
	if start < 0 {
		start = 0
	}
	hh, ll := highs[start], lows[start]
	for j := start + 1; j <= i; j++ {
		if highs[j] > hh {
			hh = highs[j]
		}
		if lows[j] < ll {
			ll = lows[j]
		}
	}
	if hh == ll {
		return 50.0
	}
	return (closes[i] - ll) / (hh - ll) * 100.0
}

// Stochastic computes the latest %K(period) and its smoothed %D over
// smooth bars. Returns neutral 50/50 when fewer than period bars exist.
func Stochastic(closes, highs, lows []float64, period, smooth int) (k, d float64) {
	n := len(closes)
	if period <= 0 || n < period {
		return 50.0, 50.0
	}
	k = stochasticKAt(closes, highs, lows, period, n-1)

	count := smooth
	if avail := n - period + 1; count > avail {
		count = avail
	}
	if count <= 0 {
		return k, k
	}
	sum := 0.0
	for i := n - count; i < n; i++ {
		sum += stochasticKAt(closes, highs, lows, period, i)
	}
	return k, sum / float64(count)
}

// WilliamsR computes the latest Williams %R over the trailing period,
// ranging from -100 (close at the low) to 0 (close at the high). A flat
// range or insufficient history yields the -50 midpoint.
func WilliamsR(closes, highs, lows []float64, period int) float64 {
	n := len(closes)
	if period <= 0 || n < period {
		return -50.0
	}
	start := n - period
	hh, ll := highs[start], lows[start]
	for i := start + 1; i < n; i++ {
		if highs[i] > hh {
			hh = highs[i]
		}
		if lows[i] < ll {
			ll = lows[i]
		}
	}
	if hh == ll {
		return -50.0
	}
	return (hh - closes[n-1]) / (hh - ll) * -100.0
}
