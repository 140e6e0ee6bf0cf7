// Package scoring combines indicator thresholds, pattern scores and
// sentiment into a BUY/SELL/HOLD decision with a risk envelope. The engine
// is a pure function of its inputs; every weight and threshold arrives via
// the parameter set so concurrent candidate evaluations cannot interfere.
package scoring

import (
	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
)

// Input bundles everything one decision is computed from.
type Input struct {
	Snapshot     model.IndicatorSnapshot
	Close        float64
	PatternScore float64
	Sentiment    *float64 // fear & greed index 0-100, nil when unavailable
}

// Decide accumulates buy-side and sell-side evidence and applies the
// decision thresholds. BUY is checked first, so an exact tie between
// qualifying buy and sell scores resolves to BUY.
func Decide(in Input, p params.Set) model.Opinion {
	s := in.Snapshot
	w := p.IndicatorWeights

	// Absent sentiment counts as 0, which lands in the fearful band.
	sentiment := 0.0
	if in.Sentiment != nil {
		sentiment = *in.Sentiment
	}

	var buyScore float64
	if s.RSI < 30 {
		buyScore += w.RSI
	}
	if s.StochasticK < 20 {
		buyScore += w.Stochastic
	}
	if in.Close <= s.BBLower {
		buyScore += w.Bollinger
	}
	if in.Close <= s.DonchLower {
		buyScore += w.Donchian
	}
	if s.WilliamsR < -80 {
		buyScore += w.WilliamsR
	}
	if sentiment < 40 {
		buyScore += w.FearGreed
	}
	if s.MACDHistogram > 0 {
		buyScore += w.MACD
	}
	if in.Close > s.SMA20 {
		buyScore += w.SMA
	}
	if in.Close > s.EMA20 {
		buyScore += w.EMA
	}
	// Detected patterns are bullish-only, so the pattern score feeds the
	// buy side unconditionally and never the sell side.
	buyScore += in.PatternScore

	var sellScore float64
	if s.RSI > 70 {
		sellScore += w.RSI
	}
	if s.StochasticK > 80 {
		sellScore += w.Stochastic
	}
	if in.Close >= s.BBUpper {
		sellScore += w.Bollinger
	}
	if in.Close >= s.DonchUpper {
		sellScore += w.Donchian
	}
	if s.WilliamsR > -20 {
		sellScore += w.WilliamsR
	}
	if sentiment > 60 {
		sellScore += w.FearGreed
	}
	if s.MACDHistogram < 0 {
		sellScore += w.MACD
	}
	if in.Close < s.SMA20 {
		sellScore += w.SMA
	}
	if in.Close < s.EMA20 {
		sellScore += w.EMA
	}

	op := model.Opinion{BuyScore: buyScore, SellScore: sellScore}
	switch {
	case buyScore >= float64(p.Thresholds.Buy) && buyScore >= sellScore:
		op.Decision = model.DecisionBuy
		op.Score = buyScore
	case sellScore >= float64(p.Thresholds.Sell) && sellScore > buyScore:
		op.Decision = model.DecisionSell
		op.Score = sellScore
	default:
		op.Decision = model.DecisionHold
		op.Score = buyScore
		if sellScore > buyScore {
			op.Score = sellScore
		}
	}
	return op
}
