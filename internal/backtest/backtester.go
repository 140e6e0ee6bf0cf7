// Package backtest replays a price series through the scoring engine and
// simulates long-only trades under a candidate parameter set.
package backtest

import (
	"math"

	"StockSentinel/internal/indicator"
	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
	"StockSentinel/internal/pattern"
	"StockSentinel/internal/scoring"
)

// Historical sentiment is not sourced; every bar sees a fixed neutral 50.
// At 50 the fearGreed weight can never fire, matching live behavior only
// approximately. This is a documented approximation, not a bug to fix
// silently: sourcing real sentiment history would change results.
const backtestSentiment = 50.0

// signalStart is the first bar index signals are generated for, leaving
// the 26-bar MACD lookback plus margin to warm up.
const signalStart = 50

// DefaultInitialCapital seeds the simulated equity curve.
const DefaultInitialCapital = 10000.0

// Backtester simulates trades over one immutable price series. The same
// instance may be reused across parameter sets; Run does not mutate it.
type Backtester struct {
	candles []model.Candle
	closes  []float64
	highs   []float64
	lows    []float64
}

// New creates a backtester over the given candles.
func New(candles []model.Candle) *Backtester {
	return &Backtester{
		candles: candles,
		closes:  model.Closes(candles),
		highs:   model.Highs(candles),
		lows:    model.Lows(candles),
	}
}

// Bars reports the length of the underlying series.
func (b *Backtester) Bars() int { return len(b.closes) }

// Run generates signals under the candidate parameters, simulates the
// trades and returns the performance metrics.
func (b *Backtester) Run(p params.Set, initialCapital float64) (model.BacktestMetrics, []model.Trade) {
	signals := b.generateSignals(p)
	trades := b.simulateTrades(signals)
	return calculateMetrics(trades, initialCapital), trades
}

func (b *Backtester) generateSignals(p params.Set) []model.Decision {
	signals := make([]model.Decision, len(b.closes))
	for i := range signals {
		signals[i] = model.DecisionHold
	}

	sentiment := backtestSentiment
	for i := signalStart; i < len(b.closes); i++ {
		snap := indicator.ComputeAt(b.closes, b.highs, b.lows, i)
		// Pattern windows see only history up to bar i.
		pat := pattern.Detect(b.highs[:i+1], b.lows[:i+1], b.closes[:i+1], p.PatternWeights)

		op := scoring.Decide(scoring.Input{
			Snapshot:     snap,
			Close:        b.closes[i],
			PatternScore: pat.Score,
			Sentiment:    &sentiment,
		}, p)
		signals[i] = op.Decision
	}
	return signals
}

// simulateTrades walks the signal series through the Flat<->Long state
// machine. A BUY opens a position, a SELL closes it at the current bar's
// close; a position still open at the final bar is force-closed against
// the last price.
func (b *Backtester) simulateTrades(signals []model.Decision) []model.Trade {
	var trades []model.Trade
	var position *model.Trade

	for i, signal := range signals {
		price := b.closes[i]
		switch {
		case position != nil && signal == model.DecisionSell:
			position.ExitDate = b.candles[i].Date
			position.ExitPrice = price
			position.Profit = price - position.EntryPrice
			position.ProfitPercent = position.Profit / position.EntryPrice * 100
			trades = append(trades, *position)
			position = nil
		case position == nil && signal == model.DecisionBuy:
			position = &model.Trade{
				EntryDate:  b.candles[i].Date,
				EntryPrice: price,
				Direction:  "long",
			}
		}
	}

	if position != nil {
		last := len(b.closes) - 1
		position.ExitDate = b.candles[last].Date
		position.ExitPrice = b.closes[last]
		position.Profit = position.ExitPrice - position.EntryPrice
		position.ProfitPercent = position.Profit / position.EntryPrice * 100
		trades = append(trades, *position)
	}
	return trades
}

func calculateMetrics(trades []model.Trade, initialCapital float64) model.BacktestMetrics {
	if initialCapital <= 0 {
		initialCapital = DefaultInitialCapital
	}

	// Trade-level Sharpe, annualized with sqrt(252). The annualization
	// factor properly belongs to daily returns; applying it to trade
	// returns is an acknowledged approximation, kept because persisted
	// metrics from earlier runs were computed the same way.
	returns := make([]float64, len(trades))
	var mean float64
	for i, t := range trades {
		returns[i] = t.ProfitPercent / 100
		mean += returns[i]
	}
	n := float64(len(returns))
	if n == 0 {
		n = 1
	}
	mean /= n

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	stddev := math.Sqrt(variance / n)

	sharpe := 0.0
	if stddev != 0 {
		sharpe = mean / stddev * math.Sqrt(252)
	}

	// Compounded equity curve with full reinvestment per trade.
	equity := initialCapital
	peak := initialCapital
	maxDD := 0.0
	var grossProfit, grossLoss float64
	wins := 0
	for _, t := range trades {
		equity *= 1 + t.ProfitPercent/100
		if equity > peak {
			peak = equity
		}
		if dd := (peak - equity) / peak; dd > maxDD {
			maxDD = dd
		}
		if t.Profit > 0 {
			wins++
			grossProfit += t.Profit
		} else {
			grossLoss -= t.Profit
		}
	}

	winRate := 0.0
	if len(trades) > 0 {
		winRate = float64(wins) / float64(len(trades)) * 100
	}

	profitFactor := 0.0
	if grossLoss > 0 {
		profitFactor = grossProfit / grossLoss
	}

	return model.BacktestMetrics{
		SharpeRatio:  sharpe,
		MaxDrawdown:  maxDD * 100,
		WinRate:      winRate,
		TotalTrades:  len(trades),
		ProfitFactor: profitFactor,
		Return:       (equity - initialCapital) / initialCapital,
	}
}
