// Package analyze runs the per-ticker pipeline: price history in, a
// scored and calibrated prediction out.
package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"StockSentinel/internal/calibrate"
	"StockSentinel/internal/fetcher"
	"StockSentinel/internal/indicator"
	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
	"StockSentinel/internal/pattern"
	"StockSentinel/internal/scoring"
)

// historyDays is how much history each analysis fetches. A full year
// comfortably covers every indicator lookback.
const historyDays = 365

// Report is the full analysis output for one ticker.
type Report struct {
	Ticker        string
	Date          string
	Close         float64
	Volume        float64
	Snapshot      model.IndicatorSnapshot
	Patterns      []string
	PatternScore  float64
	Sentiment     *float64
	Opinion       model.Opinion
	Envelope      model.RiskEnvelope
	Probabilities model.ProbabilityResult
}

// Prediction converts a report into its persistable record. The ID is
// left empty; the recorder assigns one on insert.
func (r *Report) Prediction() model.PredictionRecord {
	return model.PredictionRecord{
		Ticker:          r.Ticker,
		Date:            r.Date,
		Close:           r.Close,
		Decision:        r.Opinion.Decision,
		Score:           r.Opinion.Score,
		BuyProbability:  r.Probabilities.BuyProbability,
		SellProbability: r.Probabilities.SellProbability,
		HoldProbability: r.Probabilities.HoldProbability,
		Confidence:      r.Probabilities.Confidence,
		CreatedAt:       time.Now().UTC(),
	}
}

// Analyzer wires the fetch boundary to the scoring core.
type Analyzer struct {
	Fetcher   fetcher.Fetcher
	Sentiment fetcher.SentimentFetcher // optional
	Params    params.Set
	Risk      scoring.RiskConfig
	Log       zerolog.Logger
}

// New creates an analyzer with the default risk multipliers.
func New(f fetcher.Fetcher, s fetcher.SentimentFetcher, p params.Set, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		Fetcher:   f,
		Sentiment: s,
		Params:    p,
		Risk:      scoring.DefaultRiskConfig(),
		Log:       log,
	}
}

// FetchSentiment returns the current fear & greed index, or nil when the
// source is unconfigured or failing. Sentiment is optional everywhere
// downstream.
func (a *Analyzer) FetchSentiment(ctx context.Context) *float64 {
	if a.Sentiment == nil {
		return nil
	}
	value, err := a.Sentiment.FearGreedIndex(ctx)
	if err != nil {
		a.Log.Warn().Err(err).Msg("sentiment fetch failed, continuing without")
		return nil
	}
	return &value
}

// Ticker analyzes one symbol: fetches history, computes indicators and
// patterns, scores the decision, and derives the risk envelope and
// calibrated probabilities.
func (a *Analyzer) Ticker(ctx context.Context, ticker string, sentiment *float64) (*Report, error) {
	candles, err := a.Fetcher.DailyCandles(ctx, ticker, historyDays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("no price data for %s", ticker)
	}

	latest := candles[len(candles)-1]
	closes := model.Closes(candles)
	highs := model.Highs(candles)
	lows := model.Lows(candles)

	snap := indicator.Compute(closes, highs, lows)
	pat := pattern.Detect(highs, lows, closes, a.Params.PatternWeights)

	op := scoring.Decide(scoring.Input{
		Snapshot:     snap,
		Close:        latest.Close,
		PatternScore: pat.Score,
		Sentiment:    sentiment,
	}, a.Params)

	envelope := scoring.Envelope(latest.Close, snap.ATR, op.Decision, a.Risk)
	probs := calibrate.ToProbabilities(op.BuyScore, op.SellScore, a.Params.Calibration)

	a.Log.Info().
		Str("ticker", ticker).
		Str("decision", string(op.Decision)).
		Float64("score", op.Score).
		Float64("buyProb", probs.BuyProbability).
		Msg("ticker analyzed")

	return &Report{
		Ticker:        ticker,
		Date:          latest.Date.Format("2006-01-02"),
		Close:         latest.Close,
		Volume:        latest.Volume,
		Snapshot:      snap,
		Patterns:      pat.Patterns,
		PatternScore:  pat.Score,
		Sentiment:     sentiment,
		Opinion:       op,
		Envelope:      envelope,
		Probabilities: probs,
	}, nil
}
