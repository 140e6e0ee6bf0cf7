// Package learn runs the feedback loop: score stored predictions against
// realized prices, refit the probability calibration, and re-optimize
// the scoring weights.
package learn

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"StockSentinel/internal/calibrate"
	"StockSentinel/internal/evaluate"
	"StockSentinel/internal/fetcher"
	"StockSentinel/internal/model"
	"StockSentinel/internal/optimize"
	"StockSentinel/internal/params"
	"StockSentinel/internal/recorder"
)

// historyDays covers the oldest prediction a learning run can still
// score plus the forward outcome window.
const historyDays = 365

// Config points the loop at its inputs and output files.
type Config struct {
	ParamsPath      string
	CalibrationPath string
	MetricsPath     string
	OptimizeSymbol  string
	OptimizeTrials  int
}

// Outcome summarizes one learning run for callers (CLI, notifier).
type Outcome struct {
	Accuracy     model.AccuracyMetrics
	Calibration  calibrate.Result
	Optimization *optimize.Result // nil when optimization was skipped or failed
}

// Learner owns the weekly feedback run.
type Learner struct {
	Fetcher  fetcher.Fetcher
	Recorder recorder.Recorder
	Fitter   calibrate.Fitter
	Cfg      Config
	Log      zerolog.Logger
}

// New creates a learner with the default grid fitter.
func New(f fetcher.Fetcher, rec recorder.Recorder, cfg Config, log zerolog.Logger) *Learner {
	return &Learner{
		Fetcher:  f,
		Recorder: rec,
		Fitter:   calibrate.NewGridFitter(),
		Cfg:      cfg,
		Log:      log,
	}
}

// Run executes the full loop. Evaluation and calibration always run;
// a failed optimization is logged and skipped so a thin trading week
// cannot wedge the loop.
func (l *Learner) Run(ctx context.Context) (*Outcome, error) {
	predictions, err := l.Recorder.ListPredictions()
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	l.Log.Info().Int("predictions", len(predictions)).Msg("learning run started")

	history, err := l.collectHistory(ctx, predictions)
	if err != nil {
		return nil, err
	}

	matched := evaluate.Match(predictions, history, evaluate.DefaultDaysForward)
	metrics := evaluate.Aggregate(matched, len(predictions))

	if err := l.Recorder.RecordAccuracy(metrics); err != nil {
		return nil, fmt.Errorf("record accuracy: %w", err)
	}
	if err := saveJSON(l.Cfg.MetricsPath, metrics); err != nil {
		return nil, err
	}
	l.Log.Info().
		Float64("hitRate", metrics.HitRate).
		Int("matched", metrics.TotalPredictions).
		Int("supplied", metrics.SuppliedCount).
		Msg("accuracy evaluated")

	scores, outcomes := evaluate.LabeledPairs(matched)
	fit := l.Fitter.Fit(scores, outcomes)
	if err := params.SaveCalibration(l.Cfg.CalibrationPath, fit); err != nil {
		return nil, err
	}
	l.Log.Info().
		Float64("slope", fit.Slope).
		Float64("intercept", fit.Intercept).
		Float64("brier", fit.BrierScore).
		Msg("calibration refitted")

	out := &Outcome{Accuracy: metrics, Calibration: fit}

	if res, err := l.optimizeParams(ctx, fit.Params()); err != nil {
		l.Log.Warn().Err(err).Msg("optimization skipped")
	} else {
		out.Optimization = &res
	}
	return out, nil
}

// collectHistory fetches one price series per distinct ticker among the
// predictions.
func (l *Learner) collectHistory(ctx context.Context, predictions []model.PredictionRecord) (evaluate.PriceHistory, error) {
	history := make(evaluate.PriceHistory)
	for _, p := range predictions {
		if _, done := history[p.Ticker]; done {
			continue
		}
		candles, err := l.Fetcher.DailyCandles(ctx, p.Ticker, historyDays)
		if err != nil {
			// A ticker that fails to fetch loses its predictions from this
			// run; they stay stored and score next time.
			l.Log.Warn().Err(err).Str("ticker", p.Ticker).Msg("history fetch failed")
			history[p.Ticker] = map[string]float64{}
			continue
		}
		history.AddSeries(p.Ticker, candles)
	}
	return history, nil
}

// optimizeParams re-searches the weight space on the configured proxy
// symbol, carrying the freshly fitted calibration into the saved set.
func (l *Learner) optimizeParams(ctx context.Context, cal params.Calibration) (optimize.Result, error) {
	candles, err := l.Fetcher.DailyCandles(ctx, l.Cfg.OptimizeSymbol, historyDays*2)
	if err != nil {
		return optimize.Result{}, fmt.Errorf("fetch %s: %w", l.Cfg.OptimizeSymbol, err)
	}

	cfg := optimize.DefaultConfig()
	if l.Cfg.OptimizeTrials > 0 {
		cfg.Trials = l.Cfg.OptimizeTrials
	}
	res, err := optimize.New(cfg).Run(l.Cfg.OptimizeSymbol, candles)
	if err != nil {
		return optimize.Result{}, err
	}

	// The optimizer samples its own calibration pair per trial, but the
	// fitted pair comes from realized outcomes and wins.
	res.BestParams.Calibration = cal

	if err := params.SaveOptimized(l.Cfg.ParamsPath, res.BestParams); err != nil {
		return optimize.Result{}, err
	}
	if err := l.Recorder.RecordOptimization(res); err != nil {
		return optimize.Result{}, fmt.Errorf("record optimization: %w", err)
	}
	l.Log.Info().
		Str("symbol", res.Symbol).
		Float64("bestValue", res.BestValue).
		Float64("sharpe", res.Metrics.SharpeRatio).
		Msg("parameters re-optimized")
	return res, nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(struct {
		UpdatedAt string `json:"updatedAt"`
		Metrics   any    `json:"metrics"`
	}{time.Now().UTC().Format(time.RFC3339), v}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
