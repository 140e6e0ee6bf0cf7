// Package calibrate maps raw scoring-engine scores to calibrated
// confidence probabilities via Platt scaling.
package calibrate

import (
	"math"

	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
)

// Result is a fitted sigmoid pair plus the Brier score it achieved.
type Result struct {
	Slope      float64 `json:"slope"`
	Intercept  float64 `json:"intercept"`
	BrierScore float64 `json:"brierScore"`
}

// Params returns just the persisted sigmoid pair.
func (r Result) Params() params.Calibration {
	return params.Calibration{Slope: r.Slope, Intercept: r.Intercept}
}

// Fitter fits sigmoid parameters against labeled outcomes. The interface
// exists so the in-sample grid fit can later be swapped for a k-fold
// variant without touching callers.
type Fitter interface {
	Fit(scores []float64, outcomes []bool) Result
}

// GridFitter performs an exhaustive search over a small fixed candidate
// grid, minimizing the mean Brier score. The candidate values match the
// ranges the optimizer samples from, so refitted parameters stay
// comparable across runs.
type GridFitter struct {
	Slopes     []float64
	Intercepts []float64
}

// NewGridFitter returns a fitter with the standard candidate grid.
func NewGridFitter() *GridFitter {
	return &GridFitter{
		Slopes:     []float64{0.005, 0.01, 0.015, 0.02},
		Intercepts: []float64{-2.0, -1.5, -1.0, -0.5, 0.0},
	}
}

// Fit returns the grid pair with the lowest mean Brier score. Empty input
// yields the safe default pair with a worst-case Brier score.
func (g *GridFitter) Fit(scores []float64, outcomes []bool) Result {
	if len(scores) == 0 {
		def := params.DefaultCalibration()
		return Result{Slope: def.Slope, Intercept: def.Intercept, BrierScore: 1.0}
	}

	best := Result{BrierScore: math.Inf(1)}
	for _, slope := range g.Slopes {
		for _, intercept := range g.Intercepts {
			var sum float64
			for i, score := range scores {
				p := sigmoid(score, slope, intercept)
				outcome := 0.0
				if i < len(outcomes) && outcomes[i] {
					outcome = 1.0
				}
				sum += (p - outcome) * (p - outcome)
			}
			brier := sum / float64(len(scores))
			if brier < best.BrierScore {
				best = Result{Slope: slope, Intercept: intercept, BrierScore: brier}
			}
		}
	}
	return best
}

func sigmoid(score, slope, intercept float64) float64 {
	return 1.0 / (1.0 + math.Exp(-(slope*score + intercept)))
}

// ToProbabilities converts raw buy/sell scores into normalized 0-100
// probabilities. Each score is sigmoided independently; the hold
// probability is whatever mass remains, floored at zero, and all three are
// renormalized to sum to 100.
func ToProbabilities(buyScore, sellScore float64, cal params.Calibration) model.ProbabilityResult {
	buyProb := sigmoid(buyScore, cal.Slope, cal.Intercept)
	sellProb := sigmoid(sellScore, cal.Slope, cal.Intercept)
	holdProb := math.Max(0, 1-buyProb-sellProb)

	sum := buyProb + sellProb + holdProb
	buy := round1(buyProb / sum * 100)
	sell := round1(sellProb / sum * 100)
	hold := round1(holdProb / sum * 100)

	maxProb := math.Max(buy, sell)
	var confidence model.Confidence
	switch {
	case maxProb >= 75:
		confidence = model.ConfidenceVeryHigh
	case maxProb >= 60:
		confidence = model.ConfidenceHigh
	case maxProb >= 40:
		confidence = model.ConfidenceMedium
	default:
		confidence = model.ConfidenceLow
	}

	return model.ProbabilityResult{
		BuyProbability:  buy,
		SellProbability: sell,
		HoldProbability: hold,
		Confidence:      confidence,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
