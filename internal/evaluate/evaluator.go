// Package evaluate matches historical predictions against realized prices
// and aggregates accuracy metrics. Its labeled output feeds the
// probability calibrator.
package evaluate

import (
	"time"

	"StockSentinel/internal/model"
)

// DefaultDaysForward is how many calendar days ahead an outcome is
// looked up. Weekends and holidays make the exact date unreliable, so the
// matcher scans a 5-day window starting there.
const DefaultDaysForward = 5

// correctThreshold is the minimum fractional move that counts a
// prediction as correct: +2% for BUY, -2% for SELL.
const correctThreshold = 0.02

// PriceHistory maps ticker -> date (YYYY-MM-DD) -> close price.
type PriceHistory map[string]map[string]float64

// AddSeries folds a candle series into the history under ticker.
func (h PriceHistory) AddSeries(ticker string, candles []model.Candle) {
	m := h[ticker]
	if m == nil {
		m = make(map[string]float64, len(candles))
		h[ticker] = m
	}
	for _, c := range candles {
		m[c.Date.Format("2006-01-02")] = c.Close
	}
}

// Match joins predictions against realized future prices. HOLD
// predictions are skipped, and predictions with no price in the forward
// window are dropped from the output entirely rather than counted as
// incorrect; callers detect excessive drop rates by comparing the matched
// length against the supplied count in the aggregate.
func Match(predictions []model.PredictionRecord, history PriceHistory, daysForward int) []model.MatchedPrediction {
	if daysForward <= 0 {
		daysForward = DefaultDaysForward
	}

	var matched []model.MatchedPrediction
	for _, p := range predictions {
		if p.Decision == model.DecisionHold {
			continue
		}
		prices, ok := history[p.Ticker]
		if !ok {
			continue
		}
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			continue
		}

		futurePrice := 0.0
		outcomeDate := ""
		for i := daysForward; i <= daysForward+5; i++ {
			d := date.AddDate(0, 0, i).Format("2006-01-02")
			if price, ok := prices[d]; ok {
				futurePrice = price
				outcomeDate = d
				break
			}
		}
		if outcomeDate == "" || p.Close == 0 {
			continue
		}

		change := (futurePrice - p.Close) / p.Close
		correct := (p.Decision == model.DecisionBuy && change > correctThreshold) ||
			(p.Decision == model.DecisionSell && change < -correctThreshold)

		matched = append(matched, model.MatchedPrediction{
			PredictionRecord: p,
			FuturePrice:      futurePrice,
			OutcomeDate:      outcomeDate,
			Change:           change,
			IsCorrect:        correct,
		})
	}
	return matched
}

// Aggregate folds matched predictions into accuracy metrics. supplied is
// the number of predictions handed to Match before dropping, reported so
// callers can spot excessive exclusion.
func Aggregate(matched []model.MatchedPrediction, supplied int) model.AccuracyMetrics {
	total := len(matched)
	if total == 0 {
		return model.AccuracyMetrics{SuppliedCount: supplied}
	}

	correct := 0
	for _, m := range matched {
		if m.IsCorrect {
			correct++
		}
	}
	hitRate := float64(correct) / float64(total) * 100

	// Precision and recall are the hit rate as a fraction; see the note on
	// AccuracyMetrics. The f1 harmonic mean degenerates to the same value.
	precision := hitRate / 100
	recall := hitRate / 100
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return model.AccuracyMetrics{
		HitRate:            hitRate,
		Precision:          precision,
		Recall:             recall,
		F1Score:            f1,
		TotalPredictions:   total,
		CorrectPredictions: correct,
		SuppliedCount:      supplied,
	}
}

// LabeledPairs extracts (score, outcome) pairs from matched predictions
// for calibration fitting.
func LabeledPairs(matched []model.MatchedPrediction) (scores []float64, outcomes []bool) {
	scores = make([]float64, 0, len(matched))
	outcomes = make([]bool, 0, len(matched))
	for _, m := range matched {
		scores = append(scores, m.Score)
		outcomes = append(outcomes, m.IsCorrect)
	}
	return scores, outcomes
}
