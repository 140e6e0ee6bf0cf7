package model

import "time"

// PredictionRecord is one persisted prediction, later matched against
// realized prices by the evaluator.
type PredictionRecord struct {
	ID              string
	Ticker          string
	Date            string // YYYY-MM-DD
	Close           float64
	Decision        Decision
	Score           float64
	BuyProbability  float64
	SellProbability float64
	HoldProbability float64
	Confidence      Confidence
	CreatedAt       time.Time
}

// MatchedPrediction extends a prediction with its realized outcome.
type MatchedPrediction struct {
	PredictionRecord
	FuturePrice float64
	OutcomeDate string
	Change      float64 // fractional change from prediction close
	IsCorrect   bool
}

// AccuracyMetrics aggregates evaluator results over matched predictions.
// Precision and recall are both the hit rate expressed as a fraction; a
// per-class confusion matrix is deliberately not computed because the
// calibrator consumes exactly this shape.
type AccuracyMetrics struct {
	HitRate            float64 `json:"hitRate"`
	Precision          float64 `json:"precision"`
	Recall             float64 `json:"recall"`
	F1Score            float64 `json:"f1Score"`
	TotalPredictions   int     `json:"totalPredictions"`
	CorrectPredictions int     `json:"correctPredictions"`
	SuppliedCount      int     `json:"suppliedCount"` // predictions handed to the matcher
}
