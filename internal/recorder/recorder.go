package recorder

import (
	"StockSentinel/internal/model"
	"StockSentinel/internal/optimize"
)

// Recorder persists predictions and learning-loop outputs. Predictions
// written here are read back by the evaluator on the next learn run.
type Recorder interface {
	RecordPrediction(p *model.PredictionRecord) error
	ListPredictions() ([]model.PredictionRecord, error)
	RecordAccuracy(m model.AccuracyMetrics) error
	RecordOptimization(r optimize.Result) error
	Close() error
}
