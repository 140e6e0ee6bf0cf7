package recorder

import (
	"StockSentinel/internal/model"
	"StockSentinel/internal/optimize"
)

// NoopRecorder discards everything. Used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (*NoopRecorder) RecordPrediction(*model.PredictionRecord) error        { return nil }
func (*NoopRecorder) ListPredictions() ([]model.PredictionRecord, error)    { return nil, nil }
func (*NoopRecorder) RecordAccuracy(model.AccuracyMetrics) error            { return nil }
func (*NoopRecorder) RecordOptimization(optimize.Result) error              { return nil }
func (*NoopRecorder) Close() error                                          { return nil }
