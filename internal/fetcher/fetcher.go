// Package fetcher provides the market-data boundary. Everything here is a
// thin I/O wrapper: the analysis core receives fully materialized candle
// slices and never performs network calls itself.
package fetcher

import (
	"context"

	"StockSentinel/internal/model"
)

// Fetcher retrieves daily price history for a symbol.
type Fetcher interface {
	DailyCandles(ctx context.Context, symbol string, days int) ([]model.Candle, error)
	Name() string
}

// SentimentFetcher retrieves the current fear & greed index (0-100).
// A failed fetch is not fatal; callers treat sentiment as absent.
type SentimentFetcher interface {
	FearGreedIndex(ctx context.Context) (float64, error)
}
