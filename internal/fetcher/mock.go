package fetcher

import (
	"context"
	"time"

	"StockSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	Candles []model.Candle
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) DailyCandles(_ context.Context, _ string, days int) ([]model.Candle, error) {
	if m.Candles != nil {
		return m.Candles, nil
	}
	return GenerateCandles(m.Price, days), nil
}

// MockSentiment returns a fixed index value.
type MockSentiment struct {
	Value float64
	Err   error
}

func (m *MockSentiment) FearGreedIndex(context.Context) (float64, error) {
	return m.Value, m.Err
}

// GenerateCandles produces a gently trending synthetic series around a
// base price, one bar per day ending today.
func GenerateCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		candles[i] = model.Candle{
			Date:   time.Now().UTC().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return candles
}
