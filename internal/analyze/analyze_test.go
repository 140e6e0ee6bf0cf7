package analyze

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockSentinel/internal/fetcher"
	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
)

func TestTicker_FullPipeline(t *testing.T) {
	mock := &fetcher.MockFetcher{Price: 100}
	a := New(mock, &fetcher.MockSentiment{Value: 50}, params.Defaults(), zerolog.Nop())

	sentiment := a.FetchSentiment(context.Background())
	require.NotNil(t, sentiment)
	assert.Equal(t, 50.0, *sentiment)

	report, err := a.Ticker(context.Background(), "TEST", sentiment)
	require.NoError(t, err)

	assert.Equal(t, "TEST", report.Ticker)
	assert.NotEmpty(t, report.Date)
	assert.Contains(t, []model.Decision{model.DecisionBuy, model.DecisionSell, model.DecisionHold}, report.Opinion.Decision)

	sum := report.Probabilities.BuyProbability + report.Probabilities.SellProbability + report.Probabilities.HoldProbability
	assert.InDelta(t, 100, sum, 0.2)

	pred := report.Prediction()
	assert.Empty(t, pred.ID, "the recorder assigns ids")
	assert.Equal(t, report.Opinion.Decision, pred.Decision)
	assert.Equal(t, report.Close, pred.Close)
	assert.False(t, pred.CreatedAt.IsZero())
}

func TestTicker_EmptyHistory(t *testing.T) {
	mock := &fetcher.MockFetcher{Candles: []model.Candle{}}
	a := New(mock, nil, params.Defaults(), zerolog.Nop())

	_, err := a.Ticker(context.Background(), "TEST", nil)
	assert.Error(t, err)
}

func TestFetchSentiment_Degrades(t *testing.T) {
	a := New(&fetcher.MockFetcher{Price: 100}, &fetcher.MockSentiment{Err: errors.New("down")}, params.Defaults(), zerolog.Nop())
	assert.Nil(t, a.FetchSentiment(context.Background()), "a failing source yields nil, not an error")

	a.Sentiment = nil
	assert.Nil(t, a.FetchSentiment(context.Background()))
}
