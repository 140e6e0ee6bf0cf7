package optimize

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockSentinel/internal/fetcher"
	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
)

func TestRun_InsufficientData(t *testing.T) {
	candles := fetcher.GenerateCandles(100, MinBars-1)
	_, err := New(Config{Trials: 5, Seed: 1}).Run("TEST", candles)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestRun_DeterministicBySeed(t *testing.T) {
	candles := fetcher.GenerateCandles(100, 300)
	cfg := Config{Trials: 20, Seed: 42}

	first, err := New(cfg).Run("TEST", candles)
	require.NoError(t, err)
	second, err := New(cfg).Run("TEST", candles)
	require.NoError(t, err)

	assert.Equal(t, first.BestValue, second.BestValue)
	assert.Equal(t, first.BestParams, second.BestParams)
	assert.Equal(t, first.Metrics, second.Metrics)
}

func TestRun_RespectsDrawdownLimit(t *testing.T) {
	candles := fetcher.GenerateCandles(100, 300)

	res, err := New(Config{Trials: 30, Seed: 7}).Run("TEST", candles)
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Metrics.MaxDrawdown, maxDrawdownLimit)
	assert.False(t, math.IsInf(res.BestValue, -1))
	assert.Equal(t, 30, res.NTrials)
	assert.Equal(t, "TEST", res.Symbol)
}

func TestObjective(t *testing.T) {
	assert.True(t, math.IsInf(objective(model.BacktestMetrics{SharpeRatio: 3, MaxDrawdown: 31}), -1),
		"drawdown above the limit is rejected regardless of sharpe")

	v := objective(model.BacktestMetrics{SharpeRatio: 2, MaxDrawdown: 10})
	assert.InDelta(t, 2*0.7-10*0.01*0.3, v, 1e-9)

	// NaN metrics degrade instead of poisoning the comparison.
	v = objective(model.BacktestMetrics{SharpeRatio: math.NaN(), MaxDrawdown: 10})
	assert.InDelta(t, -10*0.01*0.3, v, 1e-9)

	v = objective(model.BacktestMetrics{SharpeRatio: 1, MaxDrawdown: math.NaN()})
	assert.InDelta(t, 0.7-100*0.01*0.3, v, 1e-9)
	assert.False(t, math.IsNaN(v))
}

func TestRandomSearch_SampleRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var s RandomSearch

	for i := 0; i < 25; i++ {
		set := s.Sample(rng)

		for name, w := range map[string]float64{
			"rsi": set.IndicatorWeights.RSI, "stochastic": set.IndicatorWeights.Stochastic,
			"bollinger": set.IndicatorWeights.Bollinger, "donchian": set.IndicatorWeights.Donchian,
			"williamsR": set.IndicatorWeights.WilliamsR, "macd": set.IndicatorWeights.MACD,
			"sma": set.IndicatorWeights.SMA, "ema": set.IndicatorWeights.EMA,
		} {
			assert.GreaterOrEqual(t, w, 50.0, name)
			assert.LessOrEqual(t, w, 100.0, name)
		}
		assert.GreaterOrEqual(t, set.IndicatorWeights.FearGreed, 20.0)
		assert.LessOrEqual(t, set.IndicatorWeights.FearGreed, 80.0)

		assert.GreaterOrEqual(t, set.Thresholds.Buy, 150)
		assert.LessOrEqual(t, set.Thresholds.Buy, 250)
		assert.GreaterOrEqual(t, set.Thresholds.Sell, 150)
		assert.LessOrEqual(t, set.Thresholds.Sell, 250)

		assert.GreaterOrEqual(t, set.Calibration.Slope, 0.005)
		assert.LessOrEqual(t, set.Calibration.Slope, 0.02)
		assert.GreaterOrEqual(t, set.Calibration.Intercept, -2.0)
		assert.LessOrEqual(t, set.Calibration.Intercept, 0.0)
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	o := New(Config{})
	assert.Equal(t, DefaultConfig().Trials, o.cfg.Trials)
	assert.Equal(t, DefaultConfig().Strategy, o.cfg.Strategy)
}

// constantStrategy always proposes the same parameters; identical
// objectives across trials pin down the first-found tie-break.
type constantStrategy struct{}

func (constantStrategy) Name() string                 { return "constant" }
func (constantStrategy) Sample(*rand.Rand) params.Set { return params.Defaults() }

func TestRun_TieKeepsFirstTrial(t *testing.T) {
	candles := fetcher.GenerateCandles(100, 300)

	many, err := New(Config{Trials: 10, Seed: 3}).WithStrategy(constantStrategy{}).Run("TEST", candles)
	require.NoError(t, err)
	one, err := New(Config{Trials: 1, Seed: 3}).WithStrategy(constantStrategy{}).Run("TEST", candles)
	require.NoError(t, err)

	assert.Equal(t, one.BestValue, many.BestValue)
	assert.Equal(t, one.BestParams, many.BestParams)
}
