package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockSentinel/internal/model"
	"StockSentinel/internal/params"
)

func TestGridFitter_SeparableOutcomes(t *testing.T) {
	scores := []float64{300, 280, 320, 50, 40, 60}
	outcomes := []bool{true, true, true, false, false, false}

	res := NewGridFitter().Fit(scores, outcomes)

	assert.Less(t, res.BrierScore, 0.25, "separable data should fit well")
	assert.Contains(t, []float64{0.005, 0.01, 0.015, 0.02}, res.Slope)
	assert.Contains(t, []float64{-2.0, -1.5, -1.0, -0.5, 0.0}, res.Intercept)
}

func TestGridFitter_EmptyInput(t *testing.T) {
	res := NewGridFitter().Fit(nil, nil)

	def := params.DefaultCalibration()
	assert.Equal(t, def.Slope, res.Slope)
	assert.Equal(t, def.Intercept, res.Intercept)
	assert.Equal(t, 1.0, res.BrierScore)
}

func TestResult_Params(t *testing.T) {
	res := Result{Slope: 0.015, Intercept: -1.5, BrierScore: 0.1}
	assert.Equal(t, params.Calibration{Slope: 0.015, Intercept: -1.5}, res.Params())
}

func TestToProbabilities_SumsToHundred(t *testing.T) {
	cal := params.DefaultCalibration()
	for _, scores := range [][2]float64{
		{0, 0}, {100, 100}, {400, 0}, {0, 400}, {644, 644}, {50, 300},
	} {
		p := ToProbabilities(scores[0], scores[1], cal)
		sum := p.BuyProbability + p.SellProbability + p.HoldProbability
		assert.InDelta(t, 100, sum, 0.2, "scores %v", scores)
	}
}

func TestToProbabilities_StrongBuy(t *testing.T) {
	p := ToProbabilities(400, 0, params.DefaultCalibration())

	require.Greater(t, p.BuyProbability, p.SellProbability)
	assert.Equal(t, 0.0, p.HoldProbability, "saturated sides leave no hold mass")
	assert.Equal(t, model.ConfidenceVeryHigh, p.Confidence)
}

func TestToProbabilities_NeutralIsLowConfidence(t *testing.T) {
	p := ToProbabilities(0, 0, params.DefaultCalibration())

	assert.Equal(t, model.ConfidenceLow, p.Confidence)
	assert.Greater(t, p.HoldProbability, p.BuyProbability, "neutral scores leave most mass on hold")
	assert.Equal(t, p.BuyProbability, p.SellProbability)
}

func TestToProbabilities_ConfidenceTiers(t *testing.T) {
	// Slope 1, intercept 0 makes the sigmoid directly steerable.
	cal := params.Calibration{Slope: 1, Intercept: 0}

	veryHigh := ToProbabilities(10, -10, cal)
	assert.Equal(t, model.ConfidenceVeryHigh, veryHigh.Confidence)

	low := ToProbabilities(-10, -10, cal)
	assert.Equal(t, model.ConfidenceLow, low.Confidence)
}
