package params

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The JSON field names are a persisted contract; renaming a field would
// silently zero it when older weight files load.
func TestSet_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Defaults())
	require.NoError(t, err)

	var doc map[string]map[string]float64
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{"rsi", "stochastic", "bollinger", "donchian", "williamsR", "fearGreed", "macd", "sma", "ema"} {
		assert.Contains(t, doc["indicatorWeights"], key)
	}
	for _, key := range []string{"ascendingTriangle", "bullishFlag", "doubleBottom", "fallingWedge", "islandReversal"} {
		assert.Contains(t, doc["patternWeights"], key)
	}
	assert.Contains(t, doc["thresholds"], "buy")
	assert.Contains(t, doc["thresholds"], "sell")
	assert.Contains(t, doc["calibration"], "slope")
	assert.Contains(t, doc["calibration"], "intercept")
}

func TestSet_RoundTrip(t *testing.T) {
	orig := Defaults()
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Set
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig, got)
}

func TestMergeIndicatorWeights(t *testing.T) {
	base := Defaults().IndicatorWeights

	merged, err := MergeIndicatorWeights(base, map[string]float64{"rsi": 90, "fearGreed": 30})
	require.NoError(t, err)
	assert.Equal(t, 90.0, merged.RSI)
	assert.Equal(t, 30.0, merged.FearGreed)
	assert.Equal(t, base.Stochastic, merged.Stochastic, "untouched fields keep their base value")

	_, err = MergeIndicatorWeights(base, map[string]float64{"bogus": 1})
	assert.Error(t, err, "unknown keys must fail loudly, not vanish")
}

func TestMergePatternWeights(t *testing.T) {
	base := Defaults().PatternWeights

	merged, err := MergePatternWeights(base, map[string]float64{"doubleBottom": 95})
	require.NoError(t, err)
	assert.Equal(t, 95.0, merged.DoubleBottom)
	assert.Equal(t, base.BullishFlag, merged.BullishFlag)

	_, err = MergePatternWeights(base, map[string]float64{"headAndShoulders": 1})
	assert.Error(t, err)
}

func TestSaveLoadOptimized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	set := Defaults()
	set.IndicatorWeights.RSI = 91
	set.Thresholds.Buy = 180

	require.NoError(t, SaveOptimized(path, set))

	got, fromFile, err := LoadOptimized(path)
	require.NoError(t, err)
	assert.True(t, fromFile)
	assert.Equal(t, set, got)
}

func TestLoadOptimized_Missing(t *testing.T) {
	got, fromFile, err := LoadOptimized(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Equal(t, Defaults(), got)
}

func TestLoadOptimized_VersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	stale := File{Version: "0.9.0", Set: Defaults()}
	stale.IndicatorWeights.RSI = 5
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, fromFile, err := LoadOptimized(path)
	require.NoError(t, err, "a stale version falls back, it does not error")
	assert.False(t, fromFile)
	assert.Equal(t, Defaults(), got)
}

func TestLoadOptimized_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, _, err := LoadOptimized(path)
	assert.Error(t, err)
}

func TestSaveLoadCalibration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.json")

	// Callers may persist richer structs; only slope/intercept load back.
	fit := struct {
		Slope      float64 `json:"slope"`
		Intercept  float64 `json:"intercept"`
		BrierScore float64 `json:"brierScore"`
	}{0.015, -1.5, 0.12}
	require.NoError(t, SaveCalibration(path, fit))

	cal, fromFile, err := LoadCalibration(path)
	require.NoError(t, err)
	assert.True(t, fromFile)
	assert.Equal(t, Calibration{Slope: 0.015, Intercept: -1.5}, cal)
}

func TestLoadCalibration_Missing(t *testing.T) {
	cal, fromFile, err := LoadCalibration(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.False(t, fromFile)
	assert.Equal(t, DefaultCalibration(), cal)
}
