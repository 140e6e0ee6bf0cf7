package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockSentinel/internal/analyze"
	"StockSentinel/internal/model"
)

func sampleReports() []*analyze.Report {
	return []*analyze.Report{
		{
			Ticker: "AAPL", Date: "2026-08-28", Close: 231.5,
			Opinion:       model.Opinion{Decision: model.DecisionBuy, Score: 420},
			Probabilities: model.ProbabilityResult{BuyProbability: 71.3, Confidence: model.ConfidenceHigh},
			Envelope:      model.RiskEnvelope{StopLoss: 225.2, TakeProfit: 244.1},
		},
		{
			Ticker: "MSFT", Date: "2026-08-28", Close: 512.0,
			Opinion:       model.Opinion{Decision: model.DecisionHold, Score: 120},
			Probabilities: model.ProbabilityResult{HoldProbability: 60, Confidence: model.ConfidenceMedium},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.csv")
	require.NoError(t, WriteCSV(path, sampleReports()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per report")

	assert.Equal(t, "ticker", rows[0][0])
	assert.Equal(t, "AAPL", rows[1][0])
	assert.Equal(t, "BUY", rows[1][3])
	assert.Equal(t, "512.00", rows[2][2])
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	require.NoError(t, WriteJSON(path, sampleReports()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []*analyze.Report
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "AAPL", got[0].Ticker)
	assert.Equal(t, model.DecisionBuy, got[0].Opinion.Decision)
}
