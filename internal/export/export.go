// Package export writes analysis reports to CSV and JSON files for use
// outside the service.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"StockSentinel/internal/analyze"
)

// WriteJSON writes reports as an indented JSON array.
func WriteJSON(path string, reports []*analyze.Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes one row per report with the headline fields.
func WriteCSV(path string, reports []*analyze.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"ticker", "date", "close", "decision", "score",
		"buy_probability", "sell_probability", "hold_probability", "confidence",
		"stop_loss", "take_profit",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range reports {
		row := []string{
			r.Ticker,
			r.Date,
			strconv.FormatFloat(r.Close, 'f', 2, 64),
			string(r.Opinion.Decision),
			strconv.FormatFloat(r.Opinion.Score, 'f', 1, 64),
			strconv.FormatFloat(r.Probabilities.BuyProbability, 'f', 1, 64),
			strconv.FormatFloat(r.Probabilities.SellProbability, 'f', 1, 64),
			strconv.FormatFloat(r.Probabilities.HoldProbability, 'f', 1, 64),
			string(r.Probabilities.Confidence),
			strconv.FormatFloat(r.Envelope.StopLoss, 'f', 2, 64),
			strconv.FormatFloat(r.Envelope.TakeProfit, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
