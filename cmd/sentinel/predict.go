package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockSentinel/internal/analyze"
	"StockSentinel/internal/export"
	"StockSentinel/internal/model"
	"StockSentinel/internal/notifier"
)

var (
	predictCSVPath  string
	predictJSONPath string
	predictNotify   bool
)

var predictCmd = &cobra.Command{
	Use:   "predict [ticker...]",
	Short: "Analyze tickers and print recommendations",
	Long: `Analyzes the given tickers, or the whole portfolio when none are
given, records each prediction, and prints the reports as JSON.`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVar(&predictCSVPath, "csv", "", "also export reports to a CSV file")
	predictCmd.Flags().StringVar(&predictJSONPath, "json", "", "also export reports to a JSON file")
	predictCmd.Flags().BoolVar(&predictNotify, "notify", false, "send actionable results to Slack")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	tickers := args
	if len(tickers) == 0 {
		tickers = a.Portfolio.List()
	}
	if len(tickers) == 0 {
		return fmt.Errorf("no tickers given and portfolio is empty")
	}

	sentiment := a.Analyzer.FetchSentiment(ctx)
	var reports []*analyze.Report
	for _, ticker := range tickers {
		report, err := a.Analyzer.Ticker(ctx, ticker, sentiment)
		if err != nil {
			log.Error().Err(err).Str("ticker", ticker).Msg("analysis failed")
			continue
		}
		reports = append(reports, report)

		pred := report.Prediction()
		if err := a.Recorder.RecordPrediction(&pred); err != nil {
			log.Error().Err(err).Str("ticker", ticker).Msg("record prediction failed")
		}
		if predictNotify && report.Opinion.Decision != model.DecisionHold {
			notifyReport(ctx, a, report)
		}
	}
	if len(reports) == 0 {
		return fmt.Errorf("all %d tickers failed", len(tickers))
	}

	if predictCSVPath != "" {
		if err := export.WriteCSV(predictCSVPath, reports); err != nil {
			return err
		}
	}
	if predictJSONPath != "" {
		if err := export.WriteJSON(predictJSONPath, reports); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func notifyReport(ctx context.Context, a *app, report *analyze.Report) {
	if err := a.Notifier.SendWithRetry(ctx, notifier.FormatReport(report), 3); err != nil {
		log.Error().Err(err).Str("ticker", report.Ticker).Msg("notify failed")
	}
}
