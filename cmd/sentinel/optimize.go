package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"StockSentinel/internal/optimize"
	"StockSentinel/internal/params"
)

var (
	optimizeTrials int
	optimizeSeed   int64
	optimizeDays   int
	optimizeSave   bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [symbol]",
	Short: "Search for better scoring weights via backtesting",
	Long: `Runs randomized-search trials of the scoring weights against the
symbol's price history and prints the best trial as JSON. With --save
the winning parameters replace the optimized parameter file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		symbol := a.Cfg.Optimize.Symbol
		if len(args) == 1 {
			symbol = args[0]
		}

		candles, err := a.Fetcher.DailyCandles(cmd.Context(), symbol, optimizeDays)
		if err != nil {
			return err
		}

		cfg := optimize.DefaultConfig()
		if optimizeTrials > 0 {
			cfg.Trials = optimizeTrials
		}
		cfg.Seed = optimizeSeed

		res, err := optimize.New(cfg).Run(symbol, candles)
		if err != nil {
			return err
		}

		if optimizeSave {
			if err := params.SaveOptimized(a.Cfg.Files.Params, res.BestParams); err != nil {
				return err
			}
			if err := a.Recorder.RecordOptimization(res); err != nil {
				return err
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	optimizeCmd.Flags().IntVar(&optimizeTrials, "trials", 0, "number of trials (default from config)")
	optimizeCmd.Flags().Int64Var(&optimizeSeed, "seed", 0, "random seed (0 = time-derived)")
	optimizeCmd.Flags().IntVar(&optimizeDays, "days", 730, "days of history to backtest against")
	optimizeCmd.Flags().BoolVar(&optimizeSave, "save", false, "persist and record the winning parameters")
	rootCmd.AddCommand(optimizeCmd)
}
