package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"StockSentinel/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduler daemon",
	Long: `Starts the cron scheduler: the daily prediction sweep over the
portfolio and the weekly learning run. Blocks until SIGINT or SIGTERM.
Set RUN_ON_START=true to execute the daily sweep immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Cfg.Validate(); err != nil {
			return err
		}
		if len(a.Portfolio.List()) == 0 {
			// Seed the portfolio from config so a fresh deployment works
			// without a manual `portfolio add` per ticker.
			for _, t := range a.Cfg.Tickers {
				if _, err := a.Portfolio.Add(t); err != nil {
					return err
				}
			}
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sched := scheduler.New(ctx, a.Analyzer, a.Learner, a.Portfolio, a.Notifier, a.Recorder, log.Logger)
		if err := sched.RegisterAll(a.Cfg.Schedule.DailyCron, a.Cfg.Schedule.WeeklyCron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Info().Msg("RUN_ON_START enabled, executing daily task now")
			go sched.RunDailyNow()
		}

		log.Info().Msg("StockSentinel is running, press Ctrl+C to stop")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info().Msg("shutdown signal received, stopping")
		cancel()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
