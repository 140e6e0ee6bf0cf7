package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "Stock analysis and trading recommendations",
	Long: `StockSentinel analyzes daily price history with technical indicators
and chart patterns, scores a BUY/SELL/HOLD recommendation per ticker,
and learns from its own recorded predictions over time.`,
	SilenceUsage: true,
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := zerolog.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default configs/config.yaml)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
