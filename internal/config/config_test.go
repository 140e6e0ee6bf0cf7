package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SLACK_WEBHOOK_URL", "TICKERS", "HTTPS_PROXY",
		"CRON_DAILY", "CRON_WEEKLY", "SQLITE_PATH", "OPTIMIZE_TRIALS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if cfg.Schedule.DailyCron != "0 0 22 * * 1-5" {
		t.Errorf("daily cron default: got %q", cfg.Schedule.DailyCron)
	}
	if cfg.Database.SQLitePath != "data/stock_sentinel.db" {
		t.Errorf("sqlite path default: got %q", cfg.Database.SQLitePath)
	}
	if cfg.Optimize.Symbol != "SPY" || cfg.Optimize.Trials != 50 {
		t.Errorf("optimize defaults: got %q/%d", cfg.Optimize.Symbol, cfg.Optimize.Trials)
	}
	if cfg.Files.Params == "" || cfg.Files.Calibration == "" {
		t.Error("file path defaults should be set")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
tickers: [AAPL, MSFT]
slack:
  webhook_url: https://hooks.slack.com/services/T/B/X
optimize:
  symbol: QQQ
  trials: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "AAPL" {
		t.Errorf("tickers: got %v", cfg.Tickers)
	}
	if cfg.Slack.WebhookURL != "https://hooks.slack.com/services/T/B/X" {
		t.Errorf("webhook: got %q", cfg.Slack.WebhookURL)
	}
	if cfg.Optimize.Symbol != "QQQ" || cfg.Optimize.Trials != 25 {
		t.Errorf("optimize: got %q/%d", cfg.Optimize.Symbol, cfg.Optimize.Trials)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICKERS", " aapl, msft ,tsla ")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.example/env")
	t.Setenv("OPTIMIZE_TRIALS", "99")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Tickers) != 3 || cfg.Tickers[2] != "tsla" {
		t.Errorf("tickers from env: got %v", cfg.Tickers)
	}
	if cfg.Slack.WebhookURL != "https://hooks.example/env" {
		t.Errorf("webhook from env: got %q", cfg.Slack.WebhookURL)
	}
	if cfg.Optimize.Trials != 99 {
		t.Errorf("trials from env: got %d", cfg.Optimize.Trials)
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("empty ticker list should fail validation")
	}

	cfg.Tickers = []string{"AAPL"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Optimize.Trials = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative trial count should fail validation")
	}
}
