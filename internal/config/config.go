package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers []string `yaml:"tickers"`
	Slack   struct {
		WebhookURL string `yaml:"webhook_url"`
	} `yaml:"slack"`
	Schedule struct {
		DailyCron  string `yaml:"daily_cron"`
		WeeklyCron string `yaml:"weekly_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Files struct {
		Portfolio   string `yaml:"portfolio"`
		Params      string `yaml:"params"`
		Calibration string `yaml:"calibration"`
		Metrics     string `yaml:"metrics"`
	} `yaml:"files"`
	Optimize struct {
		Symbol string `yaml:"symbol"`
		Trials int    `yaml:"trials"`
	} `yaml:"optimize"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SLACK_WEBHOOK_URL"); v != "" {
		cfg.Slack.WebhookURL = v
	}
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitList(v)
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("OPTIMIZE_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Optimize.Trials = n
		}
	}

	// Defaults
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Schedule.WeeklyCron == "" {
		cfg.Schedule.WeeklyCron = "0 0 8 * * 6"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stock_sentinel.db"
	}
	if cfg.Files.Portfolio == "" {
		cfg.Files.Portfolio = "data/portfolio.json"
	}
	if cfg.Files.Params == "" {
		cfg.Files.Params = "data/optimized_params.json"
	}
	if cfg.Files.Calibration == "" {
		cfg.Files.Calibration = "data/calibration.json"
	}
	if cfg.Files.Metrics == "" {
		cfg.Files.Metrics = "data/accuracy_metrics.json"
	}
	if cfg.Optimize.Symbol == "" {
		cfg.Optimize.Symbol = "SPY"
	}
	if cfg.Optimize.Trials == 0 {
		cfg.Optimize.Trials = 50
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers is required")
	}
	if c.Optimize.Trials <= 0 {
		return fmt.Errorf("optimize.trials must be positive")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
