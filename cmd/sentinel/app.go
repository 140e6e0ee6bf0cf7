package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"StockSentinel/internal/analyze"
	"StockSentinel/internal/config"
	"StockSentinel/internal/fetcher"
	"StockSentinel/internal/learn"
	"StockSentinel/internal/notifier"
	"StockSentinel/internal/params"
	"StockSentinel/internal/portfolio"
	"StockSentinel/internal/recorder"
)

// app bundles the wired collaborators every subcommand needs.
type app struct {
	Cfg       *config.Config
	Fetcher   fetcher.Fetcher
	Params    params.Set
	Analyzer  *analyze.Analyzer
	Learner   *learn.Learner
	Portfolio *portfolio.Manager
	Notifier  *notifier.SlackNotifier
	Recorder  recorder.Recorder

	closeRecorder func() error
}

// newApp loads configuration and wires the dependency graph. A broken
// SQLite database degrades to the noop recorder rather than refusing to
// start; predictions are simply not persisted in that mode.
func newApp() (*app, error) {
	path := cfgPath
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	set, fromFile, err := params.LoadOptimized(cfg.Files.Params)
	if err != nil {
		return nil, err
	}
	log.Info().Bool("optimized", fromFile).Msg("parameters loaded")

	if cal, ok, err := params.LoadCalibration(cfg.Files.Calibration); err != nil {
		return nil, err
	} else if ok {
		set.Calibration = cal
	}

	yf := fetcher.NewYahooFetcher(cfg.Proxy)
	sentiment := fetcher.NewFearGreedFetcher(cfg.Proxy)

	var rec recorder.Recorder
	closeRec := func() error { return nil }
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite recorder unavailable, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			closeRec = sr.Close
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	pf, err := portfolio.NewManager(cfg.Files.Portfolio)
	if err != nil {
		closeRec()
		return nil, err
	}

	a := analyze.New(yf, sentiment, set, log.Logger)
	l := learn.New(yf, rec, learn.Config{
		ParamsPath:      cfg.Files.Params,
		CalibrationPath: cfg.Files.Calibration,
		MetricsPath:     cfg.Files.Metrics,
		OptimizeSymbol:  cfg.Optimize.Symbol,
		OptimizeTrials:  cfg.Optimize.Trials,
	}, log.Logger)

	return &app{
		Cfg:           cfg,
		Fetcher:       yf,
		Params:        set,
		Analyzer:      a,
		Learner:       l,
		Portfolio:     pf,
		Notifier:      notifier.NewSlackNotifier(cfg.Slack.WebhookURL, cfg.Proxy),
		Recorder:      rec,
		closeRecorder: closeRec,
	}, nil
}

func (a *app) Close() {
	if err := a.closeRecorder(); err != nil {
		log.Error().Err(err).Msg("close recorder")
	}
}
