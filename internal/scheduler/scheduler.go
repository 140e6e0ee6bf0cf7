// Package scheduler runs the recurring tasks: the daily prediction sweep
// over the portfolio and the weekly learning run.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"StockSentinel/internal/analyze"
	"StockSentinel/internal/learn"
	"StockSentinel/internal/model"
	"StockSentinel/internal/notifier"
	"StockSentinel/internal/portfolio"
	"StockSentinel/internal/recorder"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analyze.Analyzer
	Learner   *learn.Learner
	Portfolio *portfolio.Manager
	Notifier  *notifier.SlackNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context
	Log       zerolog.Logger
}

// New creates a scheduler wired to the given collaborators.
func New(ctx context.Context, a *analyze.Analyzer, l *learn.Learner, pf *portfolio.Manager, n *notifier.SlackNotifier, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  a,
		Learner:   l,
		Portfolio: pf,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
		Log:       log,
	}
}

// RegisterAll registers the daily and weekly tasks.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyTask); err != nil {
		return fmt.Errorf("register weekly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info().Msg("scheduler stopped")
}

// RunDailyNow executes the daily task immediately (manual trigger).
func (s *Scheduler) RunDailyNow() { s.dailyTask() }

// RunWeeklyNow executes the weekly task immediately (manual trigger).
func (s *Scheduler) RunWeeklyNow() { s.weeklyTask() }

// dailyTask analyzes every portfolio ticker, records all predictions,
// and notifies only the actionable (non-HOLD) ones. A failed ticker is
// logged and skipped so one bad symbol cannot abort the sweep.
func (s *Scheduler) dailyTask() {
	tickers := s.Portfolio.List()
	if len(tickers) == 0 {
		s.Log.Warn().Msg("daily task: portfolio is empty")
		return
	}
	s.Log.Info().Int("tickers", len(tickers)).Msg("running daily task")

	sentiment := s.Analyzer.FetchSentiment(s.Ctx)
	for _, ticker := range tickers {
		report, err := s.Analyzer.Ticker(s.Ctx, ticker, sentiment)
		if err != nil {
			s.Log.Error().Err(err).Str("ticker", ticker).Msg("daily analysis failed")
			continue
		}

		pred := report.Prediction()
		if err := s.Recorder.RecordPrediction(&pred); err != nil {
			s.Log.Error().Err(err).Str("ticker", ticker).Msg("record prediction failed")
		}

		if report.Opinion.Decision != model.DecisionHold {
			s.trySend(notifier.FormatReport(report))
		}
	}
}

// weeklyTask runs the learning loop and notifies the accuracy summary.
func (s *Scheduler) weeklyTask() {
	s.Log.Info().Msg("running weekly task")
	out, err := s.Learner.Run(s.Ctx)
	if err != nil {
		s.Log.Error().Err(err).Msg("weekly learning failed")
		s.trySend(fmt.Sprintf(":warning: weekly learning failed: %v", err))
		return
	}
	s.trySend(notifier.FormatAccuracy(out.Accuracy))
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.Log.Error().Err(err).Msg("send notification failed")
	}
}
