package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"StockSentinel/internal/model"
	"StockSentinel/internal/optimize"
)

// SQLiteRecorder persists predictions and learning results to SQLite.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS predictions (
			id               TEXT PRIMARY KEY,
			ticker           TEXT NOT NULL,
			date             TEXT NOT NULL,
			close            REAL,
			decision         TEXT,
			score            REAL,
			buy_probability  REAL,
			sell_probability REAL,
			hold_probability REAL,
			confidence       TEXT,
			created_at       INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_ticker_date ON predictions(ticker, date)`,

		`CREATE TABLE IF NOT EXISTS accuracy_runs (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			hit_rate            REAL,
			precision           REAL,
			recall              REAL,
			f1_score            REAL,
			total_predictions   INTEGER,
			correct_predictions INTEGER,
			supplied_count      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accuracy_ts ON accuracy_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS optimization_runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			strategy     TEXT,
			symbol       TEXT,
			best_value   REAL,
			n_trials     INTEGER,
			sharpe_ratio REAL,
			max_drawdown REAL,
			win_rate     REAL,
			total_trades INTEGER,
			best_params  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_optimization_ts ON optimization_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordPrediction inserts a prediction, assigning an id when absent.
func (r *SQLiteRecorder) RecordPrediction(p *model.PredictionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`INSERT INTO predictions
		(id, ticker, date, close, decision, score,
		 buy_probability, sell_probability, hold_probability, confidence, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Ticker, p.Date, p.Close, string(p.Decision), p.Score,
		p.BuyProbability, p.SellProbability, p.HoldProbability, string(p.Confidence),
		p.CreatedAt.Unix(),
	)
	return err
}

// ListPredictions returns all stored predictions, oldest first.
func (r *SQLiteRecorder) ListPredictions() ([]model.PredictionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, ticker, date, close, decision, score,
		buy_probability, sell_probability, hold_probability, confidence, created_at
		FROM predictions ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var out []model.PredictionRecord
	for rows.Next() {
		var p model.PredictionRecord
		var decision, confidence string
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Ticker, &p.Date, &p.Close, &decision, &p.Score,
			&p.BuyProbability, &p.SellProbability, &p.HoldProbability, &confidence, &createdAt); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		p.Decision = model.Decision(decision)
		p.Confidence = model.Confidence(confidence)
		p.CreatedAt = time.Unix(createdAt, 0).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) RecordAccuracy(m model.AccuracyMetrics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO accuracy_runs
		(timestamp, hit_rate, precision, recall, f1_score,
		 total_predictions, correct_predictions, supplied_count)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), m.HitRate, m.Precision, m.Recall, m.F1Score,
		m.TotalPredictions, m.CorrectPredictions, m.SuppliedCount,
	)
	return err
}

func (r *SQLiteRecorder) RecordOptimization(res optimize.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	paramsJSON, err := json.Marshal(res.BestParams)
	if err != nil {
		return fmt.Errorf("marshal best params: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO optimization_runs
		(timestamp, strategy, symbol, best_value, n_trials,
		 sharpe_ratio, max_drawdown, win_rate, total_trades, best_params)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), res.Strategy, res.Symbol, res.BestValue, res.NTrials,
		res.Metrics.SharpeRatio, res.Metrics.MaxDrawdown, res.Metrics.WinRate,
		res.Metrics.TotalTrades, string(paramsJSON),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
