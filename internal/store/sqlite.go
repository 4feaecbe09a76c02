package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "kvk-trader/internal/errors"
	"kvk-trader/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Exchange holidays from the market calendar
	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT PRIMARY KEY,
		description TEXT NOT NULL DEFAULT ''
	);

	-- Journal of evaluated trade plans
	CREATE TABLE IF NOT EXISTS trade_plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		capital REAL NOT NULL,
		entry_price REAL NOT NULL,
		stop_loss REAL NOT NULL,
		position INTEGER NOT NULL,
		risk_amount REAL NOT NULL,
		risk_percent REAL NOT NULL,
		valid INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_trade_plans_symbol ON trade_plans(symbol);
	CREATE INDEX IF NOT EXISTS idx_trade_plans_created ON trade_plans(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveHoliday inserts or updates a market holiday.
func (s *SQLiteStore) SaveHoliday(ctx context.Context, holiday models.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := time.Parse("2006-01-02", holiday.Date); err != nil {
		return apperrors.NewValidationError("date", holiday.Date, "want YYYY-MM-DD")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO holidays (date, description) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET description = excluded.description`,
		holiday.Date, holiday.Description)
	return err
}

// ListHolidays returns all holidays ordered by date.
func (s *SQLiteStore) ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, description FROM holidays ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []models.Holiday
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.Date, &h.Description); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// DeleteHoliday removes a holiday by date.
func (s *SQLiteStore) DeleteHoliday(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE date = ?`, date)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.Wrapf(apperrors.ErrDataNotFound, "no holiday on %s", date)
	}
	return nil
}

// SavePlan appends a trade plan to the journal and fills in its ID.
func (s *SQLiteStore) SavePlan(ctx context.Context, plan *models.TradePlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO trade_plans
		 (symbol, capital, entry_price, stop_loss, position, risk_amount, risk_percent, valid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.Symbol, plan.Capital, plan.EntryPrice, plan.StopLoss,
		plan.Position, plan.RiskAmount, plan.RiskPercent, plan.Valid, plan.CreatedAt)
	if err != nil {
		return err
	}

	plan.ID, err = result.LastInsertId()
	return err
}

// ListPlans returns the most recent trade plans, newest first. A limit
// of 0 or less returns everything.
func (s *SQLiteStore) ListPlans(ctx context.Context, limit int) ([]models.TradePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, symbol, capital, entry_price, stop_loss, position,
	          risk_amount, risk_percent, valid, created_at
	          FROM trade_plans ORDER BY created_at DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.TradePlan
	for rows.Next() {
		var p models.TradePlan
		if err := rows.Scan(&p.ID, &p.Symbol, &p.Capital, &p.EntryPrice, &p.StopLoss,
			&p.Position, &p.RiskAmount, &p.RiskPercent, &p.Valid, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
