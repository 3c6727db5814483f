package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists one row per simulation run, the successor of the old
// budget_history.csv kept by the web app.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS plan_runs (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at     TEXT NOT NULL,
	strategy       TEXT NOT NULL,
	loan_count     INTEGER NOT NULL,
	extra_budget   REAL NOT NULL,
	months         INTEGER NOT NULL,
	total_interest REAL NOT NULL,
	paid_off       INTEGER NOT NULL
);
`

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Run is one recorded simulation.
type Run struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Strategy      string    `json:"strategy"`
	LoanCount     int       `json:"loan_count"`
	ExtraBudget   float64   `json:"extra_budget"`
	Months        int       `json:"months"`
	TotalInterest float64   `json:"total_interest"`
	PaidOff       bool      `json:"paid_off"`
}

func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO plan_runs (created_at, strategy, loan_count, extra_budget, months, total_interest, paid_off)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.CreatedAt.Format(time.RFC3339), r.Strategy, r.LoanCount, r.ExtraBudget,
		r.Months, r.TotalInterest, boolToInt(r.PaidOff),
	)
	if err != nil {
		return 0, fmt.Errorf("insert plan run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	slog.InfoContext(ctx, "Plan run recorded",
		"id", id, "strategy", r.Strategy, "months", r.Months)
	return id, nil
}

// Recent returns the newest runs first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, strategy, loan_count, extra_budget, months, total_interest, paid_off
		 FROM plan_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plan runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var createdAt string
		var paidOff int
		if err := rows.Scan(&r.ID, &createdAt, &r.Strategy, &r.LoanCount,
			&r.ExtraBudget, &r.Months, &r.TotalInterest, &paidOff); err != nil {
			return nil, fmt.Errorf("scan plan run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		r.PaidOff = paidOff != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
