package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/learnzy/learnzy/internal/plan"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS study_plans (
	plan_id    TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	document   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS completion_events (
	id           TEXT PRIMARY KEY,
	plan_id      TEXT NOT NULL,
	session_date TEXT NOT NULL,
	completed    INTEGER NOT NULL,
	notes        TEXT NOT NULL DEFAULT '',
	recorded_at  TEXT NOT NULL
);
`

// SQLiteStore keeps one row per plan with the serialized plan document
// as payload, plus an append-only audit trail of completion updates.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at dsn, applies the
// recommended pragmas and ensures the schema exists.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadAll returns every stored plan in insertion order.
func (s *SQLiteStore) LoadAll(ctx context.Context) ([]plan.Plan, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT document FROM study_plans ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []plan.Plan
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		var p plan.Plan
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, fmt.Errorf("decode plan document: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// LoadByID returns the plan with the given id.
func (s *SQLiteStore) LoadByID(ctx context.Context, planID string) (*plan.Plan, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		"SELECT document FROM study_plans WHERE plan_id = ?", planID,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %q: %w", planID, ErrPlanNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	var p plan.Plan
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return nil, fmt.Errorf("decode plan document: %w", err)
	}
	return &p, nil
}

// Upsert inserts the plan or replaces the document of an existing row.
func (s *SQLiteStore) Upsert(ctx context.Context, p *plan.Plan) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode plan document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO study_plans (plan_id, created_at, document) VALUES (?, ?, ?)
		ON CONFLICT(plan_id) DO UPDATE SET created_at = excluded.created_at, document = excluded.document`,
		p.PlanID, p.CreatedAt, string(doc),
	)
	if err != nil {
		return fmt.Errorf("upsert plan: %w", err)
	}
	return nil
}

// UpdateSessionCompletion rewrites the plan document with the session's
// completion state applied and records an audit event.
func (s *SQLiteStore) UpdateSessionCompletion(ctx context.Context, planID, date string, completed bool, notes string) error {
	p, err := s.LoadByID(ctx, planID)
	if err != nil {
		return err
	}

	now := time.Now().Format(time.RFC3339)
	if err := completeSession(p, date, completed, notes, now); err != nil {
		return fmt.Errorf("plan %q session %q: %w", planID, date, err)
	}

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode plan document: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE study_plans SET document = ? WHERE plan_id = ?",
		string(doc), planID,
	); err != nil {
		return fmt.Errorf("update plan: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO completion_events (id, plan_id, session_date, completed, notes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), planID, date, boolToInt(completed), notes, now,
	); err != nil {
		return fmt.Errorf("record completion event: %w", err)
	}

	return tx.Commit()
}

// DefaultSQLitePath resolves the database path next to the default
// state file location.
func DefaultSQLitePath() (string, error) {
	statePath, err := DefaultStatePath()
	if err != nil {
		return "", err
	}
	p := filepath.Join(filepath.Dir(statePath), "learnzy.db")
	return p, EnsureDir(p)
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
