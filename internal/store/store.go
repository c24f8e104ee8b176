// Package store persists study plans. Every backend exposes the same
// keyed-record contract over the plan document: load all plans, load one
// by id, upsert by id, and update a single session's completion state.
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/learnzy/learnzy/internal/plan"
)

// ErrPlanNotFound reports a lookup or update for an unknown plan id.
var ErrPlanNotFound = errors.New("plan not found")

// ErrSessionNotFound reports a completion update for a date the plan
// has no session on.
var ErrSessionNotFound = errors.New("session not found")

// PlanStore is the persistence contract the engine and CLI depend on.
type PlanStore interface {
	// LoadAll returns every stored plan in insertion order.
	LoadAll(ctx context.Context) ([]plan.Plan, error)

	// LoadByID returns the plan with the given id, or ErrPlanNotFound.
	LoadByID(ctx context.Context, planID string) (*plan.Plan, error)

	// Upsert replaces the stored plan with the same id, or appends the
	// plan if the id is new.
	Upsert(ctx context.Context, p *plan.Plan) error

	// UpdateSessionCompletion sets completed, notes and a fresh
	// completed_at on the session scheduled for date (YYYY-MM-DD).
	// Returns ErrPlanNotFound or ErrSessionNotFound when nothing
	// matches; no other field of the plan changes.
	UpdateSessionCompletion(ctx context.Context, planID, date string, completed bool, notes string) error
}

// Document is the persisted top-level shape shared by all backends and
// by external consumers of the state file.
type Document struct {
	StudyPlans []plan.Plan `json:"study_plans"`
}

// completeSession applies the completion-update contract to the session
// matching date inside p. completedAt is stored as given (RFC 3339).
func completeSession(p *plan.Plan, date string, completed bool, notes, completedAt string) error {
	s := p.SessionOn(date)
	if s == nil {
		return ErrSessionNotFound
	}
	s.Completed = completed
	s.Notes = notes
	s.CompletedAt = &completedAt
	return nil
}

// DefaultStatePath resolves the state file path in priority order:
// 1. LEARNZY_STATE environment variable
// 2. $XDG_DATA_HOME/learnzy/state.json
// 3. ~/.local/share/learnzy/state.json
func DefaultStatePath() (string, error) {
	if p := os.Getenv("LEARNZY_STATE"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "learnzy", "state.json")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
