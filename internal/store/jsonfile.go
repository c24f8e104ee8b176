package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/learnzy/learnzy/internal/plan"
)

// FileStore persists plans as one JSON document on disk, compatible with
// the dashboard's state.json. Every operation is a whole-document
// read-modify-write; the system assumes a single active learner, so no
// cross-process locking is attempted.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON document at path.
// A missing file reads as an empty document.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll returns every stored plan in document order.
func (s *FileStore) LoadAll(ctx context.Context) ([]plan.Plan, error) {
	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	return doc.StudyPlans, nil
}

// LoadByID returns the plan with the given id.
func (s *FileStore) LoadByID(ctx context.Context, planID string) (*plan.Plan, error) {
	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	for i := range doc.StudyPlans {
		if doc.StudyPlans[i].PlanID == planID {
			return &doc.StudyPlans[i], nil
		}
	}
	return nil, fmt.Errorf("plan %q: %w", planID, ErrPlanNotFound)
}

// Upsert replaces the plan with a matching id or appends a new one.
func (s *FileStore) Upsert(ctx context.Context, p *plan.Plan) error {
	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	replaced := false
	for i := range doc.StudyPlans {
		if doc.StudyPlans[i].PlanID == p.PlanID {
			doc.StudyPlans[i] = *p
			replaced = true
			break
		}
	}
	if !replaced {
		doc.StudyPlans = append(doc.StudyPlans, *p)
	}

	return s.writeDocument(doc)
}

// UpdateSessionCompletion marks one session complete (or not) and
// stamps completed_at.
func (s *FileStore) UpdateSessionCompletion(ctx context.Context, planID, date string, completed bool, notes string) error {
	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	for i := range doc.StudyPlans {
		if doc.StudyPlans[i].PlanID != planID {
			continue
		}
		if err := completeSession(&doc.StudyPlans[i], date, completed, notes, time.Now().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("plan %q session %q: %w", planID, date, err)
		}
		return s.writeDocument(doc)
	}
	return fmt.Errorf("plan %q: %w", planID, ErrPlanNotFound)
}

func (s *FileStore) readDocument() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	return &doc, nil
}

func (s *FileStore) writeDocument(doc *Document) error {
	if doc.StudyPlans == nil {
		doc.StudyPlans = []plan.Plan{}
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	if err := EnsureDir(s.path); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
