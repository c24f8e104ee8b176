package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/learnzy/learnzy/internal/plan"
)

// MemoryStore is an in-memory PlanStore used by tests and as a harness
// for the generation engine. Plans are deep-copied on the way in and
// out so callers cannot mutate stored state behind the store's back.
type MemoryStore struct {
	plans []plan.Plan
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadAll returns every stored plan in insertion order.
func (s *MemoryStore) LoadAll(ctx context.Context) ([]plan.Plan, error) {
	out := make([]plan.Plan, len(s.plans))
	for i := range s.plans {
		out[i] = *clonePlan(&s.plans[i])
	}
	return out, nil
}

// LoadByID returns the plan with the given id.
func (s *MemoryStore) LoadByID(ctx context.Context, planID string) (*plan.Plan, error) {
	for i := range s.plans {
		if s.plans[i].PlanID == planID {
			return clonePlan(&s.plans[i]), nil
		}
	}
	return nil, fmt.Errorf("plan %q: %w", planID, ErrPlanNotFound)
}

// Upsert replaces the plan with a matching id or appends a new one.
func (s *MemoryStore) Upsert(ctx context.Context, p *plan.Plan) error {
	cp := clonePlan(p)
	for i := range s.plans {
		if s.plans[i].PlanID == p.PlanID {
			s.plans[i] = *cp
			return nil
		}
	}
	s.plans = append(s.plans, *cp)
	return nil
}

// UpdateSessionCompletion marks one session complete (or not) and
// stamps completed_at.
func (s *MemoryStore) UpdateSessionCompletion(ctx context.Context, planID, date string, completed bool, notes string) error {
	for i := range s.plans {
		if s.plans[i].PlanID != planID {
			continue
		}
		if err := completeSession(&s.plans[i], date, completed, notes, time.Now().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("plan %q session %q: %w", planID, date, err)
		}
		return nil
	}
	return fmt.Errorf("plan %q: %w", planID, ErrPlanNotFound)
}

// clonePlan deep-copies a plan through its JSON form.
func clonePlan(p *plan.Plan) *plan.Plan {
	raw, err := json.Marshal(p)
	if err != nil {
		// Plans are plain data; marshaling cannot fail for valid input.
		panic(err)
	}
	var cp plan.Plan
	if err := json.Unmarshal(raw, &cp); err != nil {
		panic(err)
	}
	return &cp
}
