package generator

import "github.com/learnzy/learnzy/internal/plan"

// Request carries all inputs for one plan generation.
type Request struct {
	Subject        string
	Topics         []string
	Goal           plan.Goal
	Difficulty     plan.Difficulty
	TotalDays      int
	DailyHours     float64
	ExamDate       string // optional, YYYY-MM-DD
	TimePreference plan.TimePreference
	LearningStyle  plan.LearningStyle
	Knowledge      plan.KnowledgeMap // nil means every topic starts at 0
	WeakAreas      []string
	BreaksEnabled  bool
}

// Validate rejects requests that cannot produce a plan. It runs before
// any session is composed.
func (r *Request) Validate() error {
	if r.TotalDays <= 0 {
		return &plan.ValidationError{Field: "total_days", Reason: "must be positive"}
	}
	if r.DailyHours <= 0 {
		return &plan.ValidationError{Field: "daily_hours", Reason: "must be positive"}
	}
	if len(r.Topics) == 0 {
		return &plan.ValidationError{Field: "topics", Reason: "at least one topic is required"}
	}
	if _, err := plan.ParseGoal(string(r.Goal)); err != nil {
		return &plan.ValidationError{Field: "goal", Reason: err.Error()}
	}
	if _, err := plan.ParseDifficulty(string(r.Difficulty)); err != nil {
		return &plan.ValidationError{Field: "difficulty", Reason: err.Error()}
	}
	if _, err := plan.ParseTimePreference(string(r.TimePreference)); err != nil {
		return &plan.ValidationError{Field: "time_preference", Reason: err.Error()}
	}
	if _, err := plan.ParseLearningStyle(string(r.LearningStyle)); err != nil {
		return &plan.ValidationError{Field: "learning_style", Reason: err.Error()}
	}
	return nil
}
