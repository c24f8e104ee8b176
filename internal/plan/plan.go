// Package plan defines the study-plan domain model: the plan aggregate,
// its sessions and milestones, and the closed string enumerations used
// across generation and persistence. JSON field names are part of the
// persisted document contract and must not change.
package plan

import "time"

// KnowledgeMap maps a topic to prior mastery in [0,100]. Topics absent
// from the map default to 0.
type KnowledgeMap map[string]int

// Allocation maps a topic to its share of the total study hours.
type Allocation map[string]float64

// Plan is the aggregate root for one generated study schedule.
// Sessions are the only mutable sub-parts after creation, and only via
// the completion-update contract.
type Plan struct {
	PlanID                  string      `json:"plan_id"`
	CreatedAt               string      `json:"created_at"`
	Subject                 string      `json:"subject"`
	Goal                    Goal        `json:"goal"`
	ExamDate                *string     `json:"exam_date"`
	TotalDays               int         `json:"total_days"`
	DailyHours              float64     `json:"daily_hours"`
	DifficultyLevel         Difficulty  `json:"difficulty_level"`
	Sessions                []Session   `json:"sessions"`
	Milestones              []Milestone `json:"milestones"`
	WeeklyReviews           []string    `json:"weekly_reviews"`
	AdaptiveRecommendations []string    `json:"adaptive_recommendations"`
	MotivationalTips        []string    `json:"motivational_tips"`
}

// SessionOn returns the session scheduled for the given date
// (DateLayout), or nil if the plan has no session that day.
func (p *Plan) SessionOn(date string) *Session {
	for i := range p.Sessions {
		if p.Sessions[i].Date == date {
			return &p.Sessions[i]
		}
	}
	return nil
}

// TodaySession returns the session scheduled for now's calendar date.
func (p *Plan) TodaySession(now time.Time) *Session {
	return p.SessionOn(now.Format(DateLayout))
}

// CompletedCount returns how many sessions are marked completed.
func (p *Plan) CompletedCount() int {
	n := 0
	for i := range p.Sessions {
		if p.Sessions[i].Completed {
			n++
		}
	}
	return n
}

// SessionSummary is a flattened per-session row for list-style display.
type SessionSummary struct {
	Date          string     `json:"date"`
	Topic         string     `json:"topic"`
	DurationHours float64    `json:"duration_hours"`
	TimeSlot      string     `json:"time_slot"`
	Difficulty    Difficulty `json:"difficulty"`
	FocusLevel    FocusLevel `json:"focus_level"`
}

// SessionSummaries flattens the plan's sessions into display rows.
// Duration is reported in hours rounded to two decimals.
func (p *Plan) SessionSummaries() []SessionSummary {
	out := make([]SessionSummary, 0, len(p.Sessions))
	for i := range p.Sessions {
		s := &p.Sessions[i]
		hours := float64(s.DurationMinutes) / 60
		out = append(out, SessionSummary{
			Date:          s.Date,
			Topic:         s.Topic,
			DurationHours: float64(int(hours*100+0.5)) / 100,
			TimeSlot:      s.TimeSlot,
			Difficulty:    s.Difficulty,
			FocusLevel:    s.EstimatedFocusLevel,
		})
	}
	return out
}
