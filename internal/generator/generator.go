// Package generator assembles complete study plans: it allocates time
// across topics, drives the day loop of topic selection and session
// composition, and attaches milestones, weekly reviews, recommendations
// and motivational tips.
package generator

import (
	"fmt"
	"time"

	"github.com/learnzy/learnzy/internal/allocate"
	"github.com/learnzy/learnzy/internal/compose"
	"github.com/learnzy/learnzy/internal/plan"
	"github.com/learnzy/learnzy/internal/spaced"
)

// planIDLayout formats the generation timestamp into a plan id.
// Generating two plans within the same second collides; single-learner
// usage makes that acceptable.
const planIDLayout = "20060102_150405"

// Generate builds a plan starting today.
func Generate(req Request) (*plan.Plan, error) {
	return GenerateAt(req, time.Now())
}

// GenerateAt builds a plan whose first session falls on now's date.
// Generation is pure over (req, now): it performs no I/O and is safe to
// retry.
func GenerateAt(req Request, now time.Time) (*plan.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	knowledge := req.Knowledge
	if knowledge == nil {
		knowledge = plan.KnowledgeMap{}
	}

	alloc, err := allocate.Hours(req.Topics, req.TotalDays, req.DailyHours, knowledge, req.WeakAreas)
	if err != nil {
		return nil, err
	}

	history := spaced.NewHistory(req.Topics)
	sessions := make([]plan.Session, 0, req.TotalDays)

	for day := 1; day <= req.TotalDays; day++ {
		topic := spaced.Select(req.Topics, alloc, day, history)
		date := now.AddDate(0, 0, day-1).Format(plan.DateLayout)

		sessions = append(sessions, compose.Session(compose.Input{
			Topic:          topic,
			Date:           date,
			Day:            day,
			TotalDays:      req.TotalDays,
			DailyHours:     req.DailyHours,
			Difficulty:     req.Difficulty,
			TimePreference: req.TimePreference,
			LearningStyle:  req.LearningStyle,
			Goal:           req.Goal,
			BreaksEnabled:  req.BreaksEnabled,
		}))

		history.Record(topic, day)
	}

	var examDate *string
	if req.ExamDate != "" {
		d := req.ExamDate
		examDate = &d
	}

	return &plan.Plan{
		PlanID:                  "plan_" + now.Format(planIDLayout),
		CreatedAt:               now.Format(time.RFC3339),
		Subject:                 req.Subject,
		Goal:                    req.Goal,
		ExamDate:                examDate,
		TotalDays:               req.TotalDays,
		DailyHours:              req.DailyHours,
		DifficultyLevel:         req.Difficulty,
		Sessions:                sessions,
		Milestones:              Milestones(req.TotalDays),
		WeeklyReviews:           WeeklyReviews(req.TotalDays, now),
		AdaptiveRecommendations: Recommendations(req.Difficulty, req.Goal, req.DailyHours, req.LearningStyle),
		MotivationalTips:        MotivationalTips(),
	}, nil
}

// Milestones returns the four fixed checkpoints at 25/50/75/100% of the
// plan's duration. Fractional days truncate.
func Milestones(totalDays int) []plan.Milestone {
	days := []int{
		int(float64(totalDays) * 0.25),
		int(float64(totalDays) * 0.5),
		int(float64(totalDays) * 0.75),
		totalDays,
	}
	names := []string{
		"Foundation Complete",
		"Halfway Champion",
		"Advanced Mastery",
		"Goal Achieved",
	}

	milestones := make([]plan.Milestone, len(days))
	for i, day := range days {
		milestones[i] = plan.Milestone{
			Day:         day,
			Name:        names[i],
			Description: fmt.Sprintf("Complete %d%% of study plan", (i+1)*25),
			Celebration: "Take a day to review and celebrate your progress!",
		}
	}
	return milestones
}

// WeeklyReviews returns a review marker for every full week of the plan.
func WeeklyReviews(totalDays int, now time.Time) []string {
	var reviews []string
	for week := 7; week <= totalDays; week += 7 {
		date := now.AddDate(0, 0, week).Format(plan.DateLayout)
		reviews = append(reviews, fmt.Sprintf("Week %d Review - %s", week/7, date))
	}
	return reviews
}
