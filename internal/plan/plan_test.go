package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *Plan {
	exam := "2026-04-01"
	return &Plan{
		PlanID:          "plan_20260301_103000",
		CreatedAt:       "2026-03-01T10:30:00Z",
		Subject:         "Machine Learning",
		Goal:            GoalExamPrep,
		ExamDate:        &exam,
		TotalDays:       2,
		DailyHours:      2.5,
		DifficultyLevel: DifficultyIntermediate,
		Sessions: []Session{
			{
				Date:            "2026-03-01",
				TimeSlot:        "18:00 - 20:00",
				DurationMinutes: 150,
				Topic:           "Neural Networks",
				Subtopics:       []string{"Neural Networks - Core Concepts", "Neural Networks - Practice Problems"},
				Difficulty:      DifficultyBeginner,
				StudyTechniques: []string{"Active Reading", "Note Taking", "Diagrams"},
				Breaks: []Break{
					{AfterMinutes: 25, DurationMinutes: 5, Type: BreakShort},
					{AfterMinutes: 100, DurationMinutes: 15, Type: BreakLong},
				},
				Resources:           []string{"YouTube tutorials"},
				Goals:               []string{"Understand core concepts of Neural Networks"},
				PreSessionPrep:      "Set specific goals for this session",
				PostSessionReview:   "Summarize key learnings in your own words",
				EstimatedFocusLevel: FocusMedium,
			},
			{
				Date:            "2026-03-02",
				TimeSlot:        "18:00 - 20:00",
				DurationMinutes: 150,
				Topic:           "Decision Trees",
			},
		},
		Milestones: []Milestone{
			{Day: 1, Name: "Foundation Complete", Description: "Complete 25% of study plan", Celebration: "Take a day to review and celebrate your progress!"},
		},
		WeeklyReviews:           []string{},
		AdaptiveRecommendations: []string{"🧠 Take breaks every 25-30 minutes to maintain peak focus"},
		MotivationalTips:        []string{"🎯 Focus on progress, not perfection."},
	}
}

func TestPlanRoundTrip(t *testing.T) {
	original := samplePlan()

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Plan
	require.NoError(t, json.Unmarshal(raw, &restored))

	assert.Equal(t, *original, restored)
}

func TestPlanDocumentFieldNames(t *testing.T) {
	raw, err := json.Marshal(samplePlan())
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &top))

	for _, key := range []string{
		"plan_id", "created_at", "subject", "goal", "exam_date",
		"total_days", "daily_hours", "difficulty_level", "sessions",
		"milestones", "weekly_reviews", "adaptive_recommendations",
		"motivational_tips",
	} {
		assert.Contains(t, top, key)
	}

	var sessions []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(top["sessions"], &sessions))
	require.NotEmpty(t, sessions)

	for _, key := range []string{
		"date", "time_slot", "duration_minutes", "topic", "subtopics",
		"difficulty", "study_techniques", "breaks", "resources", "goals",
		"pre_session_prep", "post_session_review", "estimated_focus_level",
		"completed", "notes", "completed_at",
	} {
		assert.Contains(t, sessions[0], key)
	}

	var breaks []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(sessions[0]["breaks"], &breaks))
	require.NotEmpty(t, breaks)
	for _, key := range []string{"after_minutes", "duration_minutes", "type"} {
		assert.Contains(t, breaks[0], key)
	}
}

func TestSessionOn(t *testing.T) {
	p := samplePlan()

	s := p.SessionOn("2026-03-02")
	require.NotNil(t, s)
	assert.Equal(t, "Decision Trees", s.Topic)

	assert.Nil(t, p.SessionOn("2026-03-03"))
}

func TestCompletedCount(t *testing.T) {
	p := samplePlan()
	assert.Equal(t, 0, p.CompletedCount())

	p.Sessions[0].Completed = true
	assert.Equal(t, 1, p.CompletedCount())
}

func TestSessionSummaries(t *testing.T) {
	p := samplePlan()
	rows := p.SessionSummaries()
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-03-01", rows[0].Date)
	assert.Equal(t, "Neural Networks", rows[0].Topic)
	assert.Equal(t, 2.5, rows[0].DurationHours)
	assert.Equal(t, DifficultyBeginner, rows[0].Difficulty)
}
