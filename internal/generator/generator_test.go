package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnzy/learnzy/internal/plan"
)

var genesis = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		Subject:        "Machine Learning",
		Topics:         []string{"Linear Regression", "Logistic Regression", "Neural Networks", "Decision Trees", "Deep Learning"},
		Goal:           plan.GoalExamPrep,
		Difficulty:     plan.DifficultyIntermediate,
		TotalDays:      30,
		DailyHours:     2.5,
		ExamDate:       "2026-04-15",
		TimePreference: plan.TimeEvening,
		LearningStyle:  plan.StyleVisual,
		Knowledge: plan.KnowledgeMap{
			"Linear Regression":   40,
			"Logistic Regression": 20,
			"Decision Trees":      30,
		},
		WeakAreas:     []string{"Neural Networks", "Deep Learning"},
		BreaksEnabled: true,
	}
}

func TestGenerateAtSessionsCoverEveryDay(t *testing.T) {
	req := validRequest()
	p, err := GenerateAt(req, genesis)
	require.NoError(t, err)

	require.Len(t, p.Sessions, req.TotalDays)

	seen := make(map[string]bool, len(p.Sessions))
	for i, s := range p.Sessions {
		want := genesis.AddDate(0, 0, i).Format(plan.DateLayout)
		assert.Equal(t, want, s.Date, "session %d", i)
		assert.False(t, seen[s.Date], "duplicate date %s", s.Date)
		seen[s.Date] = true
	}
}

func TestGenerateAtPlanMetadata(t *testing.T) {
	req := validRequest()
	p, err := GenerateAt(req, genesis)
	require.NoError(t, err)

	assert.Equal(t, "plan_20260301_103000", p.PlanID)
	assert.Equal(t, genesis.Format(time.RFC3339), p.CreatedAt)
	assert.Equal(t, "Machine Learning", p.Subject)
	assert.Equal(t, plan.GoalExamPrep, p.Goal)
	require.NotNil(t, p.ExamDate)
	assert.Equal(t, "2026-04-15", *p.ExamDate)
	assert.Equal(t, 30, p.TotalDays)
	assert.Equal(t, 2.5, p.DailyHours)
	assert.Equal(t, plan.DifficultyIntermediate, p.DifficultyLevel)
	assert.Len(t, p.MotivationalTips, 8)
}

func TestGenerateAtNoExamDate(t *testing.T) {
	req := validRequest()
	req.ExamDate = ""
	p, err := GenerateAt(req, genesis)
	require.NoError(t, err)
	assert.Nil(t, p.ExamDate)
}

func TestGenerateAtCoversEveryTopicFirst(t *testing.T) {
	// Never-studied topics outrank all others, so the first len(topics)
	// days must cover every topic exactly once.
	req := validRequest()
	p, err := GenerateAt(req, genesis)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, s := range p.Sessions[:len(req.Topics)] {
		assert.False(t, seen[s.Topic], "topic %s repeated before full coverage", s.Topic)
		seen[s.Topic] = true
	}
	assert.Len(t, seen, len(req.Topics))
}

func TestGenerateAtIsDeterministic(t *testing.T) {
	req := validRequest()

	a, err := GenerateAt(req, genesis)
	require.NoError(t, err)
	b, err := GenerateAt(req, genesis)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateAtValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"zero days", func(r *Request) { r.TotalDays = 0 }, "total_days"},
		{"negative days", func(r *Request) { r.TotalDays = -3 }, "total_days"},
		{"zero hours", func(r *Request) { r.DailyHours = 0 }, "daily_hours"},
		{"no topics", func(r *Request) { r.Topics = nil }, "topics"},
		{"bad goal", func(r *Request) { r.Goal = "cramming" }, "goal"},
		{"bad difficulty", func(r *Request) { r.Difficulty = "impossible" }, "difficulty"},
		{"bad time preference", func(r *Request) { r.TimePreference = "dawn" }, "time_preference"},
		{"bad learning style", func(r *Request) { r.LearningStyle = "osmosis" }, "learning_style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := GenerateAt(req, genesis)
			var verr *plan.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestGenerateAtZeroWeightAllocation(t *testing.T) {
	req := validRequest()
	req.Knowledge = plan.KnowledgeMap{}
	for _, topic := range req.Topics {
		req.Knowledge[topic] = 100
	}
	req.WeakAreas = nil

	_, err := GenerateAt(req, genesis)
	var verr *plan.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestMilestones(t *testing.T) {
	got := Milestones(20)
	require.Len(t, got, 4)

	wantDays := []int{5, 10, 15, 20}
	wantNames := []string{"Foundation Complete", "Halfway Champion", "Advanced Mastery", "Goal Achieved"}
	for i, m := range got {
		assert.Equal(t, wantDays[i], m.Day)
		assert.Equal(t, wantNames[i], m.Name)
		assert.Equal(t, "Take a day to review and celebrate your progress!", m.Celebration)
	}
	assert.Equal(t, "Complete 25% of study plan", got[0].Description)
	assert.Equal(t, "Complete 100% of study plan", got[3].Description)
}

func TestMilestonesTruncateFractionalDays(t *testing.T) {
	got := Milestones(30)
	assert.Equal(t, []int{7, 15, 22, 30}, []int{got[0].Day, got[1].Day, got[2].Day, got[3].Day})
}

func TestWeeklyReviews(t *testing.T) {
	got := WeeklyReviews(30, genesis)
	require.Len(t, got, 4)
	assert.Equal(t, "Week 1 Review - 2026-03-08", got[0])
	assert.Equal(t, "Week 4 Review - 2026-03-29", got[3])

	assert.Empty(t, WeeklyReviews(6, genesis))
}

func TestRecommendations(t *testing.T) {
	recs := Recommendations(plan.DifficultyBeginner, plan.GoalExamPrep, 1.5, plan.StyleVisual)
	require.Len(t, recs, 6)
	assert.Contains(t, recs[0], "increasing study time")
	assert.Contains(t, recs[1], "foundational concepts")
	assert.Contains(t, recs[2], "practice tests")
	assert.Contains(t, recs[3], "visual learning style")

	// Only the three always-on lines remain without the conditional rules.
	recs = Recommendations(plan.DifficultyAdvanced, plan.GoalDeepMastery, 3, plan.StyleReading)
	require.Len(t, recs, 3)
	assert.Contains(t, recs[0], "reading learning style")
}
