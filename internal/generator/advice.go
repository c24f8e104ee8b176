package generator

import (
	"fmt"

	"github.com/learnzy/learnzy/internal/plan"
)

// motivationalTips is the fixed tip list attached to every plan. The
// dashboard picks which one to surface; the engine stores them all.
var motivationalTips = []string{
	"🌟 Every expert was once a beginner. Keep going!",
	"💪 Consistency beats intensity. Show up every day.",
	"🎯 Focus on progress, not perfection.",
	"🚀 Your future self will thank you for starting today.",
	"🔥 Difficult roads often lead to beautiful destinations.",
	"📚 Learning is a journey, not a destination.",
	"⭐ Small daily improvements lead to stunning results.",
	"🎓 You're investing in the best asset - yourself!",
}

// Recommendations builds the plan's adaptive recommendation list from a
// small rule set over the request parameters.
func Recommendations(difficulty plan.Difficulty, goal plan.Goal, dailyHours float64, style plan.LearningStyle) []string {
	var recs []string

	if dailyHours < 2 {
		recs = append(recs, "💡 Consider increasing study time to 2-3 hours for better retention")
	}
	if difficulty == plan.DifficultyBeginner {
		recs = append(recs, "🎯 Start with foundational concepts before moving to complex topics")
	}
	if goal == plan.GoalExamPrep {
		recs = append(recs, "📝 Focus on practice tests in the last 20% of your study plan")
	}

	recs = append(recs,
		fmt.Sprintf("🎨 Your %s learning style works best with interactive resources", style),
		"🔄 Use spaced repetition: review topics after 1, 3, 7, and 14 days",
		"🧠 Take breaks every 25-30 minutes to maintain peak focus",
	)
	return recs
}

// MotivationalTips returns the full tip list in order.
func MotivationalTips() []string {
	return append([]string(nil), motivationalTips...)
}
