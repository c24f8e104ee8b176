package plan

import "fmt"

// Goal represents what the learner is studying toward.
type Goal string

const (
	GoalExamPrep      Goal = "exam_prep"
	GoalSkillBuilding Goal = "skill_building"
	GoalQuickReview   Goal = "quick_review"
	GoalDeepMastery   Goal = "deep_mastery"
)

// AllGoals returns all study goals.
func AllGoals() []Goal {
	return []Goal{GoalExamPrep, GoalSkillBuilding, GoalQuickReview, GoalDeepMastery}
}

// ParseGoal validates a goal string and returns the typed value.
func ParseGoal(s string) (Goal, error) {
	for _, g := range AllGoals() {
		if s == string(g) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown goal %q (want one of exam_prep, skill_building, quick_review, deep_mastery)", s)
}

// Difficulty represents a difficulty tier. Tiers form an ordered ladder
// used for progression across a plan.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// DifficultyLadder returns all difficulty tiers in ascending order.
func DifficultyLadder() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert}
}

// Index returns the tier's position on the ladder, or -1 if unknown.
func (d Difficulty) Index() int {
	for i, tier := range DifficultyLadder() {
		if d == tier {
			return i
		}
	}
	return -1
}

// ParseDifficulty validates a difficulty string and returns the typed value.
func ParseDifficulty(s string) (Difficulty, error) {
	if Difficulty(s).Index() < 0 {
		return "", fmt.Errorf("unknown difficulty %q (want one of beginner, intermediate, advanced, expert)", s)
	}
	return Difficulty(s), nil
}

// TimePreference represents the learner's preferred time of day.
type TimePreference string

const (
	TimeMorning   TimePreference = "morning"
	TimeAfternoon TimePreference = "afternoon"
	TimeEvening   TimePreference = "evening"
	TimeNight     TimePreference = "night"
	TimeFlexible  TimePreference = "flexible"
)

// AllTimePreferences returns all time preferences.
func AllTimePreferences() []TimePreference {
	return []TimePreference{TimeMorning, TimeAfternoon, TimeEvening, TimeNight, TimeFlexible}
}

// ParseTimePreference validates a time preference string.
func ParseTimePreference(s string) (TimePreference, error) {
	for _, p := range AllTimePreferences() {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown time preference %q (want one of morning, afternoon, evening, night, flexible)", s)
}

// LearningStyle represents how the learner absorbs material best.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleReading     LearningStyle = "reading"
)

// AllLearningStyles returns all learning styles.
func AllLearningStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading}
}

// ParseLearningStyle validates a learning style string.
func ParseLearningStyle(s string) (LearningStyle, error) {
	for _, ls := range AllLearningStyles() {
		if s == string(ls) {
			return ls, nil
		}
	}
	return "", fmt.Errorf("unknown learning style %q (want one of visual, auditory, kinesthetic, reading)", s)
}

// BreakType distinguishes short pomodoro breaks from the long break
// earned after four completed work blocks.
type BreakType string

const (
	BreakShort BreakType = "short"
	BreakLong  BreakType = "long"
)

// FocusLevel is the estimated focus for a session's time slot.
// Medium-High is a distinct label applied late in a plan, not a
// re-classification into Medium.
type FocusLevel string

const (
	FocusLow        FocusLevel = "Low"
	FocusMedium     FocusLevel = "Medium"
	FocusMediumHigh FocusLevel = "Medium-High"
	FocusHigh       FocusLevel = "High"
)
