// Package compose builds single study sessions: time slot, breaks,
// difficulty progression, technique and resource selection, and the
// session's goals and prompts. Composition is deterministic over its
// inputs.
package compose

import (
	"fmt"
	"math"
	"strings"

	"github.com/learnzy/learnzy/internal/plan"
)

// flexibleStarts are the rotation of start times used for learners
// without a fixed time preference.
var flexibleStarts = []int{7, 14, 18}

// Input carries everything needed to compose one day's session.
type Input struct {
	Topic          string
	Date           string
	Day            int // 1-based day number
	TotalDays      int
	DailyHours     float64
	Difficulty     plan.Difficulty
	TimePreference plan.TimePreference
	LearningStyle  plan.LearningStyle
	Goal           plan.Goal
	BreaksEnabled  bool
}

// Session assembles one study session from the input.
func Session(in Input) plan.Session {
	timeSlot := TimeSlot(in.TimePreference, in.Day, in.DailyHours)
	duration := int(math.Round(in.DailyHours * 60))

	var breaks []plan.Break
	if in.BreaksEnabled {
		breaks = Breaks(duration)
	}

	difficulty := SessionDifficulty(in.Difficulty, in.Day, in.TotalDays)
	subtopics := Subtopics(in.Topic, in.Goal)

	return plan.Session{
		Date:                in.Date,
		TimeSlot:            timeSlot,
		DurationMinutes:     duration,
		Topic:               in.Topic,
		Subtopics:           subtopics,
		Difficulty:          difficulty,
		StudyTechniques:     Techniques(difficulty, in.LearningStyle),
		Breaks:              breaks,
		Resources:           Resources(in.LearningStyle),
		Goals:               SessionGoals(in.Topic, subtopics),
		PreSessionPrep:      PreSessionPrep(in.Day, in.Topic),
		PostSessionReview:   PostSessionReview(in.Day),
		EstimatedFocusLevel: FocusEstimate(timeSlot, in.Day),
	}
}

// TimeSlot returns the "HH:MM - HH:MM" slot for the day. Fixed
// preferences always start at the same hour; flexible learners rotate
// through morning, afternoon and evening starts.
func TimeSlot(pref plan.TimePreference, day int, dailyHours float64) string {
	var start int
	switch pref {
	case plan.TimeMorning:
		start = 6
	case plan.TimeAfternoon:
		start = 14
	case plan.TimeEvening:
		start = 18
	case plan.TimeNight:
		start = 21
	default:
		start = flexibleStarts[day%len(flexibleStarts)]
	}
	return fmt.Sprintf("%02d:00 - %02d:00", start, start+int(dailyHours))
}

// Techniques picks the first two techniques for the tier plus the lead
// technique for the learning style.
func Techniques(difficulty plan.Difficulty, style plan.LearningStyle) []string {
	base, ok := difficultyTechniques[difficulty]
	if !ok {
		base = difficultyTechniques[plan.DifficultyIntermediate]
	}

	selected := make([]string, 0, 3)
	selected = append(selected, base[:2]...)
	if st, ok := styleTechniques[style]; ok && len(st) > 0 {
		selected = append(selected, st[0])
	}
	return selected
}

// Subtopics renders the goal's subtopic template for a topic.
func Subtopics(topic string, goal plan.Goal) []string {
	suffixes, ok := subtopicSuffixes[goal]
	if !ok {
		suffixes = defaultSubtopicSuffixes
	}
	out := make([]string, len(suffixes))
	for i, suffix := range suffixes {
		out[i] = fmt.Sprintf("%s - %s", topic, suffix)
	}
	return out
}

// SessionGoals returns the session's measurable goals.
func SessionGoals(topic string, subtopics []string) []string {
	first := topic
	if len(subtopics) > 0 {
		first = subtopics[0]
	}
	return []string{
		fmt.Sprintf("Understand core concepts of %s", topic),
		fmt.Sprintf("Complete exercises on %s", first),
		"Achieve 80%+ on practice quiz",
	}
}

// Resources suggests learning resources for the style, defaulting to
// the visual list for anything unrecognized.
func Resources(style plan.LearningStyle) []string {
	if r, ok := styleResources[style]; ok {
		return append([]string(nil), r...)
	}
	return append([]string(nil), styleResources[plan.StyleVisual]...)
}

// PreSessionPrep returns the preparation prompt for the day.
func PreSessionPrep(day int, topic string) string {
	prep := preSessionPreps[day%len(preSessionPreps)]
	if strings.Contains(prep, "%s") {
		return fmt.Sprintf(prep, topic)
	}
	return prep
}

// PostSessionReview returns the review prompt for the day.
func PostSessionReview(day int) string {
	return postSessionReviews[day%len(postSessionReviews)]
}
