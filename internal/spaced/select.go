// Package spaced implements the spaced-repetition topic selector: given
// the plan's time allocation and each topic's study history, it scores
// topics for a given day and picks the one to study.
package spaced

import "github.com/learnzy/learnzy/internal/plan"

// NeverStudied is the sentinel LastStudiedDay for topics not yet
// scheduled. It is far enough in the past that the days-since term of a
// fresh topic outranks any real day difference.
const NeverStudied = -999

// hoursPerSession is the heuristic amount of allocation a topic
// consumes each time it is scheduled.
const hoursPerSession = 1.5

// ReviewIntervals are the canonical spaced-repetition intervals in days.
var ReviewIntervals = []int{1, 3, 7, 14, 30}

// TopicState tracks one topic's scheduling history across a plan's
// day loop.
type TopicState struct {
	LastStudiedDay int
	StudyCount     int
}

// History holds per-topic scheduling state. It is owned by the plan
// assembler for the duration of one generation; Select only reads it.
type History map[string]*TopicState

// NewHistory initializes history for the given topics with every topic
// unstudied.
func NewHistory(topics []string) History {
	h := make(History, len(topics))
	for _, t := range topics {
		h[t] = &TopicState{LastStudiedDay: NeverStudied}
	}
	return h
}

// Record marks topic as studied on the given day.
func (h History) Record(topic string, day int) {
	st := h[topic]
	if st == nil {
		st = &TopicState{}
		h[topic] = st
	}
	st.LastStudiedDay = day
	st.StudyCount++
}

// Select picks the topic to study on the given day (1-based). Scoring
// blends the topic's remaining allocation, a spaced-repetition score,
// and recency. Never-studied topics receive a spaced score of 1000 so
// they always beat topics scored on review intervals. Ties break to
// the earliest topic in the input list.
func Select(topics []string, alloc plan.Allocation, day int, history History) string {
	best := ""
	bestScore := 0.0

	for _, topic := range topics {
		st := history[topic]
		if st == nil {
			st = &TopicState{LastStudiedDay: NeverStudied}
		}

		daysSince := float64(day - st.LastStudiedDay)
		remaining := alloc[topic] - float64(st.StudyCount)*hoursPerSession

		var spacedScore float64
		if st.StudyCount == 0 {
			spacedScore = 1000
		} else {
			spacedScore = 100 - float64(nearestIntervalGap(day-st.LastStudiedDay))
		}

		score := remaining*0.4 + spacedScore*0.4 + daysSince*0.2
		if best == "" || score > bestScore {
			best = topic
			bestScore = score
		}
	}
	return best
}

// nearestIntervalGap returns the distance in days from daysSince to the
// closest canonical review interval.
func nearestIntervalGap(daysSince int) int {
	gap := -1
	for _, interval := range ReviewIntervals {
		d := daysSince - interval
		if d < 0 {
			d = -d
		}
		if gap < 0 || d < gap {
			gap = d
		}
	}
	return gap
}
