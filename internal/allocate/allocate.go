// Package allocate converts per-topic knowledge levels and weak-area
// flags into a weighted time budget across a plan's topic list.
package allocate

import (
	"fmt"

	"github.com/learnzy/learnzy/internal/plan"
)

const (
	// weakAreaBoost multiplies the weight of topics the learner flagged
	// as needing extra attention.
	weakAreaBoost = 1.5

	// spacedBoost multiplies the weight of partially learned topics
	// (knowledge 30-70), which benefit most from repetition.
	spacedBoost = 1.3
)

// Hours distributes totalDays*dailyHours of study time across topics.
// Each topic's share is proportional to
//
//	(100 - knowledge) * weakAreaBoost? * spacedBoost?
//
// Topics missing from knowledge default to 0. Every input topic gets
// exactly one entry. All weights at zero (everything mastered, nothing
// weak) is a validation error: there is no meaningful way to spend the
// budget.
func Hours(topics []string, totalDays int, dailyHours float64, knowledge plan.KnowledgeMap, weakAreas []string) (plan.Allocation, error) {
	totalHours := float64(totalDays) * dailyHours

	weak := make(map[string]bool, len(weakAreas))
	for _, t := range weakAreas {
		weak[t] = true
	}

	weights := make(map[string]float64, len(topics))
	totalWeight := 0.0
	for _, topic := range topics {
		k := knowledge[topic]
		if k < 0 || k > 100 {
			return nil, &plan.ValidationError{
				Field:  "knowledge",
				Reason: fmt.Sprintf("level %d for topic %q is outside [0,100]", k, topic),
			}
		}

		w := float64(100 - k)
		if weak[topic] {
			w *= weakAreaBoost
		}
		if k >= 30 && k <= 70 {
			w *= spacedBoost
		}
		weights[topic] = w
		totalWeight += w
	}

	if totalWeight == 0 {
		return nil, &plan.ValidationError{
			Field:  "knowledge",
			Reason: "all topics fully mastered and none weak; nothing to allocate",
		}
	}

	alloc := make(plan.Allocation, len(topics))
	for topic, w := range weights {
		alloc[topic] = w / totalWeight * totalHours
	}
	return alloc, nil
}
