package compose

import "github.com/learnzy/learnzy/internal/plan"

// SessionDifficulty returns the tier for a session, progressing from
// one level below the base difficulty early in the plan up to one level
// above it later. day is 1-based.
func SessionDifficulty(base plan.Difficulty, day, totalDays int) plan.Difficulty {
	ladder := plan.DifficultyLadder()
	idx := base.Index()
	if idx < 0 {
		idx = plan.DifficultyIntermediate.Index()
	}

	ratio := float64(day) / float64(totalDays)
	switch {
	case ratio < 0.3:
		return ladder[maxInt(0, idx-1)]
	case ratio < 0.6:
		return ladder[idx]
	case ratio < 0.85:
		return ladder[minInt(len(ladder)-1, idx+1)]
	default:
		// TODO: decide whether the final stretch should climb a second
		// level; today it stays at base+1 like the 0.6-0.85 band.
		return ladder[minInt(len(ladder)-1, idx+1)]
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
