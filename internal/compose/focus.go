package compose

import (
	"strconv"
	"strings"

	"github.com/learnzy/learnzy/internal/plan"
)

// lateFatigueDay is the day number past which a High estimate is
// softened to Medium-High to account for accumulated study fatigue.
const lateFatigueDay = 20

// FocusEstimate predicts session focus from the time slot's start hour
// and the day number. Circadian peaks (9-11, 15-17) score High, the
// surrounding daytime hours Medium, everything else Low.
func FocusEstimate(timeSlot string, day int) plan.FocusLevel {
	hour := slotStartHour(timeSlot)

	var focus plan.FocusLevel
	switch {
	case (hour >= 9 && hour <= 11) || (hour >= 15 && hour <= 17):
		focus = plan.FocusHigh
	case (hour >= 6 && hour <= 9) || (hour >= 11 && hour <= 15) || (hour >= 17 && hour <= 20):
		focus = plan.FocusMedium
	default:
		focus = plan.FocusLow
	}

	if day > lateFatigueDay && focus == plan.FocusHigh {
		focus = plan.FocusMediumHigh
	}
	return focus
}

// slotStartHour parses the leading hour from a "HH:MM - HH:MM" slot.
func slotStartHour(timeSlot string) int {
	head, _, ok := strings.Cut(timeSlot, ":")
	if !ok {
		return 0
	}
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0
	}
	return hour
}
