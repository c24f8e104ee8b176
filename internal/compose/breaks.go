package compose

import "github.com/learnzy/learnzy/internal/plan"

const (
	pomodoroMinutes   = 25
	shortBreakMinutes = 5
	longBreakMinutes  = 15
	longBreakEvery    = 4
)

// Breaks returns the pomodoro break schedule for a session of the given
// length. Work is split into 25-minute blocks; each completed block that
// stops short of the session end earns a break, a long one after every
// fourth block. AfterMinutes counts completed work minutes, so a block
// that exactly reaches the end produces no trailing break.
func Breaks(durationMinutes int) []plan.Break {
	var breaks []plan.Break
	completed := 0
	elapsed := 0

	for elapsed < durationMinutes {
		work := pomodoroMinutes
		if remaining := durationMinutes - elapsed; remaining < work {
			work = remaining
		}
		elapsed += work
		completed++

		if elapsed < durationMinutes {
			b := plan.Break{
				AfterMinutes:    elapsed,
				DurationMinutes: shortBreakMinutes,
				Type:            plan.BreakShort,
			}
			if completed%longBreakEvery == 0 {
				b.DurationMinutes = longBreakMinutes
				b.Type = plan.BreakLong
			}
			breaks = append(breaks, b)
		}
	}
	return breaks
}
