package compose

import (
	"testing"

	"github.com/learnzy/learnzy/internal/plan"
)

func TestBreaksStandardSession(t *testing.T) {
	// 100 minutes = 4 pomodoros; breaks after each block except the
	// last, which lands exactly on the session end.
	got := Breaks(100)

	want := []plan.Break{
		{AfterMinutes: 25, DurationMinutes: 5, Type: plan.BreakShort},
		{AfterMinutes: 50, DurationMinutes: 5, Type: plan.BreakShort},
		{AfterMinutes: 75, DurationMinutes: 5, Type: plan.BreakShort},
	}
	if len(got) != len(want) {
		t.Fatalf("Breaks(100) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Breaks(100)[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBreaksSinglePomodoro(t *testing.T) {
	if got := Breaks(25); len(got) != 0 {
		t.Errorf("Breaks(25) = %v, want none", got)
	}
}

func TestBreaksLongBreakAfterFourthBlock(t *testing.T) {
	got := Breaks(125)

	if len(got) != 4 {
		t.Fatalf("Breaks(125) returned %d breaks, want 4: %v", len(got), got)
	}
	last := got[3]
	if last.AfterMinutes != 100 || last.DurationMinutes != 15 || last.Type != plan.BreakLong {
		t.Errorf("fourth break = %+v, want long 15-minute break after 100", last)
	}
	for _, b := range got[:3] {
		if b.Type != plan.BreakShort || b.DurationMinutes != 5 {
			t.Errorf("early break = %+v, want short 5-minute break", b)
		}
	}
}

func TestBreaksPartialFinalBlock(t *testing.T) {
	// 40 minutes: one full pomodoro, one break, then a 15-minute block
	// that reaches the end.
	got := Breaks(40)

	if len(got) != 1 {
		t.Fatalf("Breaks(40) = %v, want one break", got)
	}
	if got[0].AfterMinutes != 25 || got[0].Type != plan.BreakShort {
		t.Errorf("Breaks(40)[0] = %+v, want short break after 25", got[0])
	}
}

func TestBreaksShortSession(t *testing.T) {
	if got := Breaks(10); len(got) != 0 {
		t.Errorf("Breaks(10) = %v, want none", got)
	}
}
