package cmd

import (
	"fmt"
	"strings"

	"github.com/learnzy/learnzy/internal/plan"
	"github.com/learnzy/learnzy/internal/ui/theme"
)

// renderPlanSummary formats a plan's headline facts into a card.
func renderPlanSummary(p *plan.Plan) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Study Plan — %s", p.Subject)))
	b.WriteString("\n")
	writeField(&b, "Plan ID", p.PlanID)
	writeField(&b, "Goal", string(p.Goal))
	writeField(&b, "Level", string(p.DifficultyLevel))
	writeField(&b, "Schedule", fmt.Sprintf("%d days × %.1fh", p.TotalDays, p.DailyHours))
	if p.ExamDate != nil {
		writeField(&b, "Exam date", *p.ExamDate)
	}
	writeField(&b, "Sessions", fmt.Sprintf("%d (%d completed)", len(p.Sessions), p.CompletedCount()))
	writeField(&b, "Milestones", fmt.Sprintf("%d", len(p.Milestones)))

	if len(p.AdaptiveRecommendations) > 0 {
		b.WriteString("\n" + theme.Label.Render("Recommendations") + "\n")
		for _, rec := range p.AdaptiveRecommendations {
			b.WriteString("  " + theme.Value.Render(rec) + "\n")
		}
	}
	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// renderSessionCard formats one session for terminal display.
func renderSessionCard(s *plan.Session) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Session %s — %s", s.Date, s.Topic)))
	b.WriteString("\n")
	writeField(&b, "Time", s.TimeSlot)
	writeField(&b, "Duration", fmt.Sprintf("%d min", s.DurationMinutes))
	writeField(&b, "Difficulty", string(s.Difficulty))
	writeField(&b, "Focus", string(s.EstimatedFocusLevel))
	writeField(&b, "Techniques", strings.Join(s.StudyTechniques, ", "))

	b.WriteString(theme.Label.Render("Goals") + "\n")
	for _, g := range s.Goals {
		b.WriteString("  • " + theme.Value.Render(g) + "\n")
	}

	if len(s.Breaks) > 0 {
		parts := make([]string, len(s.Breaks))
		for i, br := range s.Breaks {
			parts[i] = fmt.Sprintf("%dm after %dm", br.DurationMinutes, br.AfterMinutes)
		}
		writeField(&b, "Breaks", strings.Join(parts, ", "))
	}

	writeField(&b, "Prep", s.PreSessionPrep)
	writeField(&b, "Review", s.PostSessionReview)

	if s.Completed {
		b.WriteString(theme.Done.Render("✔ completed"))
		if s.Notes != "" {
			b.WriteString(theme.Label.Render(" — " + s.Notes))
		}
		b.WriteString("\n")
	}
	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(theme.Label.Render(fmt.Sprintf("%-12s", label)) + theme.Value.Render(value) + "\n")
}
