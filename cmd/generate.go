package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/learnzy/learnzy/internal/generator"
	"github.com/learnzy/learnzy/internal/plan"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and save a study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		p, err := generator.Generate(*req)
		if err != nil {
			return err
		}

		// A plan that fails to save is still shown so it isn't lost.
		st, closeStore, err := openStore(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: plan not saved:", err)
		} else {
			defer closeStore()
			if err := st.Upsert(cmd.Context(), p); err != nil {
				fmt.Fprintln(os.Stderr, "warning: plan not saved:", err)
			}
		}

		fmt.Println(renderPlanSummary(p))
		if today := p.TodaySession(time.Now()); today != nil {
			fmt.Println(renderSessionCard(today))
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.String("subject", "", "Main subject to study")
	f.StringSlice("topics", nil, "Topics to cover (comma-separated)")
	f.String("goal", string(plan.GoalSkillBuilding), "Study goal: exam_prep, skill_building, quick_review, deep_mastery")
	f.String("difficulty", string(plan.DifficultyIntermediate), "Current level: beginner, intermediate, advanced, expert")
	f.Int("days", 30, "Number of days for the plan")
	f.Float64("hours", 2, "Study hours per day")
	f.String("exam-date", "", "Exam date (YYYY-MM-DD, optional)")
	f.String("time", string(plan.TimeFlexible), "Preferred time of day: morning, afternoon, evening, night, flexible")
	f.String("style", string(plan.StyleVisual), "Learning style: visual, auditory, kinesthetic, reading")
	f.StringSlice("knowledge", nil, "Prior mastery per topic, topic=level with level in 0-100")
	f.StringSlice("weak", nil, "Topics needing extra focus (comma-separated)")
	f.Bool("no-breaks", false, "Disable pomodoro break scheduling")

	generateCmd.MarkFlagRequired("subject")
	generateCmd.MarkFlagRequired("topics")
}

func requestFromFlags(cmd *cobra.Command) (*generator.Request, error) {
	f := cmd.Flags()

	subject, _ := f.GetString("subject")
	topics, _ := f.GetStringSlice("topics")
	days, _ := f.GetInt("days")
	hours, _ := f.GetFloat64("hours")
	examDate, _ := f.GetString("exam-date")
	weak, _ := f.GetStringSlice("weak")
	noBreaks, _ := f.GetBool("no-breaks")

	goalStr, _ := f.GetString("goal")
	goal, err := plan.ParseGoal(goalStr)
	if err != nil {
		return nil, err
	}

	diffStr, _ := f.GetString("difficulty")
	difficulty, err := plan.ParseDifficulty(diffStr)
	if err != nil {
		return nil, err
	}

	timeStr, _ := f.GetString("time")
	timePref, err := plan.ParseTimePreference(timeStr)
	if err != nil {
		return nil, err
	}

	styleStr, _ := f.GetString("style")
	style, err := plan.ParseLearningStyle(styleStr)
	if err != nil {
		return nil, err
	}

	knowledgeFlags, _ := f.GetStringSlice("knowledge")
	knowledge, err := parseKnowledge(knowledgeFlags)
	if err != nil {
		return nil, err
	}

	return &generator.Request{
		Subject:        subject,
		Topics:         topics,
		Goal:           goal,
		Difficulty:     difficulty,
		TotalDays:      days,
		DailyHours:     hours,
		ExamDate:       examDate,
		TimePreference: timePref,
		LearningStyle:  style,
		Knowledge:      knowledge,
		WeakAreas:      weak,
		BreaksEnabled:  !noBreaks,
	}, nil
}

// parseKnowledge turns repeated topic=level flags into a KnowledgeMap.
func parseKnowledge(entries []string) (plan.KnowledgeMap, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	km := make(plan.KnowledgeMap, len(entries))
	for _, entry := range entries {
		topic, levelStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --knowledge entry %q (want topic=level)", entry)
		}
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --knowledge level in %q: %w", entry, err)
		}
		km[strings.TrimSpace(topic)] = level
	}
	return km, nil
}
