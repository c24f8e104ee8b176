package cmd

import (
	"fmt"

	"github.com/learnzy/learnzy/internal/config"
	"github.com/learnzy/learnzy/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "learnzy",
	Short: "Personalized study schedule generator",
	Long:  "Learnzy generates day-by-day study schedules with spaced repetition, difficulty progression and pomodoro breaks, and tracks session completion.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("state", "", "Path to the state file or database (overrides LEARNZY_STATE)")
	rootCmd.PersistentFlags().String("store", "", "Plan store backend: json or sqlite (overrides LEARNZY_STORE)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore builds the plan store selected by flags and environment.
// The returned func releases backend resources.
func openStore(cmd *cobra.Command) (store.PlanStore, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if b, _ := cmd.Flags().GetString("store"); b != "" {
		cfg.Backend = config.Backend(b)
	}
	if p, _ := cmd.Flags().GetString("state"); p != "" {
		cfg.StatePath = p
	}

	switch cfg.Backend {
	case config.BackendJSON:
		path := cfg.StatePath
		if path == "" {
			path, err = store.DefaultStatePath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve state path: %w", err)
			}
		}
		return store.NewFileStore(path), func() error { return nil }, nil

	case config.BackendSQLite:
		path := cfg.StatePath
		if path == "" {
			path, err = store.DefaultSQLitePath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve database path: %w", err)
			}
		}
		st, err := store.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		return st, st.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q (want json or sqlite)", cfg.Backend)
	}
}
