package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved study plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		plans, err := st.LoadAll(cmd.Context())
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println("No study plans yet. Create one with `learnzy generate`.")
			return nil
		}

		for i := range plans {
			p := &plans[i]
			fmt.Printf("%s  %-24s %3d days  %.1fh/day  %d/%d done\n",
				p.PlanID, p.Subject, p.TotalDays, p.DailyHours,
				p.CompletedCount(), len(p.Sessions))
		}
		return nil
	},
}
