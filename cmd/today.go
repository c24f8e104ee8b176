package cmd

import (
	"fmt"
	"time"

	"github.com/learnzy/learnzy/internal/plan"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today [plan-id]",
	Short: "Show today's study session",
	Long:  "Shows today's session from the given plan, or from the most recently created plan when no id is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		var p *plan.Plan
		if len(args) == 1 {
			p, err = st.LoadByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
		} else {
			plans, err := st.LoadAll(cmd.Context())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Println("No study plans yet. Create one with `learnzy generate`.")
				return nil
			}
			p = &plans[len(plans)-1]
		}

		today := p.TodaySession(time.Now())
		if today == nil {
			fmt.Printf("No session scheduled today in %s.\n", p.PlanID)
			return nil
		}
		fmt.Println(renderSessionCard(today))
		return nil
	},
}
