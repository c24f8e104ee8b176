package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <plan-id>",
	Short: "Show a saved study plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		p, err := st.LoadByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(renderPlanSummary(p))
		for _, row := range p.SessionSummaries() {
			mark := " "
			if s := p.SessionOn(row.Date); s != nil && s.Completed {
				mark = "✔"
			}
			fmt.Printf("%s %s  %-24s %s  %.2fh  %-12s %s\n",
				mark, row.Date, row.Topic, row.TimeSlot, row.DurationHours,
				row.Difficulty, row.FocusLevel)
		}
		return nil
	},
}
