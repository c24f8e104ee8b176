package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <plan-id> <date>",
	Short: "Mark a session as completed",
	Long:  "Marks the session on the given date (YYYY-MM-DD) as completed, optionally attaching notes. Use --undo to clear the flag.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")
		undo, _ := cmd.Flags().GetBool("undo")

		st, closeStore, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := st.UpdateSessionCompletion(cmd.Context(), args[0], args[1], !undo, notes); err != nil {
			return err
		}

		if undo {
			fmt.Printf("Session %s in %s marked incomplete.\n", args[1], args[0])
		} else {
			fmt.Printf("Session %s in %s completed. Nice work!\n", args[1], args[0])
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().String("notes", "", "Notes to attach to the session")
	completeCmd.Flags().Bool("undo", false, "Clear the completed flag instead of setting it")
}
