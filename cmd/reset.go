package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long: `Forget seen problems (--history), difficulty progress (--progress),
or both when neither flag is given. The profile is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resetHistory, _ := cmd.Flags().GetBool("history")
		resetProgress, _ := cmd.Flags().GetBool("progress")
		if !resetHistory && !resetProgress {
			resetHistory, resetProgress = true, true
		}

		g, err := openGarden(cmd)
		if err != nil {
			return err
		}
		defer g.Close()

		out := cmd.OutOrStdout()
		if resetHistory {
			g.engine.ResetHistory()
			fmt.Fprintln(out, "Forgot every seen problem.")
		}
		if resetProgress {
			g.engine.ResetProgress()
			fmt.Fprintln(out, "Reset every family to its starting level.")
		}
		return g.save(cmd.Context())
	},
}

func init() {
	resetCmd.Flags().Bool("history", false, "Forget seen problems")
	resetCmd.Flags().Bool("progress", false, "Reset difficulty progress")
}
