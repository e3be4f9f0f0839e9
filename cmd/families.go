package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/engine"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List problem families and the size of each level",
	Long: `List every problem family with the number of distinct problems at
each difficulty level. Counting and comparison sizes depend on the
configured age. With --examples, one sample problem per family follows
the table; samples are not remembered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := newEngine(nil)
		out := cmd.OutOrStdout()
		if err := printFamilies(out, e); err != nil {
			return err
		}
		if examples, _ := cmd.Flags().GetBool("examples"); examples {
			return printExamples(out, e)
		}
		return nil
	},
}

func init() {
	familiesCmd.Flags().Bool("examples", false, "Print a sample problem for each family at level 1")
}

func printFamilies(w io.Writer, e *engine.Engine) error {
	fmt.Fprintf(w, "%-20s %-18s", "FAMILY", "NAME")
	for d := difficulty.MinLevel; d <= difficulty.MaxLevel; d++ {
		fmt.Fprintf(w, " %5s", fmt.Sprintf("L%d", d))
	}
	fmt.Fprintln(w)

	for _, t := range e.Types() {
		fmt.Fprintf(w, "%-20s %-18s", t, t.DisplayName())
		for d := difficulty.MinLevel; d <= difficulty.MaxLevel; d++ {
			sigs, err := e.AllSignatures(t, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, " %5d", len(sigs))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// printExamples shows one level 1 problem per family without recording
// it in the engine's history.
func printExamples(w io.Writer, e *engine.Engine) error {
	for _, t := range e.Types() {
		p, err := e.Preview(t, difficulty.MinLevel)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n── %s ──\n", t.DisplayName())
		if p == nil {
			fmt.Fprintln(w, "(nothing to generate)")
			continue
		}
		printProblem(w, e, p)
	}
	return nil
}
