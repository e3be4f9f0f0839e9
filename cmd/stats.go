package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/engine"
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openGarden(cmd)
		if err != nil {
			return err
		}
		defer g.Close()

		out := cmd.OutOrStdout()
		printStats(out, g.engine)

		entries, err := g.store.Entries(cmd.Context())
		if err != nil {
			return err
		}
		printEntries(out, entries)
		return nil
	},
}

func printStats(w io.Writer, e *engine.Engine) {
	ageText := "not set"
	if a := e.Age(); a != 0 {
		ageText = fmt.Sprintf("%d", a)
	}
	fmt.Fprintf(w, "Age: %s   Language: %s\n\n", ageText, locale.Code(e.Language()))

	fmt.Fprintf(w, "%-18s %5s %9s %8s %8s %6s\n", "FAMILY", "LEVEL", "ANSWERED", "CORRECT", "STREAK", "SEEN")
	for _, s := range e.Stats() {
		streak := "-"
		switch {
		case s.Progress.ConsecutiveCorrect > 0:
			streak = fmt.Sprintf("+%d", s.Progress.ConsecutiveCorrect)
		case s.Progress.ConsecutiveIncorrect > 0:
			streak = fmt.Sprintf("-%d", s.Progress.ConsecutiveIncorrect)
		}
		fmt.Fprintf(w, "%-18s %5d %9d %8d %8s %6s\n",
			s.Type.DisplayName(),
			s.Progress.Difficulty,
			s.Progress.ProblemsAttempted,
			s.Progress.ProblemsCorrect,
			streak,
			fmt.Sprintf("%d/%d", s.Seen, s.Total),
		)
	}
	fmt.Fprintf(w, "\nProblems remembered: %d\n", len(e.SeenSignatures()))
}

func printEntries(w io.Writer, entries []store.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Nothing saved yet.")
		return
	}
	fmt.Fprintln(w, "\nSaved documents:")
	for _, en := range entries {
		fmt.Fprintf(w, "  %-18s rev %-4d %6d bytes  %s\n",
			en.Key, en.Revision, en.Size, en.UpdatedAt.Format(time.DateTime))
	}
}
