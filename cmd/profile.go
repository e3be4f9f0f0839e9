package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/age"
	"github.com/abhisek/sprout/internal/locale"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the child's age and language",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := openGarden(cmd)
		if err != nil {
			return err
		}
		defer g.Close()

		changed := false
		if cmd.Flags().Changed("age") {
			a, _ := cmd.Flags().GetInt("age")
			if !g.engine.SetAge(a) {
				return fmt.Errorf("age %d must be between %d and %d", a, age.MinAge, age.MaxAge)
			}
			changed = true
		}
		if cmd.Flags().Changed("lang") {
			lang, _ := cmd.Flags().GetString("lang")
			if err := g.engine.SetLanguage(lang); err != nil {
				return err
			}
			changed = true
		}
		if changed {
			if err := g.save(cmd.Context()); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if a := g.engine.Age(); a != 0 {
			fmt.Fprintf(out, "Age: %d (starts at level %d)\n", a, age.StartingDifficulty(a))
		} else {
			fmt.Fprintln(out, "Age: not set")
		}
		fmt.Fprintf(out, "Language: %s\n", locale.Code(g.engine.Language()))
		return nil
	},
}

func init() {
	profileCmd.Flags().Int("age", 0, "Child's age (3-7)")
	profileCmd.Flags().String("lang", "", "Display language: en, de or es")
}
