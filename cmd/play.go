package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/app"
)

var playCmd = &cobra.Command{
	Use:         "play",
	Short:       "Start a practice session",
	Annotations: map[string]string{annotationTUI: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the garden and launches the TUI. The app saves on exit.
func runPlay(cmd *cobra.Command) error {
	g, err := openGarden(cmd)
	if err != nil {
		return err
	}
	defer g.Close()

	return app.Run(cmd.Context(), app.Options{
		Engine: g.engine,
		KV:     g.store,
		Logger: logger.Named("tui"),
	})
}
