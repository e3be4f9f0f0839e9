package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/config"
	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/store"
)

// annotationTUI marks commands that own the terminal. They only log when
// a log file is configured.
const annotationTUI = "tui"

var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Adaptive practice problems for young children",
	Long: `Sprout is a terminal practice garden for children aged 3 to 7.
It serves counting, letters, shapes, patterns and more, never repeats a
problem until the family is nearly exhausted, and adapts difficulty to
how the child is doing.`,
	SilenceUsage:      true,
	Annotations:       map[string]string{annotationTUI: "true"},
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides SPROUT_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPROUT_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config and builds the logger for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		loaded.Logging.Level = lvl
	}
	cfg = loaded

	if cmd.Annotations[annotationTUI] == "true" && cfg.Logging.File == "" {
		logger = zap.NewNop()
		return nil
	}

	l, err := logging.New(logging.Options{
		Mode:   cfg.Logging.Mode,
		Level:  cfg.Logging.Level,
		Output: cfg.Logging.File,
	})
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (which includes SPROUT_DB), then the default XDG
// path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Storage.Path != "" {
		return cfg.Storage.Path, store.EnsureDir(cfg.Storage.Path)
	}
	return store.DefaultDBPath()
}
