package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/engine"
	"github.com/abhisek/sprout/internal/history"
	"github.com/abhisek/sprout/internal/metrics"
	"github.com/abhisek/sprout/internal/store"
)

// newEngine builds an engine from the loaded config. The configured
// profile is applied up front so a saved profile restored later wins.
func newEngine(reg prometheus.Registerer) *engine.Engine {
	opts := engine.Options{
		Difficulty: cfg.Difficulty,
		Policy: history.Policy{
			Threshold: cfg.Engine.EvictionThreshold,
			Fraction:  cfg.Engine.EvictionFraction,
		},
		Logger:  logger.Named("engine"),
		Metrics: metrics.New(reg),
	}
	if cfg.Engine.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(cfg.Engine.Seed, cfg.Engine.Seed))
	}

	e := engine.New(opts)
	if cfg.Profile.Age != 0 {
		e.SetAge(cfg.Profile.Age)
	}
	if cfg.Profile.Language != "" {
		if err := e.SetLanguage(cfg.Profile.Language); err != nil {
			logger.Warn("ignoring configured language", zap.String("language", cfg.Profile.Language), zap.Error(err))
		}
	}
	return e
}

// garden is an engine backed by the on-disk store.
type garden struct {
	store  *store.Store
	engine *engine.Engine
}

// openGarden opens the store and restores the saved engine state.
func openGarden(cmd *cobra.Command) (*garden, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("opened store", zap.String("path", dbPath))

	e := newEngine(nil)
	if err := e.Restore(cmd.Context(), st); err != nil {
		st.Close()
		return nil, fmt.Errorf("restore progress: %w", err)
	}
	return &garden{store: st, engine: e}, nil
}

// save persists the engine state.
func (g *garden) save(ctx context.Context) error {
	if err := g.engine.Save(ctx, g.store); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (g *garden) Close() error {
	return g.store.Close()
}
