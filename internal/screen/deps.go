package screen

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/engine"
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/store"
)

// Deps is what every screen needs from the application.
type Deps struct {
	Engine *engine.Engine
	// KV receives the engine state after every answer and profile change.
	// Nil disables saving.
	KV     store.KV
	Logger *zap.Logger
}

// Lang returns the active language code for answer labels.
func (d Deps) Lang() string {
	return locale.Code(d.Engine.Language())
}

// Save persists the engine state. Failures are logged, never fatal: a
// child in the middle of a round should not see a storage error.
func (d Deps) Save(ctx context.Context) {
	if d.KV == nil {
		return
	}
	if err := d.Engine.Save(ctx, d.KV); err != nil {
		d.logger().Error("saving progress failed", zap.Error(err))
	}
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
