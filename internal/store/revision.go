package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// revisionCounter hands out a store-wide monotonic revision. Every write
// is stamped with one, so readers can tell which document was written
// last even when wall-clock timestamps collide.
//
// Raw SQL: the RETURNING clause makes the increment atomic at the
// database level and the mutex serializes within the process.
type revisionCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newRevisionCounter creates a counter and ensures its table exists.
func newRevisionCounter(db *sql.DB) (*revisionCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS revision_counter (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create revision table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO revision_counter (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed revision: %w", err)
	}

	return &revisionCounter{db: db}, nil
}

// Next returns the next revision and increments the counter.
func (rc *revisionCounter) Next(ctx context.Context) (int64, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	var seq int64
	err := rc.db.QueryRowContext(ctx,
		`UPDATE revision_counter SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next revision: %w", err)
	}
	return seq, nil
}
