package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ErrNotFound is returned by Load when no document exists for a key.
var ErrNotFound = errors.New("key not found")

// KV is the persistence collaborator the engine saves through. Values
// are opaque JSON documents.
type KV interface {
	// Load returns the document stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores value under key, replacing any previous document.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Entry describes one stored document without its value.
type Entry struct {
	Key       string
	Size      int
	Revision  int64
	UpdatedAt time.Time
}

const kvTable = "kv"

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// Load implements KV.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query, args := builder().
		Select("value").
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("load %q: %w", key, err)
		}
		return nil, fmt.Errorf("load %q: %w", key, ErrNotFound)
	}
	var value []byte
	if err := rows.Scan(&value); err != nil {
		return nil, fmt.Errorf("scan %q: %w", key, err)
	}
	return value, nil
}

// Save implements KV. Each write is stamped with a new revision.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	rev, err := s.rev.Next(ctx)
	if err != nil {
		return err
	}

	query, args := builder().
		Insert(kvTable).
		Columns("key", "value", "revision", "updated_at").
		Values(key, value, rev, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Delete implements KV.
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete(kvTable).
		Where(entsql.EQ("key", key)).
		Query()

	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Entries lists stored documents ordered by key.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	query, args := builder().
		Select("key", "value", "revision", "updated_at").
		From(entsql.Table(kvTable)).
		OrderBy("key").
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			value   []byte
			updated int64
		)
		if err := rows.Scan(&e.Key, &value, &e.Revision, &updated); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Size = len(value)
		e.UpdatedAt = time.UnixMilli(updated)
		out = append(out, e)
	}
	return out, rows.Err()
}

// MemoryKV is an in-process KV for tests and throwaway sessions.
type MemoryKV struct {
	data map[string][]byte
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Load implements KV.
func (m *MemoryKV) Load(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("load %q: %w", key, ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Save implements KV.
func (m *MemoryKV) Save(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements KV.
func (m *MemoryKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// Keys returns the stored keys in order.
func (m *MemoryKV) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	_ KV = (*Store)(nil)
	_ KV = (*MemoryKV)(nil)
)
