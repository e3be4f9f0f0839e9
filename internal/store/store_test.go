package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

// kvContract runs the behaviour every KV must share.
func kvContract(t *testing.T, kv KV) {
	ctx := context.Background()

	_, err := kv.Load(ctx, "profile")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, kv.Save(ctx, "profile", []byte(`{"age":5}`)))
	got, err := kv.Load(ctx, "profile")
	require.NoError(t, err)
	assert.JSONEq(t, `{"age":5}`, string(got))

	require.NoError(t, kv.Save(ctx, "profile", []byte(`{"age":6}`)))
	got, err = kv.Load(ctx, "profile")
	require.NoError(t, err)
	assert.JSONEq(t, `{"age":6}`, string(got))

	require.NoError(t, kv.Delete(ctx, "profile"))
	require.NoError(t, kv.Delete(ctx, "profile"))
	_, err = kv.Load(ctx, "profile")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_KV(t *testing.T) {
	kvContract(t, openTestStore(t))
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemoryKV())
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	value := []byte("abc")
	require.NoError(t, kv.Save(ctx, "k", value))
	value[0] = 'z'

	got, err := kv.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, []string{"k"}, kv.Keys())
}

func TestStore_EntriesAndRevisions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "seen_signatures", []byte(`{}`)))
	require.NoError(t, s.Save(ctx, "activity_progress", []byte(`{"counting":{}}`)))
	require.NoError(t, s.Save(ctx, "seen_signatures", []byte(`{"a":1}`)))

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "activity_progress", entries[0].Key)
	assert.Equal(t, int64(2), entries[0].Revision)
	assert.Equal(t, "seen_signatures", entries[1].Key)
	assert.Equal(t, int64(3), entries[1].Revision)
	assert.Equal(t, len(`{"a":1}`), entries[1].Size)
	assert.False(t, entries[1].UpdatedAt.IsZero())
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprout.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "profile", []byte(`{"language":"de"}`)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, "profile")
	require.NoError(t, err)
	assert.JSONEq(t, `{"language":"de"}`, string(got))
	require.NoError(t, s.Save(ctx, "profile", []byte(`{}`)))

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), entries[0].Revision, "revisions continue across reopen")
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("SPROUT_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "custom"))

	t.Setenv("SPROUT_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sprout", "sprout.db"), p)
}
