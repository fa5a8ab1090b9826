package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pulseerrors "github.com/mrz1836/pulse/internal/errors"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// TestStore_SaveLoad verifies a basic document round trip.
func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := store.Path("docs", "sample.json")

	require.NoError(t, store.Save(ctx, path, testDoc{Name: "pulse", Count: 3}))

	var loaded testDoc
	require.NoError(t, store.Load(ctx, path, &loaded))
	assert.Equal(t, testDoc{Name: "pulse", Count: 3}, loaded)
}

// TestStore_SavePrettyPrints verifies the on-disk format is two-space
// indented JSON.
func TestStore_SavePrettyPrints(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := store.Path("sample.json")

	require.NoError(t, store.Save(ctx, path, testDoc{Name: "pulse"}))

	data, err := os.ReadFile(path) //nolint:gosec // test-controlled path
	require.NoError(t, err)

	expected, err := json.MarshalIndent(testDoc{Name: "pulse"}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(data))
}

// TestStore_LoadMissing verifies absent documents surface ErrNotFound.
func TestStore_LoadMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	var doc testDoc
	err := store.Load(ctx, store.Path("missing.json"), &doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, pulseerrors.ErrNotFound)
	assert.True(t, IsNotFound(err))
}

// TestStore_LoadEmptyFile verifies a completely empty file is treated as
// absent, not as corruption.
func TestStore_LoadEmptyFile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := store.Path("empty.json")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o600))

	var doc testDoc
	err := store.Load(ctx, path, &doc)
	assert.ErrorIs(t, err, pulseerrors.ErrNotFound)
}

// TestStore_LoadMalformed verifies a non-empty unparsable file propagates as
// a malformed document, never silently recovered.
func TestStore_LoadMalformed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := store.Path("broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	var doc testDoc
	err := store.Load(ctx, path, &doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, pulseerrors.ErrMalformedDocument)
	assert.False(t, IsNotFound(err))
}

// TestStore_LoadOrInit verifies the default value is materialized exactly
// once and reused afterwards.
func TestStore_LoadOrInit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := store.Path("init.json")

	var doc testDoc
	require.NoError(t, store.LoadOrInit(ctx, path, &doc, func() any {
		return testDoc{Name: "default", Count: 1}
	}))
	assert.Equal(t, "default", doc.Name)

	// The document now exists on disk.
	_, err := os.Stat(path)
	require.NoError(t, err)

	// A second access loads the stored value, not a fresh default.
	require.NoError(t, store.Save(ctx, path, testDoc{Name: "changed", Count: 2}))
	var again testDoc
	require.NoError(t, store.LoadOrInit(ctx, path, &again, func() any {
		return testDoc{Name: "default", Count: 1}
	}))
	assert.Equal(t, "changed", again.Name)
}

// TestStore_SaveCreatesParentDirs verifies intermediate directories are
// created on demand.
func TestStore_SaveCreatesParentDirs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := store.Path("a", "b", "c.json")

	require.NoError(t, store.Save(ctx, path, testDoc{}))

	_, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
}

// TestStore_SaveLeavesNoTempFile verifies the write-then-rename leaves no
// temp artifact behind.
func TestStore_SaveLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := store.Path("doc.json")

	require.NoError(t, store.Save(ctx, path, testDoc{Name: "one"}))
	require.NoError(t, store.Save(ctx, path, testDoc{Name: "two"}))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	var doc testDoc
	require.NoError(t, store.Load(ctx, path, &doc))
	assert.Equal(t, "two", doc.Name)
}

// TestStore_ContextCanceled verifies operations respect an already-canceled
// context.
func TestStore_ContextCanceled(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var doc testDoc
	assert.ErrorIs(t, store.Load(ctx, store.Path("x.json"), &doc), context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, store.Path("x.json"), doc), context.Canceled)
}

// TestDefaultHome_EnvOverride verifies PULSE_HOME wins over the home
// directory default.
func TestDefaultHome_EnvOverride(t *testing.T) {
	t.Setenv("PULSE_HOME", "/tmp/custom-pulse")

	home, err := DefaultHome()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-pulse", home)
}
