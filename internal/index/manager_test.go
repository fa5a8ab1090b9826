package index

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/storage"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(store)
}

// TestManager_LoadTaskIndex_MaterializesDefault verifies the index document
// is created with empty buckets on first access.
func TestManager_LoadTaskIndex_MaterializesDefault(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	idx, err := m.LoadTaskIndex(ctx)
	require.NoError(t, err)
	assert.Empty(t, idx.All)
	assert.NotNil(t, idx.ByProject)
	assert.NotNil(t, idx.ByCreatedDay)
	assert.NotNil(t, idx.ByCompletedDay)

	_, err = os.Stat(m.TaskIndexPath())
	require.NoError(t, err)
}

// TestManager_MutateTaskIndex_PersistsBatch verifies a batch of mutations is
// visible after a single Mutate call.
func TestManager_MutateTaskIndex_PersistsBatch(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	err := m.MutateTaskIndex(ctx, func(idx *domain.TaskIndex) {
		IndexTask(idx, newTask("a", "pulse", created))
		IndexTask(idx, newTask("b", "", created))
	})
	require.NoError(t, err)

	idx, err := m.LoadTaskIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, idx.All)
	assert.Equal(t, []string{"b"}, idx.Inbox)
	assert.Equal(t, []string{"a"}, idx.ByProject["pulse"])
}

// TestManager_MutateSessionIndex_Appends verifies session index persistence
// across separate mutate calls.
func TestManager_MutateSessionIndex_Appends(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	for i, id := range []string{"s1", "s2"} {
		session := &domain.Session{
			ID:        id,
			Project:   "pulse",
			StartedAt: time.Date(2024, 1, 1+i, 9, 0, 0, 0, time.Local),
		}
		require.NoError(t, m.MutateSessionIndex(ctx, func(idx *domain.SessionIndex) {
			AppendSession(idx, session)
		}))
	}

	idx, err := m.LoadSessionIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2"}, idx.Ordered)
	assert.Equal(t, []string{"s1"}, idx.ByDay["2024-01-01"])
	assert.Equal(t, []string{"s2"}, idx.ByDay["2024-01-02"])
}
