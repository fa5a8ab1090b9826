package index

import (
	"context"
	"fmt"

	"github.com/mrz1836/pulse/internal/constants"
	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/storage"
)

// Manager wraps the document store with single load / single save access to
// the index documents. Each Mutate call is one logical batch: the index is
// loaded once, mutated in memory, and written back once, so a batch of N
// toggles performs exactly one read and one write.
type Manager struct {
	store *storage.Store
}

// NewManager creates a Manager over the given document store.
func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// TaskIndexPath returns the path of the task index document.
func (m *Manager) TaskIndexPath() string {
	return m.store.Path(constants.TasksDir, constants.IndexFileName)
}

// SessionIndexPath returns the path of the session index document.
func (m *Manager) SessionIndexPath() string {
	return m.store.Path(constants.SessionsDir, constants.IndexFileName)
}

// LoadTaskIndex loads the task index, materializing an empty index on first
// access.
func (m *Manager) LoadTaskIndex(ctx context.Context) (*domain.TaskIndex, error) {
	idx := domain.NewTaskIndex()
	if err := m.store.LoadOrInit(ctx, m.TaskIndexPath(), idx, func() any { return domain.NewTaskIndex() }); err != nil {
		return nil, fmt.Errorf("failed to load task index: %w", err)
	}
	ensureMaps(idx)
	return idx, nil
}

// LoadSessionIndex loads the session index, materializing an empty index on
// first access.
func (m *Manager) LoadSessionIndex(ctx context.Context) (*domain.SessionIndex, error) {
	idx := domain.NewSessionIndex()
	if err := m.store.LoadOrInit(ctx, m.SessionIndexPath(), idx, func() any { return domain.NewSessionIndex() }); err != nil {
		return nil, fmt.Errorf("failed to load session index: %w", err)
	}
	if idx.ByProject == nil {
		idx.ByProject = make(map[string][]string)
	}
	if idx.ByDay == nil {
		idx.ByDay = make(map[string][]string)
	}
	return idx, nil
}

// MutateTaskIndex applies fn to the task index under a single
// load-mutate-save. fn runs against an in-memory copy; partial states are
// never written.
func (m *Manager) MutateTaskIndex(ctx context.Context, fn func(*domain.TaskIndex)) error {
	idx, err := m.LoadTaskIndex(ctx)
	if err != nil {
		return err
	}

	fn(idx)

	if err := m.store.Save(ctx, m.TaskIndexPath(), idx); err != nil {
		return fmt.Errorf("failed to save task index: %w", err)
	}
	return nil
}

// MutateSessionIndex applies fn to the session index under a single
// load-mutate-save.
func (m *Manager) MutateSessionIndex(ctx context.Context, fn func(*domain.SessionIndex)) error {
	idx, err := m.LoadSessionIndex(ctx)
	if err != nil {
		return err
	}

	fn(idx)

	if err := m.store.Save(ctx, m.SessionIndexPath(), idx); err != nil {
		return fmt.Errorf("failed to save session index: %w", err)
	}
	return nil
}
