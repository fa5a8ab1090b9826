// Package record provides CRUD over individual task and session records and
// the global store document.
//
// The repository owns the authoritative records; the index package owns the
// derived membership lists. Every mutation here updates both: the record
// document first, then the affected index under a single load-mutate-save.
package record

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/mrz1836/pulse/internal/clock"
	"github.com/mrz1836/pulse/internal/constants"
	"github.com/mrz1836/pulse/internal/domain"
	pulseerrors "github.com/mrz1836/pulse/internal/errors"
	"github.com/mrz1836/pulse/internal/index"
	"github.com/mrz1836/pulse/internal/storage"
)

// Repository persists task and session records as one JSON document per
// record, plus the global store document holding the project registry and
// the ongoing-session pointer.
type Repository struct {
	store *storage.Store
	idx   *index.Manager
	clock clock.Clock
}

// NewRepository creates a Repository over the given document store.
func NewRepository(store *storage.Store, clk clock.Clock) *Repository {
	return &Repository{
		store: store,
		idx:   index.NewManager(store),
		clock: clk,
	}
}

// Index returns the index manager backing this repository.
func (r *Repository) Index() *index.Manager {
	return r.idx
}

// taskPath returns the path of a task's record document.
func (r *Repository) taskPath(id string) string {
	return r.store.Path(constants.TasksDir, id+".json")
}

// sessionPath returns the path of a session's record document.
func (r *Repository) sessionPath(id string) string {
	return r.store.Path(constants.SessionsDir, id+".json")
}

// storePath returns the path of the global store document.
func (r *Repository) storePath() string {
	return r.store.Path(constants.StoreFileName)
}

// CreateTask generates a fresh task, persists it, and inserts it into the
// task index. The project may be empty, leaving the task in the inbox.
func (r *Repository) CreateTask(ctx context.Context, description, project string) (*domain.Task, error) {
	if description == "" {
		return nil, fmt.Errorf("failed to create task: description %w", pulseerrors.ErrEmptyValue)
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		Description: description,
		Done:        false,
		CreatedAt:   r.clock.Now(),
		Project:     project,
	}

	if err := r.store.Save(ctx, r.taskPath(task.ID), task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := r.idx.MutateTaskIndex(ctx, func(idx *domain.TaskIndex) {
		index.IndexTask(idx, task)
	}); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTask retrieves a task by id.
// Returns ErrTaskNotFound if no record exists.
func (r *Repository) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if id == "" {
		return nil, fmt.Errorf("failed to get task: id %w", pulseerrors.ErrEmptyValue)
	}

	var task domain.Task
	if err := r.store.Load(ctx, r.taskPath(id), &task); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get task '%s': %w", id, pulseerrors.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to get task '%s': %w", id, err)
	}
	return &task, nil
}

// ToggleTask flips a single task's completion state.
func (r *Repository) ToggleTask(ctx context.Context, task *domain.Task) error {
	return r.ToggleTasks(ctx, []*domain.Task{task})
}

// ToggleTasks flips completion for a batch of tasks: Done is inverted,
// CompletedAt is stamped on the transition to done and cleared on the
// transition back.
//
// Each record is persisted individually, then the index is updated under a
// single load-mutate-save so readers never see a task counted in two
// conflicting membership lists.
func (r *Repository) ToggleTasks(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	now := r.clock.Now()
	for _, task := range tasks {
		task.Done = !task.Done
		if task.Done {
			completed := now
			task.CompletedAt = &completed
		} else {
			task.CompletedAt = nil
		}

		if err := r.store.Save(ctx, r.taskPath(task.ID), task); err != nil {
			return fmt.Errorf("failed to toggle task '%s': %w", task.ID, err)
		}
	}

	return r.idx.MutateTaskIndex(ctx, func(idx *domain.TaskIndex) {
		for _, task := range tasks {
			index.ReindexTask(idx, task)
		}
	})
}

// GetSession retrieves a session by id.
// Returns ErrSessionNotFound if no record exists.
func (r *Repository) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("failed to get session: id %w", pulseerrors.ErrEmptyValue)
	}

	var session domain.Session
	if err := r.store.Load(ctx, r.sessionPath(id), &session); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get session '%s': %w", id, pulseerrors.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("failed to get session '%s': %w", id, err)
	}
	return &session, nil
}

// CreateSession starts a new session on the given project and registers it
// as the process-wide ongoing session.
//
// Callers are expected to check OngoingSession first; the ongoing pointer is
// still re-checked here so the singleton invariant survives callers that
// skip the guard. No state is mutated on a rejected attempt.
func (r *Repository) CreateSession(ctx context.Context, project, focus string) (*domain.Session, error) {
	if project == "" {
		return nil, fmt.Errorf("failed to create session: project %w", pulseerrors.ErrEmptyValue)
	}

	doc, err := r.loadStoreDoc(ctx)
	if err != nil {
		return nil, err
	}
	if doc.OngoingSession != "" {
		return nil, fmt.Errorf("failed to create session: %w", pulseerrors.ErrSessionOngoing)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Project:   project,
		Focus:     focus,
		StartedAt: r.clock.Now(),
	}

	if err := r.store.Save(ctx, r.sessionPath(session.ID), session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := r.UpdateStoreDoc(ctx, func(doc *domain.StoreDoc) {
		doc.OngoingSession = session.ID
	}); err != nil {
		return nil, err
	}

	if err := r.idx.MutateSessionIndex(ctx, func(idx *domain.SessionIndex) {
		index.AppendSession(idx, session)
	}); err != nil {
		return nil, err
	}

	return session, nil
}

// EndSession stamps the session's end time, persists it, and clears the
// ongoing pointer. A session once ended is immutable; ending it again
// returns ErrSessionEnded.
func (r *Repository) EndSession(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if session == nil || session.ID == "" {
		return nil, fmt.Errorf("failed to end session: session %w", pulseerrors.ErrEmptyValue)
	}
	if !session.Ongoing() {
		return nil, fmt.Errorf("failed to end session '%s': %w", session.ID, pulseerrors.ErrSessionEnded)
	}

	ended := r.clock.Now()
	session.EndedAt = &ended

	if err := r.store.Save(ctx, r.sessionPath(session.ID), session); err != nil {
		return nil, fmt.Errorf("failed to end session '%s': %w", session.ID, err)
	}

	if err := r.UpdateStoreDoc(ctx, func(doc *domain.StoreDoc) {
		if doc.OngoingSession == session.ID {
			doc.OngoingSession = ""
		}
	}); err != nil {
		return nil, err
	}

	return session, nil
}

// OngoingSession returns the session the store document points at, or nil
// when none is ongoing.
func (r *Repository) OngoingSession(ctx context.Context) (*domain.Session, error) {
	doc, err := r.loadStoreDoc(ctx)
	if err != nil {
		return nil, err
	}
	if doc.OngoingSession == "" {
		return nil, nil
	}

	session, err := r.GetSession(ctx, doc.OngoingSession)
	if err != nil {
		// A dangling pointer means the record is gone; surface NotFound.
		return nil, err
	}
	return session, nil
}

// AddProject registers a new project in the store document.
// The reserved inbox bucket name is rejected, as are duplicates.
func (r *Repository) AddProject(ctx context.Context, project domain.Project) error {
	if project.Name == "" {
		return fmt.Errorf("failed to add project: name %w", pulseerrors.ErrEmptyValue)
	}
	if project.Name == constants.InboxBucket {
		return fmt.Errorf("failed to add project '%s': %w", project.Name, pulseerrors.ErrReservedName)
	}

	doc, err := r.loadStoreDoc(ctx)
	if err != nil {
		return err
	}
	if _, ok := doc.Projects[project.Name]; ok {
		return fmt.Errorf("failed to add project '%s': %w", project.Name, pulseerrors.ErrProjectExists)
	}

	return r.UpdateStoreDoc(ctx, func(doc *domain.StoreDoc) {
		doc.Projects[project.Name] = project
	})
}

// GetProject retrieves a registered project by name.
func (r *Repository) GetProject(ctx context.Context, name string) (*domain.Project, error) {
	doc, err := r.loadStoreDoc(ctx)
	if err != nil {
		return nil, err
	}

	project, ok := doc.Projects[name]
	if !ok {
		return nil, fmt.Errorf("failed to get project '%s': %w", name, pulseerrors.ErrProjectNotFound)
	}
	return &project, nil
}

// ListProjects returns all registered projects sorted by name.
func (r *Repository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	doc, err := r.loadStoreDoc(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects, nil
}

// HydrateTasks resolves a list of task ids to their full records,
// preserving order.
func (r *Repository) HydrateTasks(ctx context.Context, ids []string) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		task, err := r.GetTask(ctx, id)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// HydrateSessions resolves a list of session ids to their full records,
// preserving order.
func (r *Repository) HydrateSessions(ctx context.Context, ids []string) ([]*domain.Session, error) {
	sessions := make([]*domain.Session, 0, len(ids))
	for _, id := range ids {
		session, err := r.GetSession(ctx, id)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// UpdateStoreDoc applies fn to the store document under a single
// load-mutate-save. The document is never cached across operations.
func (r *Repository) UpdateStoreDoc(ctx context.Context, fn func(*domain.StoreDoc)) error {
	doc, err := r.loadStoreDoc(ctx)
	if err != nil {
		return err
	}

	fn(doc)

	if err := r.store.Save(ctx, r.storePath(), doc); err != nil {
		return fmt.Errorf("failed to save store document: %w", err)
	}
	return nil
}

// loadStoreDoc loads the store document, materializing an empty one on
// first access.
func (r *Repository) loadStoreDoc(ctx context.Context) (*domain.StoreDoc, error) {
	doc := domain.NewStoreDoc()
	if err := r.store.LoadOrInit(ctx, r.storePath(), doc, func() any { return domain.NewStoreDoc() }); err != nil {
		return nil, fmt.Errorf("failed to load store document: %w", err)
	}
	if doc.Projects == nil {
		doc.Projects = make(map[string]domain.Project)
	}
	return doc, nil
}

// IsNotFound reports whether err denotes a missing task, session or project.
func IsNotFound(err error) bool {
	return stderrors.Is(err, pulseerrors.ErrTaskNotFound) ||
		stderrors.Is(err, pulseerrors.ErrSessionNotFound) ||
		stderrors.Is(err, pulseerrors.ErrProjectNotFound)
}
