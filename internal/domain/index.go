package domain

// TaskIndex is the derived secondary index over task records, persisted at
// tasks/index.json. Lists hold task ids; ordering within each list is
// newest-first. Membership must always reflect the task's current field
// values:
//
//   - All: every task, exactly once
//   - Inbox: tasks with no project
//   - Incomplete: tasks with Done == false
//   - ByProject: tasks keyed by project name
//   - ByCreatedDay / ByCompletedDay: tasks keyed by local calendar day
//
// Absent map keys are equivalent to empty lists; buckets are created on
// first write.
type TaskIndex struct {
	// All lists every task id, newest first.
	All []string `json:"all"`

	// Inbox lists ids of tasks without a project, newest first.
	Inbox []string `json:"inbox"`

	// Incomplete lists ids of tasks not yet done, newest first.
	Incomplete []string `json:"incomplete"`

	// ByProject maps project name to task ids, newest first.
	ByProject map[string][]string `json:"by_project"`

	// ByCreatedDay maps creation day key to task ids, newest first.
	ByCreatedDay map[string][]string `json:"by_created_day"`

	// ByCompletedDay maps completion day key to ids of done tasks.
	ByCompletedDay map[string][]string `json:"by_completed_day"`
}

// NewTaskIndex returns an empty task index with initialized buckets.
func NewTaskIndex() *TaskIndex {
	return &TaskIndex{
		All:            []string{},
		Inbox:          []string{},
		Incomplete:     []string{},
		ByProject:      make(map[string][]string),
		ByCreatedDay:   make(map[string][]string),
		ByCompletedDay: make(map[string][]string),
	}
}

// SessionIndex is the derived secondary index over session records, persisted
// at sessions/index.json. Sessions are appended once at creation and never
// removed or rebucketed; ending a session mutates the record, not the index.
type SessionIndex struct {
	// Ordered lists every session id in creation order.
	Ordered []string `json:"ordered"`

	// ByProject maps project name to session ids in creation order.
	ByProject map[string][]string `json:"by_project"`

	// ByDay maps the session's start-day key to session ids.
	ByDay map[string][]string `json:"by_day"`
}

// NewSessionIndex returns an empty session index with initialized buckets.
func NewSessionIndex() *SessionIndex {
	return &SessionIndex{
		Ordered:   []string{},
		ByProject: make(map[string][]string),
		ByDay:     make(map[string][]string),
	}
}
