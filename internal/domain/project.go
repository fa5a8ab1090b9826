package domain

// Project represents a named workspace that sessions and tasks attach to.
// Identity is the name; all projects live in the store document's registry.
type Project struct {
	// Name is the unique project key. Must never equal the reserved inbox
	// bucket name.
	Name string `json:"name"`

	// WorkingDir is the directory the project's on-start command runs in.
	WorkingDir string `json:"working_dir,omitempty"`

	// OnStart is an optional shell command executed when a session starts
	// on this project. Failures are logged, never propagated into session
	// state.
	OnStart string `json:"on_start,omitempty"`

	// GitHub is an optional owner/repo reference for the project.
	GitHub string `json:"github,omitempty"`
}

// StoreDoc is the global store document persisted at store.json.
// It holds the project registry and the single ongoing-session pointer.
//
// The pointer is never cached in memory across operations: every read and
// write goes through a load-mutate-save of the whole document.
type StoreDoc struct {
	// Projects maps project name to its record.
	Projects map[string]Project `json:"projects"`

	// OngoingSession is the id of the session that has been started but not
	// yet ended. Empty when no session is ongoing.
	OngoingSession string `json:"ongoing_session,omitempty"`
}

// NewStoreDoc returns an empty store document with an initialized registry.
func NewStoreDoc() *StoreDoc {
	return &StoreDoc{Projects: make(map[string]Project)}
}
