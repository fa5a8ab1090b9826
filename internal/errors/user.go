package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Sessions
	// ===================
	{
		err: ErrSessionOngoing,
		info: ErrorInfo{
			Message: "A session is already running.",
			Action:  "Run 'pulse stop' to end it before starting a new one.",
		},
	},
	{
		err: ErrNoOngoingSession,
		info: ErrorInfo{
			Message: "No session is currently running.",
			Action:  "Run 'pulse start' to begin one.",
		},
	},
	{
		err: ErrSessionEnded,
		info: ErrorInfo{
			Message: "This session has already ended and cannot be changed.",
		},
	},
	{
		err: ErrSessionNotFound,
		info: ErrorInfo{
			Message: "The referenced session does not exist.",
			Action:  "Run 'pulse review' to see recorded sessions.",
		},
	},

	// ===================
	// Tasks
	// ===================
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "The referenced task does not exist.",
			Action:  "Run 'pulse task list' to see known task ids.",
		},
	},
	{
		err: ErrNoTasksFound,
		info: ErrorInfo{
			Message: "No tasks matched the requested filter.",
			Action:  "Add one with 'pulse task add' or relax the filter.",
		},
	},

	// ===================
	// Projects
	// ===================
	{
		err: ErrProjectNotFound,
		info: ErrorInfo{
			Message: "The referenced project is not registered.",
			Action:  "Register it with 'pulse project add <name>'.",
		},
	},
	{
		err: ErrProjectExists,
		info: ErrorInfo{
			Message: "A project with that name is already registered.",
			Action:  "Pick a different name, or use the existing project.",
		},
	},
	{
		err: ErrReservedName,
		info: ErrorInfo{
			Message: "That name is reserved and cannot be used for a project.",
			Action:  "Choose another project name.",
		},
	},

	// ===================
	// Storage
	// ===================
	{
		err: ErrMalformedDocument,
		info: ErrorInfo{
			Message: "A state file on disk is corrupted and could not be parsed.",
			Action:  "Inspect the named file under your pulse home and repair or remove it.",
		},
	},
	{
		err: ErrNotFound,
		info: ErrorInfo{
			Message: "The requested state file does not exist.",
			Action:  "Run 'pulse init' if the pulse home was never set up.",
		},
	},

	// ===================
	// Input
	// ===================
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "The requested output format is not supported.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrInvalidPeriod,
		info: ErrorInfo{
			Message: "The requested review period is not supported.",
			Action:  "Use one of: day, week, month.",
		},
	},
	{
		err: ErrInvalidDate,
		info: ErrorInfo{
			Message: "The date could not be parsed.",
			Action:  "Use the YYYY-MM-DD format, e.g. --date 2026-08-29.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was empty.",
			Action:  "Check the command help for required arguments.",
		},
	},

	// ===================
	// Hooks & prompts
	// ===================
	{
		err: ErrHookFailed,
		info: ErrorInfo{
			Message: "The project's on-start command exited with an error. The session is unaffected.",
			Action:  "Check the hook command in 'pulse project list' and the log file for its output.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Canceled.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
