// Package errors provides centralized error handling for pulse.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrNotFound indicates that no document exists at the requested path.
	ErrNotFound = errors.New("document not found")

	// ErrMalformedDocument indicates that a non-empty document failed to
	// parse as JSON. A completely empty file is treated as absent instead.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrTaskNotFound indicates that the referenced task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSessionNotFound indicates that the referenced session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrProjectNotFound indicates that the referenced project is not registered.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectExists indicates an attempt to register a project name that
	// is already taken.
	ErrProjectExists = errors.New("project already exists")

	// ErrReservedName indicates an attempt to use a reserved bucket name
	// (such as "inbox") as a project name.
	ErrReservedName = errors.New("name is reserved")

	// ErrSessionOngoing indicates an attempt to start a session while
	// another session is still ongoing.
	ErrSessionOngoing = errors.New("a session is already ongoing")

	// ErrNoOngoingSession indicates that an operation requiring an ongoing
	// session found none.
	ErrNoOngoingSession = errors.New("no ongoing session")

	// ErrSessionEnded indicates an attempt to end a session that has
	// already been ended.
	ErrSessionEnded = errors.New("session already ended")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrNoTasksFound indicates that no tasks matched the requested filter.
	ErrNoTasksFound = errors.New("no tasks found")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidPeriod indicates an unknown review period was requested.
	ErrInvalidPeriod = errors.New("invalid review period")

	// ErrInvalidDate indicates a date argument could not be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOperationCanceled indicates the user canceled an interactive prompt.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrHookFailed indicates that a project's on-start command exited
	// non-zero. Callers log this and continue; session state is unaffected.
	ErrHookFailed = errors.New("hook command failed")
)
