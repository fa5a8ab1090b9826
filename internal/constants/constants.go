// Package constants provides centralized constant values used throughout pulse.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory and storage layout.
const (
	// PulseHome is the hidden directory name where pulse stores all its data.
	// This directory is created in the user's home directory.
	PulseHome = ".pulse"

	// HomeEnvVar overrides the pulse home directory when set.
	HomeEnvVar = "PULSE_HOME"

	// TasksDir is the directory name where task records are stored.
	TasksDir = "tasks"

	// SessionsDir is the directory name where session records are stored.
	SessionsDir = "sessions"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Buckets and calendar conventions.
const (
	// InboxBucket is the reserved group key for tasks that have no project.
	// A project must never be named "inbox"; the index does not guard
	// against the collision.
	InboxBucket = "inbox"

	// DayKeyLayout is the time layout for day partition keys. Two timestamps
	// on the same local calendar day produce an identical key.
	DayKeyLayout = "2006-01-02"

	// WeekStartDay is the first day of the week for weekly reviews.
	// Fixed convention, not user-configurable.
	WeekStartDay = time.Monday
)

// Log rotation settings for the global CLI log file.
const (
	// LogMaxSizeMB is the maximum size of the log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of rotated log files.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)
