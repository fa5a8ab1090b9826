// Package domain provides shared domain types for the pulse productivity tracker.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case.
package domain

import (
	"time"

	"github.com/mrz1836/pulse/internal/constants"
)

// Task represents a single todo item, optionally assigned to a project.
// Tasks without a project live in the implicit "inbox" bucket.
//
// Example JSON representation:
//
//	{
//	    "id": "0d5af4a2-3a53-4e82-9d1b-8f14e78a5f10",
//	    "description": "Write release notes",
//	    "done": false,
//	    "created_at": "2026-08-29T10:00:00+02:00",
//	    "project": "pulse"
//	}
type Task struct {
	// ID is the unique identifier for the task (a UUID string).
	ID string `json:"id"`

	// Description is the human-readable text of the todo item.
	Description string `json:"description"`

	// Done reports whether the task has been completed. The flag is freely
	// reversible; CompletedAt tracks the transition timestamp.
	Done bool `json:"done"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// Project is the owning project name. Empty means the task belongs to
	// the inbox.
	Project string `json:"project,omitempty"`

	// CompletedAt is when the task was last marked done.
	// Nil whenever Done is false.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// InInbox reports whether the task has no assigned project.
func (t *Task) InInbox() bool {
	return t.Project == ""
}

// Group returns the group key the task belongs to when grouping by project:
// its project name, or the inbox bucket when unassigned.
func (t *Task) Group() string {
	if t.Project == "" {
		return constants.InboxBucket
	}
	return t.Project
}
