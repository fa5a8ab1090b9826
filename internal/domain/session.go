package domain

import "time"

// Session represents a focused block of work on a project.
//
// A session is created with EndedAt unset ("ongoing") and becomes immutable
// once ended. At most one session may be ongoing at a time; the pointer to it
// lives in the store document, not on the session itself.
//
// Example JSON representation:
//
//	{
//	    "id": "7be4c9fb-2f2b-41be-a4fd-6a19c1f6a205",
//	    "project": "pulse",
//	    "focus": "ship the review command",
//	    "started_at": "2026-08-29T09:00:00+02:00",
//	    "ended_at": "2026-08-29T10:30:25+02:00"
//	}
type Session struct {
	// ID is the unique identifier for the session (a UUID string).
	ID string `json:"id"`

	// Project is the name of the project the session is tied to.
	Project string `json:"project"`

	// Focus is a free-text description of what the session is meant to
	// accomplish.
	Focus string `json:"focus,omitempty"`

	// StartedAt is when the session started. Its calendar day is the
	// session's partition key; ending on a later day does not move it.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the session ended. Nil while the session is ongoing.
	EndedAt *time.Time `json:"ended_at,omitempty"`
}

// Ongoing reports whether the session has been started but not yet ended.
func (s *Session) Ongoing() bool {
	return s.EndedAt == nil
}

// Duration returns the session's length. An ongoing session contributes its
// duration so far relative to now, so successive calls may return different
// results while the session runs.
func (s *Session) Duration(now time.Time) time.Duration {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	return end.Sub(s.StartedAt)
}
