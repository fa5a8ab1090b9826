// Package review builds aggregated summaries of sessions and tasks over a
// calendar interval.
//
// The engine never scans records directly: it enumerates the interval's day
// keys, pulls the matching id lists from the secondary indexes, hydrates the
// ids through the repository, and groups the results by project. Results are
// always normalized to grouped maps; flattened views are derived from them.
package review

import (
	"context"
	"sort"
	"time"

	"github.com/mrz1836/pulse/internal/clock"
	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/record"
	"github.com/mrz1836/pulse/internal/timeutil"
)

// Report holds one interval's activity grouped by project name. Tasks with
// no project group under the inbox bucket. Ordering within each group
// follows the index's id ordering.
type Report struct {
	// Interval is the inclusive date range the report covers.
	Interval timeutil.Interval `json:"interval"`

	// Sessions groups the sessions started in range by project.
	Sessions map[string][]*domain.Session `json:"sessions"`

	// CreatedTasks groups the tasks created in range by project.
	CreatedTasks map[string][]*domain.Task `json:"created_tasks"`

	// CompletedTasks groups the tasks completed in range by project.
	CompletedTasks map[string][]*domain.Task `json:"completed_tasks"`
}

// Engine computes reports from the indexes and the record repository.
type Engine struct {
	repo  *record.Repository
	clock clock.Clock
}

// NewEngine creates an Engine over the given repository.
func NewEngine(repo *record.Repository, clk clock.Clock) *Engine {
	return &Engine{repo: repo, clock: clk}
}

// Build computes the report for the interval. A non-empty project narrows
// every group map to that single key, with an empty group (not an error)
// when the project had no activity in range.
func (e *Engine) Build(ctx context.Context, interval timeutil.Interval, project string) (*Report, error) {
	sessionIdx, err := e.repo.Index().LoadSessionIndex(ctx)
	if err != nil {
		return nil, err
	}
	taskIdx, err := e.repo.Index().LoadTaskIndex(ctx)
	if err != nil {
		return nil, err
	}

	// A record belongs to exactly one day bucket, so concatenating across
	// days never duplicates ids.
	var sessionIDs, createdIDs, completedIDs []string
	for _, day := range timeutil.DayKeys(interval) {
		sessionIDs = append(sessionIDs, sessionIdx.ByDay[day]...)
		createdIDs = append(createdIDs, taskIdx.ByCreatedDay[day]...)
		completedIDs = append(completedIDs, taskIdx.ByCompletedDay[day]...)
	}

	sessions, err := e.repo.HydrateSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}
	created, err := e.repo.HydrateTasks(ctx, createdIDs)
	if err != nil {
		return nil, err
	}
	completed, err := e.repo.HydrateTasks(ctx, completedIDs)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Interval:       interval,
		Sessions:       groupSessions(sessionsInInterval(sessions, interval)),
		CreatedTasks:   groupTasks(createdInInterval(created, interval)),
		CompletedTasks: groupTasks(completedInInterval(completed, interval)),
	}

	if project != "" {
		report.Sessions = narrowSessions(report.Sessions, project)
		report.CreatedTasks = narrowTasks(report.CreatedTasks, project)
		report.CompletedTasks = narrowTasks(report.CompletedTasks, project)
	}

	return report, nil
}

// DayReport builds the report for the calendar day containing t.
func (e *Engine) DayReport(ctx context.Context, t time.Time, project string) (*Report, error) {
	return e.Build(ctx, timeutil.DayInterval(t), project)
}

// WeekReport builds the report for the calendar week containing t.
func (e *Engine) WeekReport(ctx context.Context, t time.Time, project string) (*Report, error) {
	return e.Build(ctx, timeutil.WeekInterval(t), project)
}

// MonthReport builds the report for the calendar month containing t.
func (e *Engine) MonthReport(ctx context.Context, t time.Time, project string) (*Report, error) {
	return e.Build(ctx, timeutil.MonthInterval(t), project)
}

// SumDuration totals the durations of the given sessions. Ongoing sessions
// contribute their duration so far relative to now, so two successive calls
// for the same ongoing session can return different results. That is live
// tracking, not a bug.
func SumDuration(sessions []*domain.Session, now time.Time) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Duration(now)
	}
	return total
}

// Groups returns the sorted union of project keys present in the report.
func (r *Report) Groups() []string {
	seen := make(map[string]struct{})
	for key := range r.Sessions {
		seen[key] = struct{}{}
	}
	for key := range r.CreatedTasks {
		seen[key] = struct{}{}
	}
	for key := range r.CompletedTasks {
		seen[key] = struct{}{}
	}

	groups := make([]string, 0, len(seen))
	for key := range seen {
		groups = append(groups, key)
	}
	sort.Strings(groups)
	return groups
}

// FlattenSessions returns every session in the report, ordered by group key
// and index order within each group.
func (r *Report) FlattenSessions() []*domain.Session {
	var out []*domain.Session
	for _, key := range r.Groups() {
		out = append(out, r.Sessions[key]...)
	}
	return out
}

// TotalDuration totals every session in the report.
func (r *Report) TotalDuration(now time.Time) time.Duration {
	return SumDuration(r.FlattenSessions(), now)
}

// Empty reports whether the report contains no activity at all.
func (r *Report) Empty() bool {
	return len(r.FlattenSessions()) == 0 && countTasks(r.CreatedTasks) == 0 && countTasks(r.CompletedTasks) == 0
}

func countTasks(groups map[string][]*domain.Task) int {
	n := 0
	for _, tasks := range groups {
		n += len(tasks)
	}
	return n
}

// The bucket routes, the document decides: a record rewritten on disk after
// indexing may no longer carry a timestamp inside the interval its bucket
// suggests, so hydrated records are checked against the interval itself.

func sessionsInInterval(sessions []*domain.Session, iv timeutil.Interval) []*domain.Session {
	kept := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if iv.Contains(s.StartedAt) {
			kept = append(kept, s)
		}
	}
	return kept
}

func createdInInterval(tasks []*domain.Task, iv timeutil.Interval) []*domain.Task {
	kept := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if iv.Contains(t.CreatedAt) {
			kept = append(kept, t)
		}
	}
	return kept
}

func completedInInterval(tasks []*domain.Task, iv timeutil.Interval) []*domain.Task {
	kept := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.CompletedAt != nil && iv.Contains(*t.CompletedAt) {
			kept = append(kept, t)
		}
	}
	return kept
}

func groupSessions(sessions []*domain.Session) map[string][]*domain.Session {
	groups := make(map[string][]*domain.Session)
	for _, s := range sessions {
		groups[s.Project] = append(groups[s.Project], s)
	}
	return groups
}

func groupTasks(tasks []*domain.Task) map[string][]*domain.Task {
	groups := make(map[string][]*domain.Task)
	for _, t := range tasks {
		groups[t.Group()] = append(groups[t.Group()], t)
	}
	return groups
}

func narrowSessions(groups map[string][]*domain.Session, project string) map[string][]*domain.Session {
	narrowed := map[string][]*domain.Session{project: {}}
	if list, ok := groups[project]; ok {
		narrowed[project] = list
	}
	return narrowed
}

func narrowTasks(groups map[string][]*domain.Task, project string) map[string][]*domain.Task {
	narrowed := map[string][]*domain.Task{project: {}}
	if list, ok := groups[project]; ok {
		narrowed[project] = list
	}
	return narrowed
}
