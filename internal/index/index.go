// Package index maintains the denormalized secondary indexes over task and
// session records.
//
// The task index supports idempotent remove-then-add semantics: re-indexing
// an already-indexed task never duplicates entries. All membership functions
// operate on an in-memory copy of the index; the Manager wraps each logical
// batch in a single load and a single save so that readers never observe a
// partially updated index within one invocation.
//
// The session index is append-only. Sessions are indexed once at creation
// and never removed or rebucketed; ending a session mutates the record, not
// the index.
package index

import (
	"github.com/mrz1836/pulse/internal/domain"
	"github.com/mrz1836/pulse/internal/timeutil"
)

// IndexTask inserts the task into every list it currently belongs to,
// prepending so each list stays newest-first. Callers re-indexing an existing
// task must call DeindexTask first (or use ReindexTask).
func IndexTask(idx *domain.TaskIndex, task *domain.Task) {
	idx.All = prepend(idx.All, task.ID)

	if task.InInbox() {
		idx.Inbox = prepend(idx.Inbox, task.ID)
	} else {
		ensureMaps(idx)
		idx.ByProject[task.Project] = prepend(idx.ByProject[task.Project], task.ID)
	}

	if !task.Done {
		idx.Incomplete = prepend(idx.Incomplete, task.ID)
	}

	ensureMaps(idx)
	created := timeutil.DayKey(task.CreatedAt)
	idx.ByCreatedDay[created] = prepend(idx.ByCreatedDay[created], task.ID)

	if task.CompletedAt != nil {
		completed := timeutil.DayKey(*task.CompletedAt)
		idx.ByCompletedDay[completed] = prepend(idx.ByCompletedDay[completed], task.ID)
	}
}

// DeindexTask removes the task's id from every list by value, preserving the
// relative order of all remaining entries. Removing an unindexed task is a
// no-op.
func DeindexTask(idx *domain.TaskIndex, task *domain.Task) {
	idx.All = remove(idx.All, task.ID)
	idx.Inbox = remove(idx.Inbox, task.ID)
	idx.Incomplete = remove(idx.Incomplete, task.ID)
	removeFromBuckets(idx.ByProject, task.ID)
	removeFromBuckets(idx.ByCreatedDay, task.ID)
	removeFromBuckets(idx.ByCompletedDay, task.ID)
}

// ReindexTask re-derives the task's index membership from its current field
// values. Applying it twice with the same task state yields the same index
// as applying it once.
func ReindexTask(idx *domain.TaskIndex, task *domain.Task) {
	DeindexTask(idx, task)
	IndexTask(idx, task)
}

// AppendSession appends the session to the ordered list, its project's list,
// and its start-day bucket. Sessions are indexed exactly once, at creation.
func AppendSession(idx *domain.SessionIndex, session *domain.Session) {
	if idx.ByProject == nil {
		idx.ByProject = make(map[string][]string)
	}
	if idx.ByDay == nil {
		idx.ByDay = make(map[string][]string)
	}

	idx.Ordered = append(idx.Ordered, session.ID)
	idx.ByProject[session.Project] = append(idx.ByProject[session.Project], session.ID)

	day := timeutil.DayKey(session.StartedAt)
	idx.ByDay[day] = append(idx.ByDay[day], session.ID)
}

// ensureMaps initializes nil bucket maps on a decoded index. Documents
// written by older revisions may omit empty maps entirely.
func ensureMaps(idx *domain.TaskIndex) {
	if idx.ByProject == nil {
		idx.ByProject = make(map[string][]string)
	}
	if idx.ByCreatedDay == nil {
		idx.ByCreatedDay = make(map[string][]string)
	}
	if idx.ByCompletedDay == nil {
		idx.ByCompletedDay = make(map[string][]string)
	}
}

// prepend inserts id at the head of the list.
func prepend(list []string, id string) []string {
	return append([]string{id}, list...)
}

// remove drops every occurrence of id from the list, keeping order.
func remove(list []string, id string) []string {
	out := list[:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// removeFromBuckets removes id from every bucket in the map, deleting
// buckets that become empty so the document does not accumulate dead keys.
func removeFromBuckets(buckets map[string][]string, id string) {
	for key, list := range buckets {
		trimmed := remove(list, id)
		if len(trimmed) == 0 {
			delete(buckets, key)
			continue
		}
		buckets[key] = trimmed
	}
}
