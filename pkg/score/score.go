// Package score implements the importance+urgency heuristic used to
// rank a day's tasks before finalizing.
package score

import (
	"sort"
	"time"

	"tableflip.dev/focus/pkg/task"
)

// Weight is the Eisenhower importance baseline: professional tasks
// start strictly above personal ones.
func Weight(c task.Category) float64 {
	if c == task.Professional {
		return 2
	}
	return 1
}

// AgeHours returns the task age in hours, clamped to a minimum of 1
// so fresh tasks don't blow up the urgency term.
func AgeHours(now, created time.Time) float64 {
	h := now.Sub(created).Hours()
	if h < 1 {
		return 1
	}
	return h
}

// Score is weight + 1/ageHours: newer tasks rank slightly higher
// within a category. The urgency term stays in (0, 1], so a fresh
// personal task (→ 2.0) can tie, but never beat, a stale professional
// one (→ 2.0). That boundary is intentional.
func Score(now time.Time, t task.Task) float64 {
	return Weight(t.Category) + 1/AgeHours(now, t.Created.Time)
}

// Sort returns a new slice in descending score order. The sort is
// stable: equal scores keep their input order.
func Sort(now time.Time, tasks []task.Task) []task.Task {
	ranked := make([]task.Task, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(now, ranked[i]) > Score(now, ranked[j])
	})
	return ranked
}
