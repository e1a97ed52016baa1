package store

import "tableflip.dev/focus/pkg/task"

// Memory returns an in-memory Persistence for tests and dry runs.
func Memory() Persistence {
	return &memory{}
}

type memory struct {
	entries []task.DailyEntry
	last    string
	hasLast bool
}

func (m *memory) Load() []task.DailyEntry {
	return clone(m.entries)
}

func (m *memory) Save(entries []task.DailyEntry) error {
	m.entries = clone(entries)
	return nil
}

func (m *memory) LastCompleted() (string, bool) {
	return m.last, m.hasLast
}

func (m *memory) SetLastCompleted(day string) error {
	m.last = day
	m.hasLast = true
	return nil
}

func (m *memory) Clear() error {
	m.entries = nil
	m.last = ""
	m.hasLast = false
	return nil
}

// clone deep-copies entries so callers can't alias the stored state,
// matching the read-fresh behavior of the disk store.
func clone(entries []task.DailyEntry) []task.DailyEntry {
	out := make([]task.DailyEntry, len(entries))
	copy(out, entries)
	for i := range out {
		tasks := make([]task.Task, len(entries[i].Tasks))
		copy(tasks, entries[i].Tasks)
		out[i].Tasks = tasks
	}
	return out
}
