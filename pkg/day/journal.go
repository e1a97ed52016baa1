// Package day is the journal core: capturing tasks into today's
// entry, counting history, and closing out the day.
package day

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/focus/pkg/score"
	"tableflip.dev/focus/pkg/store"
	"tableflip.dev/focus/pkg/task"
	"tableflip.dev/focus/pkg/timeutil"
)

const (
	// MinTasks gates finalize: a day needs at least this many tasks.
	MinTasks = 3
	// MaxTasks is the soft capture cap, enforced by the capture
	// surface rather than the journal itself.
	MaxTasks = 5
)

// Journal applies the daily-entry semantics on top of a Persistence.
// Clock is injectable for tests; nil means time.Now.
type Journal struct {
	Persistence store.Persistence
	Clock       func() time.Time
}

func New(p store.Persistence) *Journal {
	return &Journal{Persistence: p}
}

func (j *Journal) now() time.Time {
	if j.Clock != nil {
		return j.Clock()
	}
	return time.Now()
}

func (j *Journal) todayKey() string {
	return timeutil.DayKey(j.now())
}

// TodayKey exposes the current day key for callers that render or
// query by date.
func (j *Journal) TodayKey() string {
	return j.todayKey()
}

// AddTask validates and captures a new task into today's entry. The
// new task ranks after everything already captured.
func (j *Journal) AddTask(text string, category task.Category) (task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return task.Task{}, ValidationError{Reason: "text must not be empty"}
	}
	if !category.Valid() {
		return task.Task{}, ValidationError{Reason: fmt.Sprintf("unknown category %q", category)}
	}

	t := task.New(text, category, task.Timestamp{Time: j.now()})
	t.Priority = len(j.Today()) + 1

	if err := j.UpsertToday(t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// UpsertToday writes t into today's entry: replaced in place when the
// id already exists, appended otherwise. Today's entry is created on
// first use. There is exactly one entry per date; the full history is
// rewritten on every call.
func (j *Journal) UpsertToday(t task.Task) error {
	entries := j.Persistence.Load()
	today := j.todayKey()

	idx := -1
	for i := range entries {
		if entries[i].Date == today {
			idx = i
			break
		}
	}
	if idx < 0 {
		entries = append(entries, task.DailyEntry{Date: today})
		idx = len(entries) - 1
	}

	e := &entries[idx]
	if i := e.Find(t.ID); i >= 0 {
		e.Tasks[i] = t
	} else {
		e.Tasks = append(e.Tasks, t)
	}
	e.Saved = task.Timestamp{Time: j.now()}

	return j.Persistence.Save(entries)
}

// Today returns the task list of today's entry, empty when the day
// has no captures yet.
func (j *Journal) Today() []task.Task {
	if e, ok := j.Entry(j.todayKey()); ok {
		return e.Tasks
	}
	return []task.Task{}
}

// Entry returns the entry for a day key.
func (j *Journal) Entry(day string) (task.DailyEntry, bool) {
	for _, e := range j.Persistence.Load() {
		if e.Date == day {
			return e, true
		}
	}
	return task.DailyEntry{}, false
}

// History returns every saved entry in save order.
func (j *Journal) History() []task.DailyEntry {
	return j.Persistence.Load()
}

// Complete marks the unique task whose id starts with prefix as done.
func (j *Journal) Complete(prefix string) (task.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return task.Task{}, ValidationError{Reason: "task id required"}
	}

	var found *task.Task
	for _, t := range j.Today() {
		if strings.HasPrefix(t.ID, prefix) {
			if found != nil {
				return task.Task{}, fmt.Errorf("id %q is ambiguous", prefix)
			}
			t := t
			found = &t
		}
	}
	if found == nil {
		return task.Task{}, fmt.Errorf("no task matching %q in today's list", prefix)
	}

	found.Completed = true
	if err := j.UpsertToday(*found); err != nil {
		return task.Task{}, err
	}
	return *found, nil
}

// Finalize closes out the day: tasks are re-ranked by score, the
// optional reflection attached, the entry rewritten, and the
// last-completed marker set to today. At least MinTasks tasks must
// have been captured.
func (j *Journal) Finalize(reflection string) (task.DailyEntry, error) {
	now := j.now()
	today := timeutil.DayKey(now)

	tasks := j.Today()
	if len(tasks) < MinTasks {
		return task.DailyEntry{}, PreconditionError{
			Reason: fmt.Sprintf("need at least %d tasks to finalize, have %d", MinTasks, len(tasks)),
		}
	}

	ranked := score.Sort(now, tasks)
	for i := range ranked {
		ranked[i].Priority = i + 1
	}

	final := task.DailyEntry{
		Date:       today,
		Tasks:      ranked,
		Reflection: strings.TrimSpace(reflection),
		Saved:      task.Timestamp{Time: now},
	}

	entries := j.Persistence.Load()
	replaced := false
	for i := range entries {
		if entries[i].Date == today {
			entries[i] = final
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, final)
	}

	if err := j.Persistence.Save(entries); err != nil {
		return task.DailyEntry{}, err
	}
	if err := j.Persistence.SetLastCompleted(today); err != nil {
		return task.DailyEntry{}, err
	}
	return final, nil
}

// CountsForDate tallies a single day's entry.
func (j *Journal) CountsForDate(day string) task.Counts {
	var c task.Counts
	if e, ok := j.Entry(day); ok {
		c.Tally(e)
	}
	return c
}

// CountsAllTime tallies every entry in the history.
func (j *Journal) CountsAllTime() task.Counts {
	var c task.Counts
	for _, e := range j.Persistence.Load() {
		c.Tally(e)
	}
	return c
}

// Streak counts the consecutive run of days with saved entries ending
// at the last-completed day. A marker older than yesterday means the
// streak is broken.
func (j *Journal) Streak() int {
	last, ok := j.Persistence.LastCompleted()
	if !ok {
		return 0
	}
	today := j.todayKey()
	yesterday, err := timeutil.PrevDayKey(today)
	if err != nil {
		return 0
	}
	if last != today && last != yesterday {
		return 0
	}

	days := make(map[string]bool)
	for _, e := range j.Persistence.Load() {
		days[e.Date] = true
	}

	n := 0
	for d := last; days[d]; {
		n++
		prev, err := timeutil.PrevDayKey(d)
		if err != nil {
			break
		}
		d = prev
	}
	return n
}
