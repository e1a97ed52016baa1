package task

import (
	"fmt"

	"github.com/google/uuid"
)

// Category tags a task as part of personal or professional life.
type Category string

const (
	Personal     Category = "personal"
	Professional Category = "professional"
)

// ParseCategory maps user input to a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case Personal:
		return Personal, true
	case Professional:
		return Professional, true
	}
	return "", false
}

func (c Category) Valid() bool {
	return c == Personal || c == Professional
}

func (c Category) String() string {
	return string(c)
}

// Task is a single captured item for the day. IDs are stable across
// edits; Priority is a 1-based rank, contiguous within a day.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Priority  int       `json:"priority"`
	Completed bool      `json:"completed"`
	Created   Timestamp `json:"createdAt"`
}

func New(text string, category Category, created Timestamp) Task {
	return Task{
		ID:       uuid.NewString(),
		Text:     text,
		Category: category,
		Created:  created,
	}
}

func (t Task) String() string {
	return fmt.Sprintf("%d. %s (%s)", t.Priority, t.Text, t.Category)
}

// DailyEntry holds one day's tasks plus an optional reflection. Date
// is the calendar day key, Saved the instant the entry was written.
type DailyEntry struct {
	Date       string    `json:"date"`
	Tasks      []Task    `json:"tasks"`
	Reflection string    `json:"reflection,omitempty"`
	Saved      Timestamp `json:"timestamp"`
}

// Find returns the index of the task with the given id, or -1.
func (e *DailyEntry) Find(id string) int {
	for i, t := range e.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Counts are tallies over one entry or the whole history.
type Counts struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Personal     int `json:"personal"`
	Professional int `json:"professional"`
}

// Tally folds one entry's tasks into the counts.
func (c *Counts) Tally(e DailyEntry) {
	for _, t := range e.Tasks {
		c.Total++
		if t.Completed {
			c.Completed++
		}
		switch t.Category {
		case Personal:
			c.Personal++
		case Professional:
			c.Professional++
		}
	}
}
