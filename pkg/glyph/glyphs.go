package glyph

import (
	"fmt"

	"tableflip.dev/focus/pkg/task"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     "p",
			Symbol:  "●",
			Meaning: "personal task",
		}, {
			Key:     "w",
			Symbol:  "◆",
			Meaning: "professional task",
		}, {
			Key:     "x",
			Symbol:  "✘",
			Meaning: "task completed",
		}, {
			Key:     "·",
			Symbol:  "·",
			Meaning: "task open",
		},
	}
}

// Category returns the symbol for a task's category.
func Category(c task.Category) string {
	if c == task.Professional {
		return "◆"
	}
	return "●"
}

// Done returns the completion marker for a task.
func Done(completed bool) string {
	if completed {
		return "✘"
	}
	return "·"
}

func (g Glyph) String() string {
	return g.Symbol
}
