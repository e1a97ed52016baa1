package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/focus/pkg/glyph"
	"tableflip.dev/focus/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Tasks prints a day's list in priority order.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, tk := range tasks {
		if pp.ShowID {
			id := shortID(tk.ID)
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		text := tk.Text
		if tk.Completed {
			text = glyph.Strike(text)
		}
		_, _ = t.Printf("%d %s %s %s\n", tk.Priority, glyph.Category(tk.Category), glyph.Done(tk.Completed), text)
	}
	_, _ = t.Println("")
}

// Entry prints a finalized or in-progress day, reflection included.
func (pp *PrettyPrint) Entry(e task.DailyEntry) {
	pp.TitleWithCount(e.Date, len(e.Tasks))
	pp.Tasks(e.Tasks...)
	if e.Reflection != "" {
		r := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = r.Print(spacing)
		}
		_, _ = r.Printf("“%s”\n\n", e.Reflection)
	}
}

// Counts prints tallies as a two-column table.
func (pp *PrettyPrint) Counts(title string, c task.Counts) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Count"), glyph.Bold("Value"))
	tbl.AddRow("total", c.Total)
	tbl.AddRow("completed", c.Completed)
	tbl.AddRow("personal", c.Personal)
	tbl.AddRow("professional", c.Professional)

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\n"+title)))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
