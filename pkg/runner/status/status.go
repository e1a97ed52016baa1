package status

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/focus/pkg/day"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/store"
)

type Status struct {
	Persistence store.Persistence
}

func (n *Status) Do(ctx context.Context) error {
	j := day.New(n.Persistence)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(j.TodayKey())
	pp.Tasks(j.Today()...)

	f := color.New(color.Faint)
	switch phase := j.Phase(); phase {
	case day.Empty:
		_, _ = f.Println("phase: empty — capture your first task")
	case day.Capturing:
		_, _ = f.Printf("phase: capturing — %d more to go before finalize\n", day.MinTasks-len(j.Today()))
	case day.Ready:
		_, _ = f.Println("phase: ready — finalize when you are done capturing")
	case day.Finalized:
		_, _ = f.Println("phase: finalized")
	}

	if last, ok := n.Persistence.LastCompleted(); ok {
		_, _ = f.Printf("last completed: %s\n", last)
	}
	if streak := j.Streak(); streak > 0 {
		c := color.New(color.FgHiGreen)
		_, _ = c.Printf("streak: %d day(s)\n", streak)
	}
	return nil
}
