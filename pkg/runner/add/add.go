package add

import (
	"context"

	"tableflip.dev/focus/pkg/day"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/store"
	"tableflip.dev/focus/pkg/task"
)

type Add struct {
	Text     string
	Category task.Category

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	j := day.New(n.Persistence)

	// The capture surface owns the soft cap, not the journal.
	if len(j.Today()) >= day.MaxTasks {
		return day.PreconditionError{
			Reason: "today already has five tasks; finalize or complete something first",
		}
	}

	if _, err := j.AddTask(n.Text, n.Category); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Today")
	pp.Tasks(j.Today()...)
	return nil
}
