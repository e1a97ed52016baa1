package complete

import (
	"context"

	"tableflip.dev/focus/pkg/day"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/store"
)

type Complete struct {
	ID string

	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	j := day.New(n.Persistence)

	if _, err := j.Complete(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("Today")
	pp.Tasks(j.Today()...)
	return nil
}
