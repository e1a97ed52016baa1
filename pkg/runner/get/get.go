package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/day"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/store"
)

type Get struct {
	ShowID  bool
	History bool
	Date    string

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	j := day.New(n.Persistence)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.History {
		all := j.History()
		if len(all) == 0 {
			pp.Title("History")
			pp.Tasks()
			return nil
		}
		for _, e := range all {
			pp.Entry(e)
		}
		return nil
	}

	if n.Date != "" {
		e, ok := j.Entry(n.Date)
		if !ok {
			pp.Title(n.Date)
			pp.Tasks()
			return nil
		}
		pp.Entry(e)
		return nil
	}

	pp.Title("Today")
	pp.Tasks(j.Today()...)
	return nil
}
