package finalize

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/focus/pkg/day"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/store"
)

type Finalize struct {
	Reflection string

	Persistence store.Persistence
}

func (n *Finalize) Do(ctx context.Context) error {
	j := day.New(n.Persistence)

	e, err := j.Finalize(n.Reflection)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Entry(e)

	if streak := j.Streak(); streak > 1 {
		c := color.New(color.FgHiGreen)
		_, _ = c.Printf("%d day streak\n", streak)
	}
	return nil
}
