package counts

import (
	"context"

	"tableflip.dev/focus/pkg/day"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/store"
	"tableflip.dev/focus/pkg/timeutil"
)

type Counts struct {
	Date string
	All  bool

	Persistence store.Persistence
}

func (n *Counts) Do(ctx context.Context) error {
	j := day.New(n.Persistence)

	pp := printers.PrettyPrint{}

	if n.All {
		pp.Counts("All time", j.CountsAllTime())
		return nil
	}

	date := n.Date
	if date == "" || date == "today" {
		date = j.TodayKey()
	} else if _, err := timeutil.ParseDayKey(date); err != nil {
		return err
	}

	pp.Counts(date, j.CountsForDate(date))
	return nil
}
