package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/counts"
	"tableflip.dev/focus/pkg/store"
)

func addCounts(topLevel *cobra.Command) {
	co := &options.CountsOptions{}

	cmd := &cobra.Command{
		Use:     "counts",
		Aliases: []string{"stats"},
		Short:   "Show task tallies for a day or for all time",
		Example: `
focus counts
focus counts --date 2026-08-25
focus counts --all
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := counts.Counts{
				Date:        co.Date,
				All:         co.All,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCountsArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
