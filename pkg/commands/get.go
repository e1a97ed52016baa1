package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/get"
	"tableflip.dev/focus/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	do := &options.GetOptions{}

	cmd := &cobra.Command{
		Use:     "today",
		Aliases: []string{"get", "list"},
		Short:   "Show today's tasks",
		Example: `
focus today
focus today --id
focus today --date 2026-08-25
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      do.ShowID,
				Date:        do.Date,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGetArgs(cmd, do)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addHistory(topLevel *cobra.Command) {
	ho := &options.GetOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show every saved day",
		Example: `
focus history
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      ho.ShowID,
				History:     true,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&ho.ShowID, "id", false,
		"Show task ids.")
	topLevel.AddCommand(cmd)
}
