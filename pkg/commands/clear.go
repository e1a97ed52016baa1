package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/clear"
	"tableflip.dev/focus/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ClearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored history and the completion marker",
		Example: `
focus clear --confirm
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := clear.Clear{
				Confirm:     co.Confirm,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddClearArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
