package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/finalize"
	"tableflip.dev/focus/pkg/store"
)

func addFinalize(topLevel *cobra.Command) {
	ro := &options.ReflectionOptions{}

	cmd := &cobra.Command{
		Use:     "finalize",
		Aliases: []string{"closeout", "rank"},
		Short:   "Re-rank today's tasks and close out the day",
		Example: `
focus finalize
focus finalize -r "felt good, shipped the report"
focus finalize felt good today
`,
		Args: func(_ *cobra.Command, args []string) error {
			// Bare words after the verb read as the reflection.
			if len(args) > 0 && ro.Reflection == "" {
				ro.Reflection = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := finalize.Finalize{
				Reflection:  ro.Reflection,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddReflectionArgs(cmd, ro)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
