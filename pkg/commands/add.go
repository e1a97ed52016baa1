package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/add"
	"tableflip.dev/focus/pkg/store"
	"tableflip.dev/focus/pkg/task"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to today's list",
		Example: `
focus add personal call the dentist
focus add professional ship the quarterly report
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCategory(cmd, task.Personal, "Add a personal task")
	addCategory(cmd, task.Professional, "Add a professional task")

	topLevel.AddCommand(cmd)
}

func addCategory(topLevel *cobra.Command, category task.Category, short string) {
	no := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:     category.String(),
		Aliases: categoryAliases(category),
		Short:   short,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the task text")
			}
			no.Text = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Text:        no.Text,
				Category:    category,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func categoryAliases(category task.Category) []string {
	if category == task.Professional {
		return []string{"pro", "work"}
	}
	return []string{"p", "life"}
}
