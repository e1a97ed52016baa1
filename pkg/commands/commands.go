package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/focus/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "focus",
		Short: base.Wrap80("Capture, rank, and close out your daily focus list."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addHistory(topLevel)
	addComplete(topLevel)
	addFinalize(topLevel)
	addCounts(topLevel)
	addStatus(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addClear(topLevel)
	addVersion(topLevel)
}
