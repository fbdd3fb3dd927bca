package cmd

import (
	"github.com/spf13/cobra"
	"github.com/whalebone-dev/whalebone/cmd/schema"
	"github.com/whalebone-dev/whalebone/cmd/start"
)

var cmds = []*cobra.Command{
	start.Cmd,
	schema.Cmd,
}

// Execute builds the command tree and executes commands.
func Execute() error {
	return New().Execute()
}

// New returns the root command.
func New() *cobra.Command {
	command := &cobra.Command{
		Use:           "whalebone",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	for _, c := range cmds {
		command.AddCommand(c)
	}

	return command
}
