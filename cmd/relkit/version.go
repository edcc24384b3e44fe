package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCommand creates the version query command.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version {bot|api}",
		Short: "Print a component's current version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bumper, err := newBumperFromCommand(cmd)
			if err != nil {
				return err
			}

			v, err := bumper.Version(args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
