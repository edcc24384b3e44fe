package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newSyncCommand creates the manifest sync command.
func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Regenerate the process-manager manifests",
		Long: `Regenerate every configured process-manager manifest from the current
source versions. Run by the process supervisor's startup sequence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bumper, err := newBumperFromCommand(cmd)
			if err != nil {
				return err
			}

			synced, err := bumper.Sync()
			for _, path := range synced {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Synced %s", path))
			}
			if err != nil {
				return err
			}
			return nil
		},
	}
}
