package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCommand creates the config validation command.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config OK: %d components\n", len(cfg.Components))
			return nil
		},
	}
}
