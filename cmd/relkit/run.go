package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsbackup/relkit/internal/launcher"
)

// newRunCommand creates the process-launch command.
func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run {bot|api} [-- args...]",
		Short: "Start a component with its version in the environment",
		Long: `Resolve the component's version from its source constant and spawn the
configured binary with VERSION set, passing through stdio. Exits with the
child's exit code.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}
			comp, err := cfg.Component(name)
			if err != nil {
				return err
			}
			if comp.Binary == "" {
				return fmt.Errorf("component %q has no binary configured", name)
			}

			bumper, err := newBumperFromCommand(cmd)
			if err != nil {
				return err
			}
			v, err := bumper.Version(name)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true
			return launcher.Run(cmd.Context(), comp.Binary, v, args[1:])
		},
	}
}
