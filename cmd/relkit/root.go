package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nsbackup/relkit/internal/config"
	"github.com/nsbackup/relkit/internal/logging"
	"github.com/nsbackup/relkit/internal/release"
)

// newRootCommand creates the main root command that shows help by default.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "relkit",
		Short:         "Release and process tooling for the backup bot and its API",
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if err := logging.Init(); err != nil {
				// Command output must keep flowing even without a log file.
				_, _ = fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
				logging.InitTest()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "relkit.yml", "Path to config file")

	rootCmd.AddCommand(
		newBumpCommand(),
		newVersionCommand(),
		newSyncCommand(),
		newRunCommand(),
		newHistoryCommand(),
		newValidateCommand(),
	)

	return rootCmd
}

// loadConfigFromCommand resolves the persistent config flag and loads the
// config file.
func loadConfigFromCommand(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	return config.Load(configPath)
}

// newBumperFromCommand builds the release bumper over the real filesystem.
func newBumperFromCommand(cmd *cobra.Command, opts ...release.Option) (*release.Bumper, error) {
	cfg, err := loadConfigFromCommand(cmd)
	if err != nil {
		return nil, err
	}
	return release.NewBumper(afero.NewOsFs(), cfg, opts...), nil
}
