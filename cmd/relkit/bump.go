package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nsbackup/relkit/internal/commits"
	"github.com/nsbackup/relkit/internal/history"
	"github.com/nsbackup/relkit/internal/prompt"
	"github.com/nsbackup/relkit/internal/release"
	"github.com/nsbackup/relkit/internal/semver"
	"github.com/nsbackup/relkit/internal/storage"
)

// newBumpCommand creates the bump command.
func newBumpCommand() *cobra.Command {
	var (
		releaseTypeFlag string
		rangeFlag       string
		interactive     bool
		noJournal       bool
	)

	cmd := &cobra.Command{
		Use:   "bump [message...]",
		Short: "Bump component versions for a release",
		Long: `Classify commit messages, bump the affected component versions and
rewrite the source constants and manifests. Messages come from the
positional arguments or, with --range, from git log. The primary (bot)
version is printed last for the release orchestrator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			releaseType, err := semver.ParseReleaseType(releaseTypeFlag)
			if err != nil {
				return err
			}

			messages := args
			if rangeFlag != "" {
				if len(args) > 0 {
					return errors.New("pass commit messages or --range, not both")
				}
				collected, err := commits.Collector{}.MessagesInRange(cmd.Context(), rangeFlag)
				if err != nil {
					return err
				}
				for _, c := range collected {
					messages = append(messages, c.Message)
				}
			}

			opts, journal := openJournal(cmd.Context(), noJournal)
			if journal != nil {
				defer func() { _ = journal.Close() }()
			}

			bumper, err := newBumperFromCommand(cmd, opts...)
			if err != nil {
				return err
			}

			if interactive {
				if err := confirmBump(messages, releaseType); err != nil {
					return err
				}
			}

			result, err := bumper.Bump(cmd.Context(), messages, releaseType)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, change := range result.Changes {
				_, _ = fmt.Fprintln(out, color.GreenString("Bumped %s", change.String()))
			}
			for _, warning := range result.Warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("Warning: %s", warning))
			}

			// The canonical release version, on its own line.
			_, _ = fmt.Fprintln(out, result.Primary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&releaseTypeFlag, "type", "t", "", "release type: major, minor or patch")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&rangeFlag, "range", "", "git revision range to collect messages from, e.g. v2.0.0..HEAD")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "ask for confirmation before writing")
	cmd.Flags().BoolVar(&noJournal, "no-journal", false, "skip recording the bump in the history journal")

	return cmd
}

// openJournal opens the history store. Journal problems never block a
// release, so failures degrade to a stderr warning.
func openJournal(ctx context.Context, disabled bool) ([]release.Option, *history.Store) {
	if disabled {
		return nil, nil
	}

	path, err := storage.New(afero.NewOsFs()).HistoryPath()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: history journal unavailable: %v\n", err)
		return nil, nil
	}

	store, err := history.Open(ctx, path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: history journal unavailable: %v\n", err)
		return nil, nil
	}

	return []release.Option{release.WithRecorder(store)}, store
}

func confirmBump(messages []string, t semver.ReleaseType) error {
	commitList := make([]commits.Commit, 0, len(messages))
	for _, m := range messages {
		commitList = append(commitList, commits.Commit{Message: m})
	}
	decision := commits.Classify(commitList)

	question := fmt.Sprintf("Apply %s bump to %s?", t, strings.Join(decision.Components(), " and "))
	ok, err := prompt.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return prompt.ErrCancelled
	}
	return nil
}
