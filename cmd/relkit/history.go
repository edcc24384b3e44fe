package main

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nsbackup/relkit/internal/history"
	"github.com/nsbackup/relkit/internal/storage"
)

// newHistoryCommand creates the bump history command.
func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently applied version bumps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := storage.New(afero.NewOsFs()).HistoryPath()
			if err != nil {
				return err
			}

			store, err := history.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(out, "No bumps recorded yet")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(out, "%s  %-5s  %s: %s -> %s\n",
					r.BumpedAt.Format(time.RFC3339), r.ReleaseType, r.Component, r.From, r.To)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records to show")

	return cmd
}
