package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nsbackup/relkit/internal/launcher"
)

func main() {
	if err := run(); err != nil {
		// The run command propagates the child's exit code
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := newRootCommand().Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
