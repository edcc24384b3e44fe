// Package launcher spawns a component's application binary with the
// resolved version injected into its environment.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"

	"github.com/nsbackup/relkit/internal/semver"
)

// VersionEnv is the environment variable carrying the component version
// into the child process.
const VersionEnv = "VERSION"

// ExitError carries a child process exit code up to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("process exited with code %d", e.Code)
}

// Run validates the binary and execs it with VERSION set, wiring the
// child's stdio to ours. A non-zero child exit comes back as *ExitError so
// the caller can propagate the code.
func Run(ctx context.Context, binary string, version semver.Version, args []string) error {
	if err := validateBinary(binary); err != nil {
		return fmt.Errorf("binary %s: %w", binary, err)
	}

	// #nosec G204 -- binary comes from the validated config file
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = append(os.Environ(), VersionEnv+"="+version.String())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Info().
		Str("binary", binary).
		Strs("args", args).
		Str("version", version.String()).
		Msg("spawning component process")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", binary, err)
	}
	return nil
}

// validateBinary checks that the given path is a regular, executable file.
func validateBinary(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New("file does not exist")
		}
		return fmt.Errorf("cannot stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return errors.New("not a regular file")
	}

	if info.Mode().Perm()&0o111 == 0 {
		return errors.New("file is not executable")
	}

	return nil
}
