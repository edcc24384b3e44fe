// Package testutil holds shared test helpers.
package testutil

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitTestLogger silences the global logger for the duration of a test.
func InitTestLogger(t *testing.T) {
	t.Helper()
	log.Logger = zerolog.New(io.Discard)
}
