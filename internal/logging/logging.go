// Package logging configures the global zerolog logger. Log output goes to
// a rotated file in the XDG data dir so stdout stays clean for command
// output consumed by the release orchestrator.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nsbackup/relkit/internal/storage"
)

const (
	maxLogSizeMB  = 10 // Maximum size in MB before rotation
	maxLogBackups = 3  // Number of old files to keep
	maxLogAgeDays = 30 // Maximum age in days before deletion
)

// Init initializes the global logger with lumberjack rotation at the XDG
// log path.
func Init() error {
	logFile, err := storage.New(afero.NewOsFs()).LogPath()
	if err != nil {
		return err
	}

	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}

	log.Logger = zerolog.New(lj).With().Timestamp().Logger()
	return nil
}

// InitTest initializes the logger for testing (outputs to discard).
func InitTest() {
	log.Logger = zerolog.New(io.Discard)
}
