// Package iologger opens log destinations and installs the default
// slog logger.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/itismatch/pkg/config"
	"github.com/gnames/itismatch/pkg/logger"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "itismatch.log"

var logFile *os.File

// Init sets the global slog logger according to cfg and returns it.
// Creates log file in logDir if destination is "file". A previously
// opened log file is closed.
func Init(logDir string, cfg config.LogConfig) (*slog.Logger, error) {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.OpenFile(
			logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644,
		)
		if err != nil {
			return nil, CreateLogFileError(logPath, err)
		}
		Close()
		logFile = file
		writer = file
	default:
		writer = os.Stderr
	}

	log := logger.New(cfg, writer)
	slog.SetDefault(log)
	return log, nil
}

// Close closes the log file if there is one.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
