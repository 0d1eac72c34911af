package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of wwmod's own log file
const LogFileName = "wwmod.log"

// levels maps the -v count onto zerolog levels; anything above is trace
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// SetupLogger configures the global logger for one wwmod invocation.
// Console output goes to stderr; every line is also appended to the
// state-directory log file so a failed move can be diagnosed afterwards.
func SetupLogger(verbosity int) {
	// -v count to level
	level := zerolog.TraceLevel
	if verbosity >= 0 && verbosity < len(levels) {
		level = levels[verbosity]
	}
	zerolog.SetGlobalLevel(level)

	// Human readable console output
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}}

	// The file is optional: a read-only state dir must not stop a deploy
	logFile := LogFilePath()
	fileHandle, fileErr := setupLogFile(logFile)
	if fileErr == nil {
		writers = append(writers, fileHandle)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	// Caller info only when debugging
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	// Reported through the new logger so it reaches the console
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	log.Debug().Int("verbosity", verbosity).Str("level", level.String()).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns the global logger tagged with a component name.
// The result is a value; bind it before calling level methods.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithFields returns the global logger with extra fields attached
func WithFields(fields map[string]interface{}) zerolog.Logger {
	ctx := log.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return ctx.Logger()
}

// LogFilePath returns <state home>/wwmod/wwmod.log.
// XDG_STATE_HOME is read on every call so tests can redirect it.
func LogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		// No usable state dir, log next to the working directory
		return LogFileName
	}
	return filepath.Join(stateHome, "wwmod", LogFileName)
}

// setupLogFile opens logPath for appending, creating its directory
func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand records which wwmod command ran and with what arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Command started")
}

// LogOperationStart logs the start of a long-running step (a pak copy, a
// packaging run) and returns a func that logs its duration.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
