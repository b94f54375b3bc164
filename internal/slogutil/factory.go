package slogutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"doclint/internal/config"
)

// LoggerFactory builds the CLI logger from configuration.
// Precedence for the level: CLI flags > config logging.level > warn.
type LoggerFactory struct {
	config   *config.Config
	stderr   io.Writer
	cliLevel slog.Level
	cliSet   bool
	closers  []io.Closer
}

// NewLoggerFactory creates a new logger factory. A nil cfg uses defaults.
func NewLoggerFactory(cfg *config.Config, stderr io.Writer) *LoggerFactory {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &LoggerFactory{
		config: cfg,
		stderr: stderr,
	}
}

// SetCLILevel records a level chosen by command line flags.
func (f *LoggerFactory) SetCLILevel(level slog.Level) {
	f.cliLevel = level
	f.cliSet = true
}

// CLILogger returns a logger writing to stderr, teed into logging.file when configured.
// A log file that cannot be opened is reported and otherwise ignored.
func (f *LoggerFactory) CLILogger() *slog.Logger {
	level := f.effectiveLevel()
	console := NewHandlerWithOptions(f.stderr, Options{Level: level, OmitTime: true})

	if f.config.Logging.File == "" {
		return slog.New(console)
	}

	path := f.config.Logging.File
	if !filepath.IsAbs(path) && f.config.Root != "" {
		path = filepath.Join(f.config.Root, path)
	}
	file, err := openLogFile(path)
	if err != nil {
		logger := slog.New(console)
		logger.Warn("Cannot open log file", "path", path, "error", err.Error())
		return logger
	}
	f.closers = append(f.closers, file)

	return NewTeeLogger(console, NewHandler(file, &slog.HandlerOptions{Level: level}))
}

func (f *LoggerFactory) effectiveLevel() slog.Level {
	if f.cliSet {
		return f.cliLevel
	}
	return LevelFromString(f.config.Logging.Level)
}

// Close closes all open log files.
func (f *LoggerFactory) Close() error {
	var firstErr error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	f.closers = nil
	return firstErr
}
