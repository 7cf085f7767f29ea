// Package logging configures the process-wide logrus logger.  In development
// everything goes to stderr at debug level; in any other environment the
// logger writes leveled, timestamped lines to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options selects the sink and level of a logger built by New.
type Options struct {
	Development bool
	File        string
	Level       string
}

// New builds a logger for the given options.  The returned closer releases
// the log file and must be called on shutdown; it is a no-op for stderr.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if opts.Development {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
		return logger, nopCloser{}, nil
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}
	logger.SetLevel(level)

	f, err := OpenAppend(opts.File)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	return logger, f, nil
}

// OpenAppend opens path for appending, creating it and its parent
// directories when needed.
func OpenAppend(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewActivity builds the logger the listing event consumer appends to.
// Entries are JSON lines so the file can be tailed into other tools.
func NewActivity(path string) (*logrus.Logger, io.Closer, error) {
	f, err := OpenAppend(path)
	if err != nil {
		return nil, nil, err
	}
	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	return logger, f, nil
}
