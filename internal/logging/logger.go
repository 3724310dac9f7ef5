// Package logging builds the process logger and carries request-scoped
// logging fields through contexts.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config controls logger behavior.
type Config struct {
	Level   string
	Format  string // "json" or "text"
	DevMode bool
	Output  io.Writer
}

// New creates a configured logrus.Logger. DevMode forces the text format
// and caller reporting.
func New(cfg Config) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetReportCaller(cfg.DevMode)

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	logger.SetOutput(out)

	switch format := strings.ToLower(cfg.Format); {
	case cfg.DevMode || format == "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case format == "" || format == "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return logger, nil
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
