// Package logging builds the charmbracelet/log logger shared by the CLI,
// the TUI and the store.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tododemo/internal/config"
)

const prefix = "todo"

// ParseFormatter maps a config string to a formatter; unknown names fall
// back to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       ParseFormatter(format),
		Prefix:          prefix,
		ReportTimestamp: format != "" && format != "text",
	}), nil
}

// Open builds the logger for cfg. A configured log file is opened for
// append; otherwise interactive sessions discard logs (the TUI owns the
// terminal) and non-interactive ones write to stderr. The returned close
// func is never nil.
func Open(cfg *config.Config, interactive bool) (*log.Logger, func() error, error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() error { return nil }
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	case interactive:
		w = io.Discard
	}

	logger, err := New(w, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
