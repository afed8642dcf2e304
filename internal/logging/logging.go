// Package logging builds the charmbracelet/log loggers used by the CLI
// and the board.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/listboard/internal/config"
)

// New returns a text logger writing to w at level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "listboard",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.TextFormatter,
	}), nil
}

// ForBoard returns the logger used while the board owns the terminal.
// Output goes to cfg.File, or nowhere when no file is configured. The
// returned close func is never nil.
func ForBoard(cfg config.LoggingConfig) (*log.Logger, func() error, error) {
	path := strings.TrimSpace(cfg.File)
	if path == "" {
		l, err := New(io.Discard, cfg.Level)
		return l, func() error { return nil }, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, cfg.Level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return l, f.Close, nil
}
