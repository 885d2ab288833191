// Package clog builds a *slog.Logger for the CLI drivers, the way
// MacroPower-x's log package turns a pair of flag strings into a
// configured slog.Handler.
package clog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects slog's output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatLogfmt  Format = "logfmt"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// New builds a logger writing to w at the given level and format. level
// and format are case-insensitive; level defaults apply only via
// ParseLevel's own validation, so callers pass whatever the user typed.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return slog.New(CreateHandler(w, lvl, f)), nil
}

// CreateHandler builds a slog.Handler writing to w at lvl, encoded per
// format.
func CreateHandler(w io.Writer, lvl slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case FormatLogfmt:
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// ParseLevel converts a level name (debug, info, warn, error) to a
// slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, s)
	}
}

// ParseFormat converts a format name (json, logfmt) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "logfmt", "text":
		return FormatLogfmt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, s)
	}
}
