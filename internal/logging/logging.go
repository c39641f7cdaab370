// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zerolog logger used across the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLevel maps a level name (debug, info, warn, error) to a zerolog
// level. The empty string means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "", "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New returns a console logger writing to w at the named level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return zerolog.New(console).Level(lvl).With().
		Timestamp().
		Str("app", "excerpts").
		Logger(), nil
}
