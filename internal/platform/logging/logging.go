// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package logging builds the structured [slog.Logger] used by the CLI.
//
// Logs are written to a separate stream (stderr in production) so that they never
// interleave with the menu output a user reads on stdout.
package logging

import (
	"io"
	"log/slog"

	"github.com/taibuivan/movies/internal/platform/config"
	"github.com/taibuivan/movies/internal/platform/constants"
)

// New returns a logger writing to w in the configured format and level,
// tagged with the application name.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}

	var handler slog.Handler
	if cfg.LogFormat == config.FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", constants.AppName))
}
