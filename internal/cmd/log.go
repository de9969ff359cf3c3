// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogging installs the default logger. Warnings and errors only,
// unless debug output is requested.
func setupLogging(writer io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(
		writer,
		&tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		},
	)))
}
