// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// IO provides input and output streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run is the main entry point for the CLI command. args are the command
// line arguments without the program name. The returned value is the
// process exit code.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(ctx, flags)
	if err != nil {
		slog.Error(err.Error())
		return -1
	}

	return 0
}

func run(ctx context.Context, flags *flags) error {
	key, err := loadKey(flags.keyPath)
	if err != nil {
		return err
	}

	slog.Debug("Loaded adb public key",
		slog.String("path", flags.keyPath),
		slog.Int("size", len(key)))

	// The inputs are independent, so patch them in parallel.
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for _, input := range flags.inputs {
		eg.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			output := flags.outPath
			if output == "" {
				output = derivedOutputPath(input)
			}

			err = patchFile(input, output, flags.bootName, key)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			slog.Info("Patched boot image",
				slog.String("input", input),
				slog.String("output", output))

			return nil
		})
	}

	return eg.Wait()
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help or version output was requested, so
	// exit without error in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so just exit non-zero.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}
