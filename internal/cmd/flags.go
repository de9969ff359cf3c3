// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
)

const (
	name = "adb-keys-initramfs"

	defaultBootName = "boot.img"
)

// Set on build.
var version = "dev"

type flags struct {
	keyPath  string
	bootName string
	outPath  string
	inputs   []string

	version bool
	debug   bool
	flagSet *flag.FlagSet
	stdout  io.Writer
}

func newFlags(cfg IO) *flags {
	flags := &flags{
		bootName: defaultBootName,
		stdout:   cfg.Stdout,
	}

	flags.initFlagset(cfg.Stderr)

	return flags
}

func parseArgs(args []string, cfg IO) (*flags, error) {
	flags := newFlags(cfg)

	err := flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) initFlagset(output io.Writer) {
	fsName := name + " [flags...] file [file...]"
	fs := flag.NewFlagSet(fsName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(
		&f.keyPath,
		"key",
		f.keyPath,
		"adb public key file to install (default ~/.android/adbkey.pub)",
	)

	fs.StringVar(
		&f.bootName,
		"boot",
		f.bootName,
		"name of the boot image entry inside a flashable ZIP",
	)

	fs.StringVar(
		&f.outPath,
		"out",
		f.outPath,
		"output file. Requires a single input file. By default the result "+
			"is written next to the input, with \".adb\" inserted before "+
			"the extension.",
	)

	fs.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	fs.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = fs
}

// ParseArgs parses the command line arguments, not including the program
// name. Inputs are patched as bare boot images if they start with the boot
// image magic, as flashable ZIPs otherwise.
func (f *flags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: ErrHelp}
	}

	if f.keyPath == "" {
		path, err := defaultKeyPath()
		if err != nil {
			return f.fail("default key path", err)
		}

		f.keyPath = path
	}

	f.inputs = f.flagSet.Args()

	if len(f.inputs) < 1 {
		return f.fail("no input files given", nil)
	}

	if f.outPath != "" && len(f.inputs) > 1 {
		return f.fail("-out requires a single input file", nil)
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() {
	fmt.Fprintf(f.stdout, "%s: %s\n", name, version)

	buildInfo, ok := debug.ReadBuildInfo()
	if ok {
		fmt.Fprintln(f.stdout, buildInfo.String())
	}
}
