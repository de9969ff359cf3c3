// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name        string
		args        []string
		expectedErr error
		assertFlags func(t *testing.T, flags *flags)
	}{
		{
			name:        "no input files",
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "unknown flag",
			args:        []string{"-bogus", "update.zip"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "help requested",
			args:        []string{"-h"},
			expectedErr: ErrHelp,
		},
		{
			name:        "version requested",
			args:        []string{"-version"},
			expectedErr: ErrHelp,
		},
		{
			name:        "out with multiple inputs",
			args:        []string{"-out", "patched.zip", "a.zip", "b.zip"},
			expectedErr: &ParseArgsError{},
		},
		{
			name: "defaults",
			args: []string{"update.zip"},
			assertFlags: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.Equal(t,
					filepath.Join(home, ".android", "adbkey.pub"),
					flags.keyPath, "key path")
				assert.Equal(t, "boot.img", flags.bootName, "boot name")
				assert.Empty(t, flags.outPath, "out path")
				assert.Equal(t, []string{"update.zip"}, flags.inputs)
				assert.False(t, flags.debug, "debug")
			},
		},
		{
			name: "all flags",
			args: []string{
				"-key", "mykey.pub",
				"-boot", "boot_a.img",
				"-out", "patched.zip",
				"-debug",
				"update.zip",
			},
			assertFlags: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.Equal(t, "mykey.pub", flags.keyPath, "key path")
				assert.Equal(t, "boot_a.img", flags.bootName, "boot name")
				assert.Equal(t, "patched.zip", flags.outPath, "out path")
				assert.Equal(t, []string{"update.zip"}, flags.inputs)
				assert.True(t, flags.debug, "debug")
			},
		},
		{
			name: "multiple inputs",
			args: []string{"a.zip", "b.img", "c.zip"},
			assertFlags: func(t *testing.T, flags *flags) {
				t.Helper()
				assert.Equal(t, []string{"a.zip", "b.img", "c.zip"},
					flags.inputs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			cfg := IO{Stdout: &stdout, Stderr: &stderr}

			flags, err := parseArgs(tt.args, cfg)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			tt.assertFlags(t, flags)
		})
	}
}

func TestParseArgsVersionOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	_, err := parseArgs([]string{"-version"}, IO{
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.ErrorIs(t, err, ErrHelp)

	assert.Contains(t, stdout.String(), name)
}

func TestParseArgsUsageOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	_, err := parseArgs(nil, IO{Stdout: &stdout, Stderr: &stderr})
	require.ErrorIs(t, err, &ParseArgsError{})

	assert.Contains(t, stderr.String(), "no input files given")
	assert.Contains(t, stderr.String(), "Usage")
}
