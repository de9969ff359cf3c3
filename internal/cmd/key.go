// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// defaultKeyPath returns the public key file the adb tooling maintains for
// the current user.
func defaultKeyPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}

	return filepath.Join(home, ".android", "adbkey.pub"), nil
}

// loadKey reads the key material to install. The content is treated as
// opaque; adbd parses it on the device.
func loadKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}

	if len(bytes.TrimSpace(key)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyKeyFile, path)
	}

	return key, nil
}
