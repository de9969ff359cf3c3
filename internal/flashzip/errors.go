// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package flashzip

import "errors"

// ErrEntryNotFound is returned if the archive has no entry under the name
// to rewrite.
var ErrEntryNotFound = errors.New("entry not found in archive")
