// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package flashzip rewrites a single entry of a flashable ZIP archive.
//
// Recovery flashable ZIPs carry a boot image next to scripts and other
// payloads. [Rewrite] runs one entry through a transform and copies every
// other entry in its raw compressed form, so the rest of the archive is
// carried through bit for bit.
package flashzip
