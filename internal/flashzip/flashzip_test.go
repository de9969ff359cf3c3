// SPDX-FileCopyrightText: 2026 Christopher Head <chead@chead.ca>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package flashzip_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/Hawk777/adb-keys-initramfs/internal/flashzip"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zipEntry struct {
	name    string
	method  uint16
	content string
}

var testEntries = []zipEntry{
	{
		name:    "META-INF/com/google/android/update-binary",
		method:  zip.Deflate,
		content: "#!/sbin/sh\n",
	},
	{
		name:    "boot.img",
		method:  zip.Store,
		content: "ANDROID!fake image payload",
	},
	{
		name:    "system.img",
		method:  zip.Deflate,
		content: "system partition payload",
	},
}

func buildZip(tb testing.TB, entries []zipEntry) []byte {
	tb.Helper()

	var buf bytes.Buffer

	writer := zip.NewWriter(&buf)

	for _, entry := range entries {
		hdr := &zip.FileHeader{
			Name:     entry.name,
			Method:   entry.method,
			Modified: time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC),
		}
		hdr.SetMode(0o644)

		file, err := writer.CreateHeader(hdr)
		require.NoError(tb, err)

		_, err = io.WriteString(file, entry.content)
		require.NoError(tb, err)
	}

	require.NoError(tb, writer.Close())

	return buf.Bytes()
}

func openZip(tb testing.TB, data []byte) *zip.Reader {
	tb.Helper()

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(tb, err)

	return reader
}

func readEntry(tb testing.TB, file *zip.File) string {
	tb.Helper()

	reader, err := file.Open()
	require.NoError(tb, err)

	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(tb, err)

	return string(content)
}

func TestRewrite(t *testing.T) {
	input := buildZip(t, testEntries)
	src := openZip(t, input)

	var seen []byte

	var out bytes.Buffer

	err := flashzip.Rewrite(&out, src, "boot.img",
		func(content []byte) ([]byte, error) {
			seen = bytes.Clone(content)
			return []byte("patched image payload"), nil
		})
	require.NoError(t, err)

	assert.Equal(t, []byte("ANDROID!fake image payload"), seen,
		"transform input")

	result := openZip(t, out.Bytes())
	require.Len(t, result.File, len(testEntries))

	for idx, file := range result.File {
		assert.Equal(t, testEntries[idx].name, file.Name, "order")
		assert.Equal(t, testEntries[idx].method, file.Method, "method")
	}

	assert.Equal(t, "#!/sbin/sh\n", readEntry(t, result.File[0]))
	assert.Equal(t, "patched image payload", readEntry(t, result.File[1]))
	assert.Equal(t, "system partition payload", readEntry(t, result.File[2]))

	// Untouched entries are copied raw, so their stored form is identical.
	assert.Equal(t, src.File[2].CRC32, result.File[2].CRC32)
	assert.Equal(t, src.File[2].CompressedSize64,
		result.File[2].CompressedSize64)
}

func TestRewriteEntryNotFound(t *testing.T) {
	src := openZip(t, buildZip(t, testEntries))

	var out bytes.Buffer

	err := flashzip.Rewrite(&out, src, "recovery.img",
		func(content []byte) ([]byte, error) {
			return content, nil
		})
	require.ErrorIs(t, err, flashzip.ErrEntryNotFound)
}

func TestRewriteTransformError(t *testing.T) {
	src := openZip(t, buildZip(t, testEntries))

	var out bytes.Buffer

	err := flashzip.Rewrite(&out, src, "boot.img",
		func([]byte) ([]byte, error) {
			return nil, assert.AnError
		})
	require.ErrorIs(t, err, assert.AnError)
}
