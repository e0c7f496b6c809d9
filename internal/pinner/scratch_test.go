// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package pinner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinlock/pinlock/internal/manifest"
)

func TestScratchLifecycle(t *testing.T) {
	dir := t.TempDir()

	// A stale scratch file from a previous run gets truncated.
	stale := filepath.Join(dir, scratchName)
	require.NoError(t, os.WriteFile(stale, []byte("leftover==0.1\n"), 0o644))

	s, err := newScratch(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, s.Append(manifest.Pin("pyarrow", "4.0.1")))
	require.NoError(t, s.Append(manifest.Path("./pandas-1.1.0-py3-none-any.whl")))

	data, err = os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "pyarrow==4.0.1\n./pandas-1.1.0-py3-none-any.whl\n", string(data))

	require.NoError(t, s.Close())
	assert.NoFileExists(t, s.Path())

	// Close is idempotent.
	require.NoError(t, s.Close())
}
