// Copyright 2024 Jetify Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pin.env")
	content := `# pinned build settings
PYARROW_VERSION=4.0.1
PANDAS_VERSION="master"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	env, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "4.0.1", env[PyarrowVersion])
	assert.Equal(t, "master", env[PandasVersion])
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
