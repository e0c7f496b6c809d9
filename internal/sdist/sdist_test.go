// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package sdist

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinlock/pinlock/internal/fileutil"
)

func TestBuild(t *testing.T) {
	server := sdistServer(t)
	defer server.Close()

	dir := t.TempDir()
	b := &pandasBuilder{
		url: server.URL,
		python: writeStub(t, `#!/bin/sh
mkdir -p dist
echo 'wheel contents' > dist/pandas-1.1.0-py3-none-any.whl
`),
		stderr: &bytes.Buffer{},
	}

	wheel, err := b.Build(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "pandas-1.1.0-py3-none-any.whl"), wheel)
	assert.True(t, fileutil.IsFile(wheel))
	// The extracted source tree is removed after the build.
	assert.False(t, fileutil.Exists(filepath.Join(dir, sdistName)))
}

func TestBuildFailureSurfacesOutput(t *testing.T) {
	server := sdistServer(t)
	defer server.Close()

	var stderr bytes.Buffer
	b := &pandasBuilder{
		url: server.URL,
		python: writeStub(t, `#!/bin/sh
echo 'error: no C compiler'
exit 1
`),
		stderr: &stderr,
	}

	_, err := b.Build(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "error: no C compiler")
}

func TestBuildDownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	b := &pandasBuilder{url: server.URL, python: "python", stderr: &bytes.Buffer{}}
	_, err := b.Build(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

// sdistServer serves a minimal pandas sdist tarball.
func sdistServer(t *testing.T) *httptest.Server {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range map[string]string{
		sdistName + "/setup.py":  "from setuptools import setup\nsetup()\n",
		sdistName + "/README.md": "pandas\n",
	} {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
}

func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub build scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}
