// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.
package pincli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinlock/pinlock/internal/pinner"
)

// stubResolver behaves like pip-compile for the flags pinlock passes:
// it concatenates the input manifests into the output file.
const stubResolver = `#!/bin/sh
out=""
inputs=""
while [ $# -gt 0 ]; do
	case "$1" in
	--output-file) out="$2"; shift 2 ;;
	--upgrade|--no-index) shift ;;
	*) inputs="$inputs $1"; shift ;;
	esac
done
cat $inputs > "$out"
`

func setupPinDir(t *testing.T) (dir, stub string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub resolver scripts require a POSIX shell")
	}

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, pinner.DefaultBaseManifest), []byte("requests\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, pinner.DefaultTestManifest), []byte("pytest\n"), 0o644))

	stub = filepath.Join(t.TempDir(), "pip-compile")
	require.NoError(t, os.WriteFile(stub, []byte(stubResolver), 0o755))
	return dir, stub
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := pinCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPin(t *testing.T) {
	dir, stub := setupPinDir(t)

	output, err := runCmd(t, "--dir", dir, "--resolver", stub)
	require.NoError(t, err)
	assert.Contains(t, output, "Success:")

	pinned, err := os.ReadFile(filepath.Join(dir, pinner.DefaultPinnedOutput))
	require.NoError(t, err)
	assert.Contains(t, string(pinned), "requests")

	testPinned, err := os.ReadFile(filepath.Join(dir, pinner.DefaultPinnedTestOutput))
	require.NoError(t, err)
	assert.Contains(t, string(testPinned), "pytest")

	assert.NoFileExists(t, filepath.Join(dir, "scratch-requirements.txt"))
}

func TestPinReadsEnvironment(t *testing.T) {
	dir, stub := setupPinDir(t)
	t.Setenv("PYARROW_VERSION", "4.0.1")

	_, err := runCmd(t, "--dir", dir, "--resolver", stub)
	require.NoError(t, err)

	pinned, err := os.ReadFile(filepath.Join(dir, pinner.DefaultPinnedOutput))
	require.NoError(t, err)
	assert.Contains(t, string(pinned), "pyarrow==4.0.1")
}

func TestPinEnvFile(t *testing.T) {
	dir, stub := setupPinDir(t)

	envFile := filepath.Join(dir, "pin.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PYARROW_VERSION=3.0.0\n"), 0o644))

	_, err := runCmd(t, "--dir", dir, "--resolver", stub, "--env-file", envFile)
	require.NoError(t, err)

	pinned, err := os.ReadFile(filepath.Join(dir, pinner.DefaultPinnedOutput))
	require.NoError(t, err)
	assert.Contains(t, string(pinned), "pyarrow==3.0.0")
}

func TestPinEnvironmentWinsOverEnvFile(t *testing.T) {
	dir, stub := setupPinDir(t)
	t.Setenv("PYARROW_VERSION", "4.0.1")

	envFile := filepath.Join(dir, "pin.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PYARROW_VERSION=3.0.0\n"), 0o644))

	_, err := runCmd(t, "--dir", dir, "--resolver", stub, "--env-file", envFile)
	require.NoError(t, err)

	pinned, err := os.ReadFile(filepath.Join(dir, pinner.DefaultPinnedOutput))
	require.NoError(t, err)
	assert.Contains(t, string(pinned), "pyarrow==4.0.1")
}
