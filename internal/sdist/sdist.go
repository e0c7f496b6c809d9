// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package sdist builds a pandas wheel from a source distribution. The
// release that gets fetched is fixed: setting PANDAS_VERSION only decides
// whether the build runs at all, not which release is built.
package sdist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pinlock/pinlock/internal/cmdutil"
	"github.com/pinlock/pinlock/internal/debug"
	"github.com/pinlock/pinlock/internal/fileutil"
	"github.com/pinlock/pinlock/internal/pincli/usererr"
	"github.com/pinlock/pinlock/internal/ux"
	"github.com/pinlock/pinlock/internal/ux/stepper"
)

const (
	// Release is the pandas sdist release that gets built.
	Release = "1.1.0"

	sdistName = "pandas-" + Release
	sdistURL  = "https://pypi.io/packages/source/p/pandas/" + sdistName + ".tar.gz"
)

// Builder produces a wheel inside dir and returns its path.
type Builder interface {
	Build(ctx context.Context, dir string) (string, error)
}

type pandasBuilder struct {
	url    string
	python string
	stderr io.Writer
}

// NewBuilder returns a Builder that downloads the fixed pandas sdist,
// builds a wheel from it with the local Python toolchain, and leaves the
// wheel in the target directory.
func NewBuilder(stderr io.Writer) Builder {
	return &pandasBuilder{
		url:    sdistURL,
		python: cmdutil.GetPathOrDefault("python3", "python"),
		stderr: stderr,
	}
}

func (b *pandasBuilder) Build(ctx context.Context, dir string) (string, error) {
	defer debug.Timer("sdist.Build").End()

	if err := b.fetchAndExtract(ctx, dir); err != nil {
		return "", err
	}

	srcDir := filepath.Join(dir, sdistName)
	if !fileutil.IsDir(srcDir) {
		return "", usererr.New("sdist archive did not contain a %s directory", sdistName)
	}

	wheel, err := b.buildWheel(ctx, srcDir)
	if err != nil {
		return "", err
	}

	// Move the wheel one directory up so it survives the source-tree
	// cleanup below.
	dest := filepath.Join(dir, filepath.Base(wheel))
	if err := fileutil.CopyFile(wheel, dest); err != nil {
		return "", err
	}
	if err := os.RemoveAll(srcDir); err != nil {
		return "", errors.WithStack(err)
	}
	return dest, nil
}

func (b *pandasBuilder) fetchAndExtract(ctx context.Context, dir string) error {
	fmt.Fprintf(b.stderr, "+ fetch %s\n", b.url)

	var step *stepper.Stepper
	if ux.IsTerminal(b.stderr) {
		step = stepper.Start(b.stderr, "Downloading %s.tar.gz", sdistName)
	}

	err := b.download(ctx, dir)
	if step != nil {
		if err != nil {
			step.Fail("Download of %s failed", sdistName)
		} else {
			step.Success("Downloaded %s", sdistName)
		}
	}
	return err
}

func (b *pandasBuilder) download(ctx context.Context, dir string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return usererr.New("failed to download %s: %s", b.url, response.Status)
	}
	return fileutil.Untar(ctx, response.Body, dir)
}

func (b *pandasBuilder) buildWheel(ctx context.Context, srcDir string) (string, error) {
	cmd := exec.CommandContext(ctx, b.python, "setup.py", "bdist_wheel")
	cmd.Dir = srcDir

	// The build is noisy, so buffer its output and surface it only when it
	// fails.
	out := bytes.NewBuffer(nil)
	cmd.Stdout = out
	cmd.Stderr = out

	fmt.Fprintf(b.stderr, "+ %s\n", cmd)
	debug.Log("building wheel: %s", cmd)

	if err := cmd.Run(); err != nil {
		io.Copy(b.stderr, out) //nolint:errcheck
		return "", usererr.NewExecCmdError(cmd, err)
	}

	wheels, err := filepath.Glob(filepath.Join(srcDir, "dist", "*.whl"))
	if err != nil {
		return "", errors.WithStack(err)
	}
	if len(wheels) != 1 {
		return "", usererr.New("expected exactly one wheel in %s/dist, found %d", srcDir, len(wheels))
	}
	return wheels[0], nil
}
