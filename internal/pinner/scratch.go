// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package pinner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pinlock/pinlock/internal/manifest"
)

const scratchName = "scratch-requirements.txt"

// scratch is the ephemeral requirements file assembled from the optional
// extra entries. It exists only for the duration of one pin run: callers
// must defer Close, which removes the file on every exit path.
type scratch struct {
	path string
}

// newScratch creates (or truncates) the scratch file in dir.
func newScratch(dir string) (*scratch, error) {
	path := filepath.Join(dir, scratchName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.Close(); err != nil {
		return nil, errors.WithStack(err)
	}
	return &scratch{path: path}, nil
}

func (s *scratch) Path() string { return s.path }

// Append adds one requirement line to the end of the file.
func (s *scratch) Append(req manifest.Requirement) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = f.WriteString(req.String() + "\n")
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return errors.WithStack(err)
}

// Close deletes the scratch file. It is safe to call more than once.
func (s *scratch) Close() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.WithStack(err)
}
