// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package pinner assembles a scratch requirements manifest and runs the
// external resolver twice to produce the two pinned lock files.
package pinner

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pinlock/pinlock/internal/debug"
	"github.com/pinlock/pinlock/internal/fileutil"
	"github.com/pinlock/pinlock/internal/manifest"
	"github.com/pinlock/pinlock/internal/pincli/usererr"
	"github.com/pinlock/pinlock/internal/resolver"
	"github.com/pinlock/pinlock/internal/sdist"
)

// Default file names, relative to the working directory.
const (
	DefaultBaseManifest     = "requirements.txt"
	DefaultTestManifest     = "test-requirements.txt"
	DefaultPinnedOutput     = "requirements-pinned.txt"
	DefaultPinnedTestOutput = "test-requirements-pinned.txt"
)

// Config carries every setting of a pin run explicitly. Nothing in this
// package reads the process environment; the CLI layer resolves environment
// variables into a Config before calling Pin.
type Config struct {
	// PyarrowVersion, when non-empty, adds a pyarrow==<version> entry to
	// the scratch manifest.
	PyarrowVersion string
	// PandasVersion, when non-empty, triggers the pandas
	// build-from-source pipeline. Only its presence matters: the fetched
	// sdist release is fixed (see the sdist package).
	PandasVersion string

	BaseManifest     string
	TestManifest     string
	PinnedOutput     string
	PinnedTestOutput string

	// Dir is the working directory that relative paths resolve against.
	// Empty means the current directory.
	Dir string

	// Resolver and Builder default to the real exec-based implementations
	// when nil.
	Resolver resolver.Resolver
	Builder  sdist.Builder

	Stderr io.Writer
}

func (c *Config) applyDefaults() {
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.BaseManifest == "" {
		c.BaseManifest = DefaultBaseManifest
	}
	if c.TestManifest == "" {
		c.TestManifest = DefaultTestManifest
	}
	if c.PinnedOutput == "" {
		c.PinnedOutput = DefaultPinnedOutput
	}
	if c.PinnedTestOutput == "" {
		c.PinnedTestOutput = DefaultPinnedTestOutput
	}
	if c.Resolver == nil {
		c.Resolver = resolver.New("", c.Stderr)
	}
	if c.Builder == nil {
		c.Builder = sdist.NewBuilder(c.Stderr)
	}
}

func (c *Config) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

// Pin runs the whole pipeline: scratch-file assembly, the optional pandas
// wheel build, and the two resolver invocations. The first failing step
// aborts the run; the scratch file is removed regardless of outcome. The
// first pinned output may already be written when the second invocation
// fails, exactly as with sequential shell steps.
func Pin(ctx context.Context, cfg Config) error {
	defer debug.Timer("pin").End()
	cfg.applyDefaults()

	base := cfg.path(cfg.BaseManifest)
	test := cfg.path(cfg.TestManifest)
	if !fileutil.IsFile(base) {
		return usererr.New("base manifest %s does not exist", base)
	}
	if !fileutil.IsFile(test) {
		return usererr.New("test manifest %s does not exist", test)
	}

	scratch, err := newScratch(cfg.Dir)
	if err != nil {
		return err
	}
	defer scratch.Close()

	if cfg.PyarrowVersion != "" {
		if err := scratch.Append(manifest.Pin("pyarrow", cfg.PyarrowVersion)); err != nil {
			return err
		}
	}

	if cfg.PandasVersion != "" {
		wheel, err := cfg.Builder.Build(ctx, cfg.Dir)
		if err != nil {
			return err
		}
		if err := scratch.Append(manifest.Path(wheel)); err != nil {
			return err
		}
	}

	err = cfg.Resolver.Compile(ctx, resolver.Invocation{
		Inputs:  []string{scratch.Path(), base},
		Output:  cfg.path(cfg.PinnedOutput),
		Upgrade: true,
		NoIndex: true,
	})
	if err != nil {
		return err
	}

	return cfg.Resolver.Compile(ctx, resolver.Invocation{
		Inputs:  []string{cfg.path(cfg.PinnedOutput), test},
		Output:  cfg.path(cfg.PinnedTestOutput),
		Upgrade: true,
		NoIndex: true,
	})
}
