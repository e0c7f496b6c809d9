// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package resolver shells out to the external requirements resolver
// (pip-compile or a compatible tool) that turns requirement manifests into
// pinned lock files.
package resolver

import (
	"context"
	"fmt"
	"io"

	"github.com/pinlock/pinlock/internal/cmdutil"
	"github.com/pinlock/pinlock/internal/debug"
	"github.com/pinlock/pinlock/internal/envir"
	"github.com/pinlock/pinlock/internal/pincli/usererr"
)

const defaultTool = "pip-compile"

// Invocation describes one resolver run: the input manifests, the pinned
// output file, and the resolution mode flags.
type Invocation struct {
	// Inputs are the requirement manifests to merge, in order.
	Inputs []string
	// Output is the pinned manifest the resolver writes.
	Output string
	// Upgrade prefers the newest satisfying versions over ones already
	// present in Output.
	Upgrade bool
	// NoIndex keeps the resolver off the remote package index.
	NoIndex bool
}

// Args returns the resolver command-line arguments for the invocation.
func (inv Invocation) Args() []string {
	args := []string{}
	if inv.Upgrade {
		args = append(args, "--upgrade")
	}
	if inv.NoIndex {
		args = append(args, "--no-index")
	}
	args = append(args, "--output-file", inv.Output)
	return append(args, inv.Inputs...)
}

// Resolver runs the external tool for a single invocation.
type Resolver interface {
	Compile(ctx context.Context, inv Invocation) error
}

type commandResolver struct {
	path   string
	stderr io.Writer
}

// New returns a Resolver that execs the resolver tool. An explicit tool
// path wins over the PINLOCK_RESOLVER environment variable, which wins over
// whatever pip-compile is on PATH.
func New(toolPath string, stderr io.Writer) Resolver {
	if toolPath == "" {
		toolPath = envir.GetValueOrDefault(
			envir.PinlockResolver,
			cmdutil.GetPathOrDefault(defaultTool, defaultTool),
		)
	}
	return &commandResolver{path: toolPath, stderr: stderr}
}

func (r *commandResolver) Compile(ctx context.Context, inv Invocation) error {
	cmd := cmdutil.CommandContextTTY(ctx, r.path, inv.Args()...)
	cmd.Stderr = r.stderr

	// Echo the command the way a shell trace would, so a failing run shows
	// what was being attempted.
	fmt.Fprintf(r.stderr, "+ %s\n", cmd)
	debug.Log("running resolver: %s", cmd)

	// The resolver's own diagnostics stream through to stderr; its exit
	// code becomes the process exit code, untranslated.
	return usererr.NewExecError(cmd.Run())
}
