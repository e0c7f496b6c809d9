// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package cmdutil

import (
	"context"
	"os"
	"os/exec"
)

// CommandContextTTY returns a command bound to ctx with stdin, stdout, and
// stderr attached to the process's own streams. Output of the child streams
// through untouched, which keeps the child's diagnostics visible on failure.
func CommandContextTTY(ctx context.Context, name string, arg ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
