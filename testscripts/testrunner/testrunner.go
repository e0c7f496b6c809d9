// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package testrunner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/require"

	"github.com/pinlock/pinlock/internal/pincli"
)

func Main(m *testing.M) int {
	commands := map[string]func() int{
		"pinlock": func() int {
			// Call the pinlock CLI directly:
			return pincli.Execute(context.Background(), os.Args[1:])
		},
		// The scripts never reach the network or a real Python toolchain:
		// this fake pip-compile is first on PATH inside the test
		// environment and behaves like the real tool for the flags
		// pinlock passes.
		"pip-compile": fakeResolverMain,
	}
	return testscript.RunMain(m, commands)
}

func RunTestscripts(t *testing.T, testscriptsDir string) {
	globPattern := filepath.Join(testscriptsDir, "**/*.test.txt")
	dirs := globDirs(globPattern)
	require.NotEmpty(t, dirs, "no test scripts found")

	for _, dir := range dirs {
		testscript.Run(t, getTestscriptParams(dir))
	}
}

// Return directories that contain files matching the pattern.
func globDirs(pattern string) []string {
	scripts, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil
	}

	// List of directories with test scripts.
	directories := []string{}
	dups := map[string]bool{}
	for _, script := range scripts {
		dir := filepath.Dir(script)
		if _, ok := dups[dir]; !ok {
			directories = append(directories, dir)
			dups[dir] = true
		}
	}

	return directories
}

// copyFileCmd enables copying files within the WORKDIR
func copyFileCmd(script *testscript.TestScript, neg bool, args []string) {
	if len(args) < 2 {
		script.Fatalf("usage: cp <from-file> <to-file>")
	}
	if neg {
		script.Fatalf("neg does not make sense for this command")
	}
	err := script.Exec("cp", script.MkAbs(args[0]), script.MkAbs(args[1]))
	script.Check(err)
}

func getTestscriptParams(dir string) testscript.Params {
	return testscript.Params{
		Dir:                 dir,
		RequireExplicitExec: true,
		TestWork:            false, // Set to true if you're trying to debug a test.
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"cp": copyFileCmd,
		},
	}
}
