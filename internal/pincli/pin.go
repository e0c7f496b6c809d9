// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package pincli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pinlock/pinlock/internal/envir"
	"github.com/pinlock/pinlock/internal/pinner"
	"github.com/pinlock/pinlock/internal/resolver"
	"github.com/pinlock/pinlock/internal/sdist"
	"github.com/pinlock/pinlock/internal/ux"
)

type pinCmdFlags struct {
	dir        string
	base       string
	test       string
	output     string
	testOutput string
	resolver   string
	envFile    string
}

func pinCmd() *cobra.Command {
	flags := pinCmdFlags{}

	command := &cobra.Command{
		Use:   "pin",
		Short: "Produce pinned lock files from the requirement manifests",
		Long: "Assemble a scratch requirements file from the optional " +
			"PYARROW_VERSION and PANDAS_VERSION settings, then run the " +
			"resolver twice: once over the base manifest and once over the " +
			"test manifest. The scratch file is removed when the run ends, " +
			"whether it succeeded or not.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pinCmdFunc(cmd, flags)
		},
	}

	command.Flags().StringVarP(
		&flags.dir, "dir", "d", "", "directory to run in (default: current directory)")
	command.Flags().StringVar(
		&flags.base, "base", pinner.DefaultBaseManifest, "base requirements manifest")
	command.Flags().StringVar(
		&flags.test, "test", pinner.DefaultTestManifest, "test requirements manifest")
	command.Flags().StringVar(
		&flags.output, "output", pinner.DefaultPinnedOutput, "pinned output for the base manifest")
	command.Flags().StringVar(
		&flags.testOutput, "test-output", pinner.DefaultPinnedTestOutput,
		"pinned output for the test manifest")
	command.Flags().StringVar(
		&flags.resolver, "resolver", "", "path to the resolver tool (default: pip-compile on PATH)")
	command.Flags().StringVar(
		&flags.envFile, "env-file", "",
		"dotenv file with PYARROW_VERSION/PANDAS_VERSION settings; "+
			"process environment takes precedence")
	return command
}

func pinCmdFunc(cmd *cobra.Command, flags pinCmdFlags) error {
	fileEnv := map[string]string{}
	if flags.envFile != "" {
		var err error
		fileEnv, err = envir.LoadFile(flags.envFile)
		if err != nil {
			return err
		}
	}
	setting := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}

	stderr := cmd.ErrOrStderr()
	cfg := pinner.Config{
		PyarrowVersion:   setting(envir.PyarrowVersion),
		PandasVersion:    setting(envir.PandasVersion),
		BaseManifest:     flags.base,
		TestManifest:     flags.test,
		PinnedOutput:     flags.output,
		PinnedTestOutput: flags.testOutput,
		Dir:              flags.dir,
		Resolver:         resolver.New(flags.resolver, stderr),
		Builder:          sdist.NewBuilder(stderr),
		Stderr:           stderr,
	}

	if err := pinner.Pin(cmd.Context(), cfg); err != nil {
		return err
	}

	ux.Fsuccess(cmd.OutOrStdout(), "wrote %s and %s\n", flags.output, flags.testOutput)
	return nil
}
