// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package pincli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pinlock/pinlock/internal/manifest"
	"github.com/pinlock/pinlock/internal/pincli/usererr"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <pinned-manifest>",
		Short: "Print the entries of a pinned manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCmdFunc(cmd, args[0])
		},
	}
}

func showCmdFunc(cmd *cobra.Command, path string) error {
	reqs, err := manifest.ReadFile(path)
	if err != nil {
		return usererr.WithUserMessage(err, "unable to read manifest %s", path)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Name", "Version")
	for _, req := range reqs {
		version := req.Version()
		if version == "" {
			// Entries that aren't pinned (constraints, wheel paths) are
			// shown as-is.
			version = req.Constraint
		}
		if err := table.Append([]string{req.Name, version}); err != nil {
			return err
		}
	}
	return table.Render()
}
