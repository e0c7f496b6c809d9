// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package testrunner

import (
	"fmt"
	"os"

	"github.com/pinlock/pinlock/internal/manifest"
)

// fakeResolverMain stands in for pip-compile. It merges the input manifests
// into the output file, pinning every unpinned name-based requirement to a
// fixed version. FAKE_RESOLVER_FAIL forces a failure, which scripts use to
// check scratch-file cleanup on error exits.
func fakeResolverMain() int {
	if os.Getenv("FAKE_RESOLVER_FAIL") != "" {
		fmt.Fprintln(os.Stderr, "fake resolver: forced failure")
		return 2
	}

	var output string
	var inputs []string
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--output-file":
			i++
			if i == len(args) {
				fmt.Fprintln(os.Stderr, "fake resolver: --output-file needs a value")
				return 2
			}
			output = args[i]
		case "--upgrade", "--no-index":
			// accepted and ignored
		default:
			inputs = append(inputs, args[i])
		}
	}
	if output == "" {
		fmt.Fprintln(os.Stderr, "fake resolver: no --output-file given")
		return 2
	}

	pinned := ""
	for _, input := range inputs {
		reqs, err := manifest.ReadFile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fake resolver: %v\n", err)
			return 1
		}
		for _, req := range reqs {
			if req.Pinned() || req.Constraint == "" && len(req.Name) > 0 && (req.Name[0] == '.' || req.Name[0] == '/') {
				// Keep pinned entries and local artifact paths as-is.
				pinned += req.String() + "\n"
			} else {
				pinned += manifest.Pin(req.Name, "9.9.9").String() + "\n"
			}
		}
	}

	if err := os.WriteFile(output, []byte(pinned), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "fake resolver: %v\n", err)
		return 1
	}
	return 0
}
