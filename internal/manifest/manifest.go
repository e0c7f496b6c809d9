// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package manifest models pip-style requirement manifests: ordered lists of
// requirement specifiers, one per line. The resolver's pinned output is a
// manifest where every entry carries an exact == version.
package manifest

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Requirement is a single manifest entry. Name holds the package name, or
// the whole line verbatim for entries that aren't name-based specifiers
// (local file paths, URLs). Constraint is the version specifier including
// its operator, e.g. "==1.1.0" or ">=2.0", and is empty for bare names.
type Requirement struct {
	Name       string
	Constraint string
}

func (r Requirement) String() string {
	return r.Name + r.Constraint
}

// Pinned reports whether the requirement is resolved to one exact version.
func (r Requirement) Pinned() bool {
	return strings.HasPrefix(r.Constraint, "==")
}

// Version returns the exact version of a pinned requirement, or "" if the
// requirement is not pinned.
func (r Requirement) Version() string {
	if !r.Pinned() {
		return ""
	}
	return strings.TrimPrefix(r.Constraint, "==")
}

// Pin builds a requirement pinned to exactly the given version.
func Pin(name, version string) Requirement {
	return Requirement{Name: name, Constraint: "==" + version}
}

// Path builds a requirement pointing at a local artifact such as a built
// wheel. The resolver treats the path itself as the specifier.
func Path(p string) Requirement {
	return Requirement{Name: p}
}

var constraintOps = []string{"==", ">=", "<=", "~=", "!=", ">", "<"}

// Parse parses one manifest line. The boolean result is false for blank
// lines and comments.
func Parse(line string) (Requirement, bool) {
	// pip-compile annotates pinned entries with "# via ..." trailers.
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Requirement{}, false
	}

	for _, op := range constraintOps {
		if i := strings.Index(line, op); i > 0 {
			return Requirement{
				Name:       strings.TrimSpace(line[:i]),
				Constraint: op + strings.TrimSpace(line[i+len(op):]),
			}, true
		}
	}
	return Requirement{Name: line}, true
}

// ReadFile reads an ordered manifest from path, skipping blank lines and
// comments.
func ReadFile(path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return lo.FilterMap(
		strings.Split(string(data), "\n"),
		func(line string, _ int) (Requirement, bool) {
			return Parse(line)
		},
	), nil
}
