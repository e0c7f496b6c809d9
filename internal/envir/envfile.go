// Copyright 2024 Jetify Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

import (
	"os"

	"github.com/hashicorp/go-envparse"
	"github.com/pkg/errors"
)

// LoadFile parses a dotenv-style file and returns its key/value pairs.
// Values in the file do not override variables already present in the
// process environment; callers merge with that precedence in mind.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	env, err := envparse.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse env file %s", path)
	}
	return env, nil
}
