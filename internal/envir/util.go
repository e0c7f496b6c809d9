// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

import (
	"os"
	"strconv"
)

func IsPinlockDebugEnabled() bool {
	enabled, _ := strconv.ParseBool(os.Getenv(PinlockDebug))
	return enabled
}

func IsCI() bool {
	ci, err := strconv.ParseBool(os.Getenv("CI"))
	return ci && err == nil
}

// GetValueOrDefault returns the value of the environment variable if it is
// set and non-empty, otherwise the given default.
func GetValueOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
