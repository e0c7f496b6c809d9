// Copyright 2024 Jetify Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package envir

const (
	// PyarrowVersion pins the pyarrow entry added to the scratch
	// requirements file (e.g. "4.0.1").
	PyarrowVersion = "PYARROW_VERSION"
	// PandasVersion selects the pandas build-from-source path. Any
	// non-empty value triggers the build; the sdist release that gets
	// fetched is fixed and does not depend on this value.
	PandasVersion = "PANDAS_VERSION"

	PinlockDebug    = "PINLOCK_DEBUG"
	PinlockResolver = "PINLOCK_RESOLVER"
)

// system
const (
	Home = "HOME"
	Path = "PATH"
)
