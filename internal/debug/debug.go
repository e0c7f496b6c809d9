// Copyright 2023 Jetpack Technologies Inc and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package debug

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/pinlock/pinlock/internal/envir"
)

var enabled bool

func init() {
	enabled = envir.IsPinlockDebugEnabled()
}

func IsEnabled() bool { return enabled }

func Enable() {
	enabled = true
	log.SetPrefix("[DEBUG] ")
	log.SetFlags(log.Llongfile | log.Ldate | log.Ltime)
	_ = log.Output(2, "Debug mode enabled.")
}

func Log(format string, v ...any) {
	if !enabled {
		return
	}
	_ = log.Output(2, fmt.Sprintf(format, v...))
}

func Recover() {
	r := recover()
	if r == nil {
		return
	}

	if enabled {
		log.Println("Allowing panic because debug mode is enabled.")
		panic(r)
	}
	fmt.Println("Error:", r)
}

func EarliestStackTrace(err error) error {
	type stackTracer interface{ StackTrace() errors.StackTrace }

	var stErr error
	for err != nil {
		//nolint:errorlint
		if _, ok := err.(stackTracer); ok {
			stErr = err
		}
		err = errors.Unwrap(err)
	}

	return stErr
}
