// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the printf seam the command line tool logs through.
package conlog

import (
	"log"
)

var (
	p       = log.Printf
	verbose bool
)

// SetPrintf replaces the output function, nil restores log.Printf.
func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = log.Printf
	}
	p = f
}

func SetVerbose(v bool) {
	verbose = v
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// Debugf only prints when verbose output is enabled.
func Debugf(format string, v ...interface{}) {
	if verbose {
		p(format, v...)
	}
}
