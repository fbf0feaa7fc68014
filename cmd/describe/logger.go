// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/op/go-logging"
)

const logFormat = "%{time:2006/01/02 15:04:05} %{color}%{level:-8s} %{shortfunc}%{color:reset}: %{message}"

// newLogger returns the command's logger writing to w. An unknown
// level falls back to WARNING.
func newLogger(w io.Writer, level string) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)
	fmtBackend := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.WARNING
	}
	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	log := logging.MustGetLogger("describe")
	log.SetBackend(lvlBackend)
	return log
}
