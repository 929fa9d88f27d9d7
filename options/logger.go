// SPDX-License-Identifier: MIT
//
// File: logger.go
// Role: Package diagnostics logger and its override hook.

package options

import (
	"os"

	"github.com/rs/zerolog"
)

// logger receives package diagnostics. It defaults to an info-level console
// writer on stderr so programming errors surface even when nobody configured
// logging.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Str("pkg", "options").
	Logger()

// SetLogger replaces the package logger. Call it once during program
// start-up; it is not synchronized with running list operations.
func SetLogger(l zerolog.Logger) {
	logger = l
}
