// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
//   - Option / options (functional options with internal state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that fills defaults.

package matrix

import (
	"log/slog"

	"github.com/katalvlaran/lvgsl/native"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLibrary = "matrix: WithLibrary: library must be non-nil"
	panicNilLogger  = "matrix: WithLogger: logger must be non-nil"
)

// Option mutates constructor options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	lib    *native.Library // backend; defaults to native.Default()
	logger *slog.Logger    // leak reports; nil means slog.Default()
}

// WithLibrary allocates from lib instead of native.Default().
func WithLibrary(lib *native.Library) Option {
	if lib == nil {
		panic(panicNilLibrary)
	}

	return func(o *options) { o.lib = lib }
}

// WithLogger sets the logger that reports matrices leaked without Close.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.lib == nil {
		o.lib = native.Default()
	}

	return o
}
