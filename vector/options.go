// SPDX-License-Identifier: MIT

package vector

import (
	"log/slog"

	"github.com/katalvlaran/lvgsl/native"
)

const (
	panicNilLibrary = "vector: WithLibrary: library must be non-nil"
	panicNilLogger  = "vector: WithLogger: logger must be non-nil"
)

// Option configures vector constructors.
type Option func(*options)

type options struct {
	lib    *native.Library
	logger *slog.Logger
}

// WithLibrary allocates from lib instead of native.Default().
// Panics on nil (programmer error).
func WithLibrary(lib *native.Library) Option {
	if lib == nil {
		panic(panicNilLibrary)
	}

	return func(o *options) { o.lib = lib }
}

// WithLogger sets the logger that reports leaked vectors.
// Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.lib == nil {
		o.lib = native.Default()
	}

	return o
}
