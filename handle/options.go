// SPDX-License-Identifier: MIT

package handle

import "log/slog"

// DefaultKind labels resources wrapped without WithKind.
const DefaultKind = "resource"

// Option configures Wrap.
type Option func(*options)

type options struct {
	kind   string
	logger *slog.Logger
}

// WithKind labels the resource ("vector", "matrix", "eigen.symm", ...) in
// errors and log records. An empty kind is ignored.
func WithKind(kind string) Option {
	return func(o *options) {
		if kind != "" {
			o.kind = kind
		}
	}
}

// WithLogger sets the logger used by the leak finalizer. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{kind: DefaultKind}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
