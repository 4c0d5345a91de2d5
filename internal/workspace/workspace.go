// SPDX-License-Identifier: MIT

// Package workspace wraps the fixed-size native scratch areas that eigen,
// filter, poly and sf routines need (gsl_*_workspace). A Workspace is an
// owned handle plus the size it was allocated for; routines borrow it
// exclusively for the duration of one call.
package workspace

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/native"
)

// Workspace is an owned native workspace of a fixed size.
type Workspace struct {
	own  *handle.Owner
	lib  *native.Library
	size int
}

// Config describes how to allocate one workspace kind.
type Config struct {
	Op    string // caller name used in errors, e.g. "eigen.NewSymm"
	Kind  string // owner label, e.g. "eigen.symm"
	Alloc func(size int) native.Handle
	Free  func(native.Handle)
}

// New allocates a workspace of size elements from lib.
// A non-positive size fails with gslerr.ErrInvalid, a missing entry with
// gslerr.ErrUnimplemented and a null handle with gslerr.ErrNoMemory.
func New(lib *native.Library, logger *slog.Logger, size int, s Config) (*Workspace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%s(%d): size must be positive: %w", s.Op, size, gslerr.ErrInvalid)
	}
	if s.Alloc == nil || s.Free == nil {
		return nil, native.Missing(lib, s.Op)
	}
	hopts := []handle.Option{handle.WithKind(s.Kind)}
	if logger != nil {
		hopts = append(hopts, handle.WithLogger(logger))
	}
	own, err := handle.Wrap(s.Alloc(size), s.Free, hopts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", s.Op, size, err)
	}

	return &Workspace{own: own, lib: lib, size: size}, nil
}

// Size returns the size the workspace was allocated for.
func (w *Workspace) Size() int { return w.size }

// Owner exposes the ownership guard.
func (w *Workspace) Owner() *handle.Owner { return w.own }

// Library returns the backend that allocated w.
func (w *Workspace) Library() *native.Library { return w.lib }

// Close frees the workspace once no call holds it. Idempotent.
func (w *Workspace) Close() error { return w.own.Close() }
