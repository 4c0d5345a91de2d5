// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/internal/workspace"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/vector"
)

// Matrix and Vector are the double-precision views the solvers accept.
type (
	Matrix = matrix.Matrix[float64]
	Vector = vector.Vector[float64]
)

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SymmWorkspace computes eigenvalues only (gsl_eigen_symm_workspace).
type SymmWorkspace struct {
	ws *workspace.Workspace
}

// NewSymm allocates a workspace for n×n matrices.
func NewSymm(n int, opts ...Option) (*SymmWorkspace, error) {
	o := gatherOptions(opts)
	ws, err := workspace.New(o.lib, o.logger, n, workspace.Config{
		Op: "eigen.NewSymm", Kind: "eigen.symm",
		Alloc: o.lib.Eigen.SymmAlloc, Free: o.lib.Eigen.SymmFree,
	})
	if err != nil {
		return nil, err
	}

	return &SymmWorkspace{ws: ws}, nil
}

// Size returns the matrix order the workspace serves.
func (w *SymmWorkspace) Size() int { return w.ws.Size() }

// Library returns the backend that allocated w.
func (w *SymmWorkspace) Library() *native.Library { return w.ws.Library() }

// Close frees the workspace. Idempotent.
func (w *SymmWorkspace) Close() error { return w.ws.Close() }

// shape checks A is n×n and every vector has n elements.
func shape(n int, a *Matrix, vs ...*Vector) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}
	if err := matrix.ValidateVecLen("order", a.Rows(), n); err != nil {
		return err
	}
	for _, v := range vs {
		if err := vector.ValidateLen(v, n); err != nil {
			return err
		}
	}

	return nil
}

// Symm stores the eigenvalues of the symmetric matrix a in eval, unordered.
// Only the lower triangle of a is read; a is destroyed.
func (w *SymmWorkspace) Symm(a *Matrix, eval *Vector) error {
	const op = "eigen.Symm"
	lib := w.Library()
	if err := vector.SameLibrary(w, a, eval); err != nil {
		return wrap(op, err)
	}
	if err := shape(w.Size(), a, eval); err != nil {
		return wrap(op, err)
	}
	if lib.Eigen.Symm == nil {
		return native.Missing(lib, op)
	}
	var s handle.Scope
	ha, he, hw := s.Exclusive(a.Owner()), s.Exclusive(eval.Owner()), s.Exclusive(w.ws.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(lib.Eigen.Symm(ha, he, hw))
}

// SymmvWorkspace computes eigenvalues and eigenvectors (gsl_eigen_symmv_workspace).
type SymmvWorkspace struct {
	ws *workspace.Workspace
}

// NewSymmv allocates a workspace for n×n matrices.
func NewSymmv(n int, opts ...Option) (*SymmvWorkspace, error) {
	o := gatherOptions(opts)
	ws, err := workspace.New(o.lib, o.logger, n, workspace.Config{
		Op: "eigen.NewSymmv", Kind: "eigen.symmv",
		Alloc: o.lib.Eigen.SymmvAlloc, Free: o.lib.Eigen.SymmvFree,
	})
	if err != nil {
		return nil, err
	}

	return &SymmvWorkspace{ws: ws}, nil
}

// Size returns the matrix order the workspace serves.
func (w *SymmvWorkspace) Size() int { return w.ws.Size() }

// Library returns the backend that allocated w.
func (w *SymmvWorkspace) Library() *native.Library { return w.ws.Library() }

// Close frees the workspace. Idempotent.
func (w *SymmvWorkspace) Close() error { return w.ws.Close() }

// Symmv stores the eigenvalues of a in eval and the matching orthonormal
// eigenvectors in the columns of evec, unordered. a is destroyed.
func (w *SymmvWorkspace) Symmv(a *Matrix, eval *Vector, evec *Matrix) error {
	const op = "eigen.Symmv"
	lib := w.Library()
	if err := vector.SameLibrary(w, a, eval, evec); err != nil {
		return wrap(op, err)
	}
	if err := shape(w.Size(), a, eval); err != nil {
		return wrap(op, err)
	}
	if err := matrix.ValidateShape(evec, w.Size(), w.Size()); err != nil {
		return wrap(op, err)
	}
	if lib.Eigen.Symmv == nil {
		return native.Missing(lib, op)
	}
	var s handle.Scope
	ha := s.Exclusive(a.Owner())
	he := s.Exclusive(eval.Owner())
	hv := s.Exclusive(evec.Owner())
	hw := s.Exclusive(w.ws.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(lib.Eigen.Symmv(ha, he, hv, hw))
}

// sortPairs runs one of the in-place eigenpair sorts.
func sortPairs(op string, pick func(*native.EigenABI) func(eval, evec native.Handle, sort int32) native.Status,
	eval *Vector, evec *Matrix, order enums.EigenSort) error {
	lib := eval.Library()
	if err := vector.SameLibrary(eval, evec); err != nil {
		return wrap(op, err)
	}
	if err := matrix.ValidateSquare(evec); err != nil {
		return wrap(op, err)
	}
	if err := vector.ValidateLen(eval, evec.Rows()); err != nil {
		return wrap(op, err)
	}
	fn := pick(&lib.Eigen)
	if fn == nil {
		return native.Missing(lib, op)
	}
	var s handle.Scope
	he, hv := s.Exclusive(eval.Owner()), s.Exclusive(evec.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(he, hv, order.Native()))
}

// SymmvSort reorders eval and the columns of evec together by order.
func SymmvSort(eval *Vector, evec *Matrix, order enums.EigenSort) error {
	return sortPairs("eigen.SymmvSort", func(e *native.EigenABI) func(native.Handle, native.Handle, int32) native.Status {
		return e.SymmvSort
	}, eval, evec, order)
}

// GensymmvSort is SymmvSort for the results of the generalized symmetric
// eigensolver.
func GensymmvSort(eval *Vector, evec *Matrix, order enums.EigenSort) error {
	return sortPairs("eigen.GensymmvSort", func(e *native.EigenABI) func(native.Handle, native.Handle, int32) native.Status {
		return e.GensymmvSort
	}, eval, evec, order)
}
