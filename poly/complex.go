// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/internal/workspace"
	"github.com/katalvlaran/lvgsl/native"
)

// ComplexWorkspace holds the companion matrix of gsl_poly_complex_solve for
// polynomials with a fixed number of coefficients.
type ComplexWorkspace struct {
	ws *workspace.Workspace
}

// NewComplexWorkspace allocates a solver for polynomials of n coefficients
// (degree n-1).
func (p *Poly) NewComplexWorkspace(n int) (*ComplexWorkspace, error) {
	ws, err := workspace.New(p.lib, p.logger, n, workspace.Config{
		Op: "poly.NewComplexWorkspace", Kind: "poly.complex",
		Alloc: p.lib.Poly.ComplexWorkspaceAlloc, Free: p.lib.Poly.ComplexWorkspaceFree,
	})
	if err != nil {
		return nil, err
	}

	return &ComplexWorkspace{ws: ws}, nil
}

// Size returns the coefficient count the workspace serves.
func (w *ComplexWorkspace) Size() int { return w.ws.Size() }

// Close frees the workspace. Idempotent.
func (w *ComplexWorkspace) Close() error { return w.ws.Close() }

// Solve returns the n-1 complex roots of the polynomial with coefficients a.
// len(a) must equal Size and the leading coefficient must be non-zero.
func (w *ComplexWorkspace) Solve(a []float64) ([]complex128, error) {
	const op = "poly.ComplexWorkspace.Solve"
	n := w.Size()
	if len(a) != n {
		return nil, fmt.Errorf("%s: %d coefficients, workspace holds %d: %w", op, len(a), n, gslerr.ErrBadLength)
	}
	if n < 2 {
		return nil, fmt.Errorf("%s: a polynomial of degree 0 has no roots: %w", op, gslerr.ErrInvalid)
	}
	lib := w.ws.Library()
	if lib.Poly.ComplexSolve == nil {
		return nil, native.Missing(lib, op)
	}
	v, err := w.ws.Owner().Exclusive()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer v.Release()

	// packed as re₀, im₀, re₁, im₁, …
	z := make([]float64, 2*(n-1))
	if err := gslerr.FromCode(lib.Poly.ComplexSolve(a, v.Handle(), z)); err != nil {
		return nil, err
	}
	out := make([]complex128, n-1)
	for i := range out {
		out[i] = complex(z[2*i], z[2*i+1])
	}

	return out, nil
}
