// SPDX-License-Identifier: MIT

package sf

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/internal/workspace"
	"github.com/katalvlaran/lvgsl/native"
)

// MathieuWorkspace is the scratch area of the array Mathieu routines
// (gsl_sf_mathieu_workspace), valid for orders up to Size and q up to QMax.
type MathieuWorkspace struct {
	sf   *SF
	ws   *workspace.Workspace
	qmax float64
}

// NewMathieu allocates a workspace for orders 0..n and |q| <= qmax.
func (s *SF) NewMathieu(n int, qmax float64) (*MathieuWorkspace, error) {
	m := s.lib.Mathieu
	var alloc func(int) native.Handle
	if m.Alloc != nil {
		alloc = func(size int) native.Handle { return m.Alloc(size, qmax) }
	}
	ws, err := workspace.New(s.lib, s.logger, n, workspace.Config{
		Op: "sf.NewMathieu", Kind: "sf.mathieu", Alloc: alloc, Free: m.Free,
	})
	if err != nil {
		return nil, err
	}

	return &MathieuWorkspace{sf: s, ws: ws, qmax: qmax}, nil
}

// Size returns the largest order the workspace serves.
func (w *MathieuWorkspace) Size() int { return w.ws.Size() }

// QMax returns the largest q the workspace serves.
func (w *MathieuWorkspace) QMax() float64 { return w.qmax }

// Close frees the workspace. Idempotent.
func (w *MathieuWorkspace) Close() error { return w.ws.Close() }

// A returns the characteristic value aₙ(q) of the even Mathieu function.
func (w *MathieuWorkspace) A(n int, q float64) (Result, error) {
	if err := w.within("sf.MathieuWorkspace.A", n, n); err != nil {
		return Result{}, err
	}

	return w.sf.MathieuA(n, q)
}

// B returns the characteristic value bₙ(q) of the odd Mathieu function.
func (w *MathieuWorkspace) B(n int, q float64) (Result, error) {
	if err := w.within("sf.MathieuWorkspace.B", n, n); err != nil {
		return Result{}, err
	}

	return w.sf.MathieuB(n, q)
}

// AArray stores aₙ(q) for n in [orderMin, orderMax] in result[0:orderMax-orderMin+1].
func (w *MathieuWorkspace) AArray(orderMin, orderMax int, q float64, result []float64) error {
	return w.array("sf.MathieuWorkspace.AArray", orderMin, orderMax, result, w.sf.lib.Mathieu.AArray != nil,
		func(lo, hi int32, h native.Handle) native.Status { return w.sf.lib.Mathieu.AArray(lo, hi, q, h, result) })
}

// BArray stores bₙ(q) for n in [orderMin, orderMax].
func (w *MathieuWorkspace) BArray(orderMin, orderMax int, q float64, result []float64) error {
	return w.array("sf.MathieuWorkspace.BArray", orderMin, orderMax, result, w.sf.lib.Mathieu.BArray != nil,
		func(lo, hi int32, h native.Handle) native.Status { return w.sf.lib.Mathieu.BArray(lo, hi, q, h, result) })
}

// CeArray stores ceₙ(q, x) for n in [nmin, nmax].
func (w *MathieuWorkspace) CeArray(nmin, nmax int, q, x float64, result []float64) error {
	return w.array("sf.MathieuWorkspace.CeArray", nmin, nmax, result, w.sf.lib.Mathieu.CeArray != nil,
		func(lo, hi int32, h native.Handle) native.Status { return w.sf.lib.Mathieu.CeArray(lo, hi, q, x, h, result) })
}

// SeArray stores seₙ(q, x) for n in [nmin, nmax].
func (w *MathieuWorkspace) SeArray(nmin, nmax int, q, x float64, result []float64) error {
	return w.array("sf.MathieuWorkspace.SeArray", nmin, nmax, result, w.sf.lib.Mathieu.SeArray != nil,
		func(lo, hi int32, h native.Handle) native.Status { return w.sf.lib.Mathieu.SeArray(lo, hi, q, x, h, result) })
}

// within rejects an order range the workspace was not sized for.
func (w *MathieuWorkspace) within(op string, lo, hi int) error {
	switch {
	case lo < 0 || hi < lo:
		return fmt.Errorf("%s: order range [%d, %d]: %w", op, lo, hi, gslerr.ErrInvalid)
	case hi > w.Size():
		return fmt.Errorf("%s: order %d exceeds workspace size %d: %w", op, hi, w.Size(), gslerr.ErrInvalid)
	}

	return nil
}

// array checks the range against the workspace and result, then borrows the
// workspace for one native call. The range is inclusive, so it needs
// hi-lo+1 slots.
func (w *MathieuWorkspace) array(op string, lo, hi int, result []float64, present bool,
	call func(lo, hi int32, h native.Handle) native.Status) error {
	if err := w.within(op, lo, hi); err != nil {
		return err
	}
	if need := hi - lo + 1; len(result) < need {
		return fmt.Errorf("%s: orders [%d, %d] need %d slots, result has %d: %w",
			op, lo, hi, need, len(result), gslerr.ErrBadLength)
	}
	if !present {
		return native.Missing(w.sf.lib, op)
	}
	v, err := w.ws.Owner().Exclusive()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer v.Release()

	return gslerr.FromCode(call(int32(lo), int32(hi), v.Handle()))
}

// MathieuA returns aₙ(q) without a workspace.
func (s *SF) MathieuA(n int, q float64) (Result, error) {
	const op = "sf.MathieuA"
	k, err := order(op, n)
	if err != nil {
		return Result{}, err
	}
	f := s.lib.Mathieu.AE

	return s.result(op, f != nil, func(r *native.SFResult) native.Status { return f(k, q, r) })
}

// MathieuB returns bₙ(q) without a workspace.
func (s *SF) MathieuB(n int, q float64) (Result, error) {
	const op = "sf.MathieuB"
	k, err := order(op, n)
	if err != nil {
		return Result{}, err
	}
	f := s.lib.Mathieu.BE

	return s.result(op, f != nil, func(r *native.SFResult) native.Status { return f(k, q, r) })
}

// MathieuCe returns the even angular Mathieu function ceₙ(q, x).
func (s *SF) MathieuCe(n int, q, x float64) (Result, error) {
	const op = "sf.MathieuCe"
	k, err := order(op, n)
	if err != nil {
		return Result{}, err
	}
	f := s.lib.Mathieu.CeE

	return s.result(op, f != nil, func(r *native.SFResult) native.Status { return f(k, q, x, r) })
}

// MathieuSe returns the odd angular Mathieu function seₙ(q, x).
func (s *SF) MathieuSe(n int, q, x float64) (Result, error) {
	const op = "sf.MathieuSe"
	k, err := order(op, n)
	if err != nil {
		return Result{}, err
	}
	f := s.lib.Mathieu.SeE

	return s.result(op, f != nil, func(r *native.SFResult) native.Status { return f(k, q, x, r) })
}
