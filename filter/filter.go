// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/handle"
	"github.com/katalvlaran/lvgsl/internal/workspace"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/vector"
)

// Vector is the sample vector type the filters accept.
type Vector = vector.Vector[float64]

// base carries what every filter workspace shares.
type base struct {
	ws *workspace.Workspace
}

// Window returns the window size K the workspace was allocated for.
func (b base) Window() int { return b.ws.Size() }

// Library returns the backend that allocated the workspace.
func (b base) Library() *native.Library { return b.ws.Library() }

// Close frees the workspace. Idempotent.
func (b base) Close() error { return b.ws.Close() }

func alloc(op, kind string, k int, opts []Option, pick func(*native.FilterABI) (func(int) native.Handle, func(native.Handle))) (base, error) {
	o := gatherOptions(opts)
	a, f := pick(&o.lib.Filter)
	ws, err := workspace.New(o.lib, o.logger, k, workspace.Config{Op: op, Kind: kind, Alloc: a, Free: f})
	if err != nil {
		return base{}, err
	}

	return base{ws: ws}, nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// check runs the library and length checks shared by every filter call:
// all operands from the workspace's library and as long as x.
func (b base) check(op string, x vector.Lengther, operands ...vector.Shaped) error {
	if err := vector.SameLibrary(b, operands...); err != nil {
		return wrap(op, err)
	}
	for _, v := range operands {
		if l, ok := v.(vector.Lengther); ok {
			if err := vector.ValidateSameLen(x, l); err != nil {
				return wrap(op, err)
			}
		}
	}

	return nil
}

// GaussianWorkspace is a gsl_filter_gaussian_workspace.
type GaussianWorkspace struct{ base }

// NewGaussian allocates a Gaussian filter of window size k.
func NewGaussian(k int, opts ...Option) (*GaussianWorkspace, error) {
	b, err := alloc("filter.NewGaussian", "filter.gaussian", k, opts,
		func(f *native.FilterABI) (func(int) native.Handle, func(native.Handle)) { return f.GaussianAlloc, f.GaussianFree })
	if err != nil {
		return nil, err
	}

	return &GaussianWorkspace{b}, nil
}

// Gaussian filters x into y with a Gaussian of width parameter alpha.
// order selects the derivative of the kernel (0 smooths).
func (w *GaussianWorkspace) Gaussian(end enums.FilterEnd, alpha float64, order int, x, y *Vector) error {
	const op = "filter.Gaussian"
	if err := w.check(op, x, x, y); err != nil {
		return err
	}
	fn := w.Library().Filter.Gaussian
	if fn == nil {
		return native.Missing(w.Library(), op)
	}
	var s handle.Scope
	hx, hy, hw := s.Shared(x.Owner()), s.Exclusive(y.Owner()), s.Exclusive(w.ws.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(end.Native(), alpha, order, hx, hy, hw))
}

// GaussianInPlace filters xy onto itself.
func (w *GaussianWorkspace) GaussianInPlace(end enums.FilterEnd, alpha float64, order int, xy *Vector) error {
	const op = "filter.GaussianInPlace"
	if err := w.check(op, xy, xy); err != nil {
		return err
	}
	fn := w.Library().Filter.Gaussian
	if fn == nil {
		return native.Missing(w.Library(), op)
	}
	var s handle.Scope
	h, hw := s.Exclusive(xy.Owner()), s.Exclusive(w.ws.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(end.Native(), alpha, order, h, h, hw))
}

// median runs the two median variants, which share a signature.
func (b base) median(op string, fn func(end int32, x, y, w native.Handle) native.Status, end enums.FilterEnd, x, y *Vector) error {
	if err := b.check(op, x, x, y); err != nil {
		return err
	}
	if fn == nil {
		return native.Missing(b.Library(), op)
	}
	var s handle.Scope
	hx, hy, hw := s.Shared(x.Owner()), s.Exclusive(y.Owner()), s.Exclusive(b.ws.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return wrap(op, err)
	}

	return gslerr.FromCode(fn(end.Native(), hx, hy, hw))
}

// MedianWorkspace is a gsl_filter_median_workspace.
type MedianWorkspace struct{ base }

// NewMedian allocates a standard median filter of window size k.
func NewMedian(k int, opts ...Option) (*MedianWorkspace, error) {
	b, err := alloc("filter.NewMedian", "filter.median", k, opts,
		func(f *native.FilterABI) (func(int) native.Handle, func(native.Handle)) { return f.MedianAlloc, f.MedianFree })
	if err != nil {
		return nil, err
	}

	return &MedianWorkspace{b}, nil
}

// Median stores the windowed median of x in y.
func (w *MedianWorkspace) Median(end enums.FilterEnd, x, y *Vector) error {
	return w.median("filter.Median", w.Library().Filter.Median, end, x, y)
}

// RMedianWorkspace is a gsl_filter_rmedian_workspace.
type RMedianWorkspace struct{ base }

// NewRMedian allocates a recursive median filter of window size k.
func NewRMedian(k int, opts ...Option) (*RMedianWorkspace, error) {
	b, err := alloc("filter.NewRMedian", "filter.rmedian", k, opts,
		func(f *native.FilterABI) (func(int) native.Handle, func(native.Handle)) { return f.RMedianAlloc, f.RMedianFree })
	if err != nil {
		return nil, err
	}

	return &RMedianWorkspace{b}, nil
}

// RMedian stores the recursive median of x in y.
func (w *RMedianWorkspace) RMedian(end enums.FilterEnd, x, y *Vector) error {
	return w.median("filter.RMedian", w.Library().Filter.RMedian, end, x, y)
}

// ImpulseWorkspace is a gsl_filter_impulse_workspace.
type ImpulseWorkspace struct{ base }

// NewImpulse allocates an impulse detection filter of window size k.
func NewImpulse(k int, opts ...Option) (*ImpulseWorkspace, error) {
	b, err := alloc("filter.NewImpulse", "filter.impulse", k, opts,
		func(f *native.FilterABI) (func(int) native.Handle, func(native.Handle)) { return f.ImpulseAlloc, f.ImpulseFree })
	if err != nil {
		return nil, err
	}

	return &ImpulseWorkspace{b}, nil
}

// ImpulseOutputs are the per-sample results of Impulse; every vector must
// be as long as the input.
type ImpulseOutputs struct {
	Y       *Vector               // filtered signal, outliers replaced by the window median
	Median  *Vector               // window medians
	Sigma   *Vector               // window scale estimates
	Outlier *vector.Vector[int32] // 1 where the sample is an outlier, else 0
}

// Impulse flags every sample farther than t scale estimates from its window
// median and returns the number of outliers found.
func (w *ImpulseWorkspace) Impulse(end enums.FilterEnd, scale enums.FilterScale, t float64, x *Vector, out ImpulseOutputs) (int, error) {
	const op = "filter.Impulse"
	if out.Y == nil || out.Median == nil || out.Sigma == nil || out.Outlier == nil {
		return 0, fmt.Errorf("%s: every output vector is required: %w", op, gslerr.ErrFault)
	}
	if err := w.check(op, x, x, out.Y, out.Median, out.Sigma, out.Outlier); err != nil {
		return 0, err
	}
	fn := w.Library().Filter.Impulse
	if fn == nil {
		return 0, native.Missing(w.Library(), op)
	}
	var s handle.Scope
	hx := s.Shared(x.Owner())
	hy := s.Exclusive(out.Y.Owner())
	hm := s.Exclusive(out.Median.Owner())
	hs := s.Exclusive(out.Sigma.Owner())
	hi := s.Exclusive(out.Outlier.Owner())
	hw := s.Exclusive(w.ws.Owner())
	defer s.Release()
	if err := s.Err(); err != nil {
		return 0, wrap(op, err)
	}
	var n int

	return gslerr.Check(fn(end.Native(), scale.Native(), t, hx, hy, hm, hs, &n, hi, hw), n)
}
