// SPDX-License-Identifier: MIT

package nativetest

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// wireDomain installs Go renditions of the routines whose results tests can
// check by hand. Entries left nil (Covar, the L-curve helpers, SolveCubic,
// DDTaylor, ComplexSolve, Airy, Clausen, filters, Mathieu evaluators) are
// stubbed per test.
func wireDomain(f *Fake) {
	l := f.lib
	l.Eigen.Symm = func(a, eval, w native.Handle) native.Status {
		if st := f.record("eigen.Symm"); st != 0 {
			return st
		}
		vals, _ := jacobi(f.get(a))
		copy(f.get(eval).data, vals)
		return 0
	}
	l.Eigen.Symmv = func(a, eval, evec, w native.Handle) native.Status {
		if st := f.record("eigen.Symmv"); st != 0 {
			return st
		}
		vals, vecs := jacobi(f.get(a))
		copy(f.get(eval).data, vals)
		copy(f.get(evec).data, vecs)
		return 0
	}
	sortPairs := func(op string) func(eval, evec native.Handle, order int32) native.Status {
		return func(eval, evec native.Handle, order int32) native.Status {
			if st := f.record(op); st != 0 {
				return st
			}
			if order < 0 || order > 3 {
				return f.Raise(op+": unrecognized sort type", codeInvalid)
			}
			sortEigen(f.get(eval), f.get(evec), order)
			return 0
		}
	}
	l.Eigen.SymmvSort = sortPairs("eigen.SymmvSort")
	l.Eigen.GensymmvSort = sortPairs("eigen.GensymmvSort")

	testDelta := func(op string) func(dx, x native.Handle, epsabs, epsrel float64) native.Status {
		return func(dx, x native.Handle, epsabs, epsrel float64) native.Status {
			if st := f.record(op); st != 0 {
				return st
			}
			if epsrel < 0 {
				return f.Raise("relative tolerance is negative", codeBadTolerance)
			}
			d, xs := f.get(dx).data, f.get(x).data
			for i := range d {
				if math.Abs(d[i]) >= epsabs+epsrel*math.Abs(xs[i]) {
					return codeContinue
				}
			}
			return 0
		}
	}
	l.Multiroot.TestDelta = testDelta("multiroot.TestDelta")
	l.Multiroot.TestResidual = func(fh native.Handle, epsabs float64) native.Status {
		if st := f.record("multiroot.TestResidual"); st != 0 {
			return st
		}
		if epsabs < 0 {
			return f.Raise("absolute tolerance is negative", codeBadTolerance)
		}
		s := 0.0
		for _, v := range f.get(fh).data {
			s += math.Abs(v)
		}
		if s < epsabs {
			return 0
		}
		return codeContinue
	}
	l.Multifit.TestDelta = testDelta("multifit.TestDelta")
	l.Multifit.Gradient = func(j, fh, g native.Handle) native.Status {
		if st := f.record("multifit.Gradient"); st != 0 {
			return st
		}
		J, fs, gs := f.get(j), f.get(fh), f.get(g)
		for c := 0; c < J.cols; c++ {
			s := 0.0
			for r := 0; r < J.rows; r++ {
				s += J.at(r, c) * fs.data[r]
			}
			gs.data[c] = s
		}
		return 0
	}

	wirePoly(f)
	wireSF(f)
}

// jacobi diagonalizes the symmetric matrix in a with cyclic Jacobi sweeps.
// It returns the eigenvalues and the row-major matrix whose columns are the
// eigenvectors. a is left holding the rotated matrix, as GSL leaves it
// destroyed.
func jacobi(a *block) ([]float64, []float64) {
	n := a.rows
	v := make([]float64, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}
	for sweep := 0; sweep < 64; sweep++ {
		off := 0.0
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				off += a.at(p, q) * a.at(p, q)
			}
		}
		if off < 1e-30 {
			break
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				apq := a.at(p, q)
				if apq == 0 {
					continue
				}
				theta := (a.at(q, q) - a.at(p, p)) / (2 * apq)
				t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta < 0 {
					t = -t
				}
				c := 1 / math.Sqrt(t*t+1)
				s := t * c
				for k := 0; k < n; k++ {
					akp, akq := a.at(k, p), a.at(k, q)
					a.set(k, p, c*akp-s*akq)
					a.set(k, q, s*akp+c*akq)
				}
				for k := 0; k < n; k++ {
					apk, aqk := a.at(p, k), a.at(q, k)
					a.set(p, k, c*apk-s*aqk)
					a.set(q, k, s*apk+c*aqk)
				}
				for k := 0; k < n; k++ {
					vkp, vkq := v[k*n+p], v[k*n+q]
					v[k*n+p] = c*vkp - s*vkq
					v[k*n+q] = s*vkp + c*vkq
				}
			}
		}
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = a.at(i, i)
	}

	return vals, v
}

// sortEigen reorders eval and the columns of evec by gsl_eigen_sort_t order.
func sortEigen(eval, evec *block, order int32) {
	n := eval.rows
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	key := func(i int) float64 {
		if order >= 2 {
			return math.Abs(eval.data[i])
		}
		return eval.data[i]
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if order%2 == 1 {
			return key(idx[a]) > key(idx[b])
		}
		return key(idx[a]) < key(idx[b])
	})
	vals := make([]float64, n)
	vecs := make([]float64, len(evec.data))
	for dst, src := range idx {
		vals[dst] = eval.data[src]
		for r := 0; r < evec.rows; r++ {
			vecs[r*evec.cols+dst] = evec.at(r, src)
		}
	}
	copy(eval.data, vals)
	copy(evec.data, vecs)
}

func wirePoly(f *Fake) {
	horner := func(c []float64, x float64) float64 {
		y := 0.0
		for i := len(c) - 1; i >= 0; i-- {
			y = y*x + c[i]
		}
		return y
	}
	p := &f.lib.Poly
	p.Eval = func(c []float64, x float64) float64 {
		f.record("poly.Eval")
		return horner(c, x)
	}
	p.EvalDerivs = func(c []float64, x float64, res []float64) native.Status {
		if st := f.record("poly.EvalDerivs"); st != 0 {
			return st
		}
		d := append([]float64(nil), c...)
		for k := range res {
			res[k] = horner(d, x)
			if len(d) > 0 {
				for i := 1; i < len(d); i++ {
					d[i-1] = float64(i) * d[i]
				}
				d = d[:len(d)-1]
			}
		}
		return 0
	}
	p.SolveQuadratic = func(a, b, c float64, x0, x1 *float64) int {
		f.record("poly.SolveQuadratic")
		if a == 0 {
			if b == 0 {
				return 0
			}
			*x0 = -c / b
			return 1
		}
		disc := b*b - 4*a*c
		switch {
		case disc > 0:
			q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
			r0, r1 := q/a, c/q
			if r0 > r1 {
				r0, r1 = r1, r0
			}
			*x0, *x1 = r0, r1
			return 2
		case disc == 0:
			*x0 = -0.5 * b / a
			*x1 = *x0
			return 2
		}
		return 0
	}
	p.DDInit = func(dd, xa, ya []float64) native.Status {
		if st := f.record("poly.DDInit"); st != 0 {
			return st
		}
		n := len(dd)
		copy(dd, ya)
		for j := 1; j < n; j++ {
			for i := n - 1; i >= j; i-- {
				dd[i] = (dd[i] - dd[i-1]) / (xa[i] - xa[i-j])
			}
		}
		return 0
	}
	p.DDEval = func(dd, xa []float64, x float64) float64 {
		f.record("poly.DDEval")
		n := len(dd)
		y := dd[n-1]
		for i := n - 2; i >= 0; i-- {
			y = dd[i] + (x-xa[i])*y
		}
		return y
	}
}

func wireSF(f *Fake) {
	s := &f.lib.SF
	// plain forms record the call; the error forms also raise domain errors
	// through the hook the way gsl_sf_*_e does.
	result := func(op string, v float64, r *native.SFResult) native.Status {
		if st := f.record(op); st != 0 {
			return st
		}
		switch {
		case math.IsNaN(v):
			*r = native.SFResult{Val: math.NaN(), Err: math.NaN()}
			return f.Raise(op+": domain error", codeDomain)
		case math.IsInf(v, 0):
			*r = native.SFResult{Val: v, Err: math.Inf(1)}
			return f.Raise(op+": overflow", codeOverflow)
		}
		*r = native.SFResult{Val: v, Err: 2 * epsilon * math.Abs(v)}
		return 0
	}
	plain := func(op string, v float64) float64 {
		f.record(op)
		return v
	}

	s.Gamma = func(x float64) float64 { return plain("sf.Gamma", gamma(x)) }
	s.GammaE = func(x float64, r *native.SFResult) native.Status { return result("sf.GammaE", gamma(x), r) }
	s.LnGamma = func(x float64) float64 { return plain("sf.LnGamma", lnGamma(x)) }
	s.LnGammaE = func(x float64, r *native.SFResult) native.Status {
		return result("sf.LnGammaE", lnGamma(x), r)
	}
	s.LnGammaSgnE = func(x float64, r *native.SFResult, sgn *float64) native.Status {
		lg, sign := math.Lgamma(x)
		*sgn = float64(sign)
		if x <= 0 && x == math.Floor(x) {
			*sgn = 0
			lg = math.NaN()
		}
		return result("sf.LnGammaSgnE", lg, r)
	}
	s.Beta = func(a, b float64) float64 { return plain("sf.Beta", beta(a, b)) }
	s.BetaE = func(a, b float64, r *native.SFResult) native.Status { return result("sf.BetaE", beta(a, b), r) }
	s.LnBeta = func(a, b float64) float64 { return plain("sf.LnBeta", math.Log(beta(a, b))) }
	s.LnBetaE = func(a, b float64, r *native.SFResult) native.Status {
		return result("sf.LnBetaE", math.Log(beta(a, b)), r)
	}
	s.Fact = func(n uint32) float64 { return plain("sf.Fact", fact(n)) }
	s.FactE = func(n uint32, r *native.SFResult) native.Status { return result("sf.FactE", fact(n), r) }
	s.Choose = func(n, m uint32) float64 { return plain("sf.Choose", choose(n, m)) }
	s.ChooseE = func(n, m uint32, r *native.SFResult) native.Status {
		return result("sf.ChooseE", choose(n, m), r)
	}
	s.PowInt = func(x float64, n int32) float64 { return plain("sf.PowInt", math.Pow(x, float64(n))) }
	s.PowIntE = func(x float64, n int32, r *native.SFResult) native.Status {
		return result("sf.PowIntE", math.Pow(x, float64(n)), r)
	}
	s.BesselJ0 = func(x float64) float64 { return plain("sf.BesselJ0", math.J0(x)) }
	s.BesselJ0E = func(x float64, r *native.SFResult) native.Status { return result("sf.BesselJ0E", math.J0(x), r) }
	s.BesselJn = func(n int32, x float64) float64 { return plain("sf.BesselJn", math.Jn(int(n), x)) }
	s.BesselJnE = func(n int32, x float64, r *native.SFResult) native.Status {
		return result("sf.BesselJnE", math.Jn(int(n), x), r)
	}
}

const epsilon = 2.220446049250313e-16

var (
	codeContinue     = gslerr.ErrContinue.Code()
	codeDomain       = gslerr.ErrDomain.Code()
	codeOverflow     = gslerr.ErrOverFlow.Code()
	codeBadTolerance = gslerr.ErrBadTolerance.Code()
)

// gamma is Γ(x) with NaN at the poles, where GSL reports a domain error.
func gamma(x float64) float64 {
	if x <= 0 && x == math.Floor(x) {
		return math.NaN()
	}

	return math.Gamma(x)
}

func lnGamma(x float64) float64 {
	if x <= 0 && x == math.Floor(x) {
		return math.NaN()
	}
	lg, _ := math.Lgamma(x)

	return lg
}

func beta(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return math.NaN()
	}
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)

	return math.Exp(la + lb - lab)
}

func fact(n uint32) float64 {
	if n > 170 {
		return math.Inf(1)
	}
	r := 1.0
	for i := uint32(2); i <= n; i++ {
		r *= float64(i)
	}

	return r
}

func choose(n, m uint32) float64 {
	if m > n {
		return math.NaN()
	}
	if m > n-m {
		m = n - m
	}
	r := 1.0
	for i := uint32(1); i <= m; i++ {
		r = r * float64(n-m+i) / float64(i)
	}

	return math.Round(r)
}
