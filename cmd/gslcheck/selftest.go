// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgsl/blas"
	"github.com/katalvlaran/lvgsl/eigen"
	"github.com/katalvlaran/lvgsl/enums"
	"github.com/katalvlaran/lvgsl/errhandler"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/matrix"
	"github.com/katalvlaran/lvgsl/native"
	"github.com/katalvlaran/lvgsl/native/nativetest"
	"github.com/katalvlaran/lvgsl/poly"
	"github.com/katalvlaran/lvgsl/sf"
	"github.com/katalvlaran/lvgsl/vector"
)

var profilePath string

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run numeric and error-path checks against the backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := loadProfile(profilePath)
		if err != nil {
			return err
		}
		rep := runSelftest(p, slog.Default())
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d passed, %d failed\n", rep.Backend, rep.Passed, len(rep.Failed))
		if len(rep.Failed) > 0 {
			return fmt.Errorf("selftest failed: %v", rep.Failed)
		}

		return nil
	},
}

func init() {
	selftestCmd.Flags().StringVar(&profilePath, "profile", "", "yaml profile (backend, tolerance, checks)")
}

// env is what a check runs against.
type env struct {
	lib *native.Library
	tol float64
	log *slog.Logger
}

type check struct {
	name string
	run  func(env) error
}

var checks = []check{
	{"dot", checkDot},
	{"gemm", checkGemm},
	{"shape", checkShape},
	{"eigen", checkEigen},
	{"poly", checkPoly},
	{"sf", checkSF},
	{"handler", checkHandler},
}

func checkByName(name string) (check, bool) {
	for _, c := range checks {
		if c.name == name {
			return c, true
		}
	}

	return check{}, false
}

// report summarizes one run.
type report struct {
	Backend string
	Passed  int
	Failed  []string
}

func runSelftest(p Profile, logger *slog.Logger) report {
	lib := native.Default()
	if p.Backend == backendFake {
		lib = nativetest.New().Library()
	}
	run := checks
	if len(p.Checks) > 0 {
		run = nil
		for _, name := range p.Checks {
			c, _ := checkByName(name)
			run = append(run, c)
		}
	}

	rep := report{Backend: lib.Name}
	e := env{lib: lib, tol: p.Tolerance, log: logger}
	for _, c := range run {
		start := time.Now()
		err := c.run(e)
		if err != nil {
			logger.Error("check failed", "check", c.name, "backend", lib.Name, "err", err)
			rep.Failed = append(rep.Failed, c.name)
			continue
		}
		logger.Debug("check passed", "check", c.name, "took", time.Since(start))
		rep.Passed++
	}

	return rep
}

func near(tol, want, got float64) error {
	if math.Abs(want-got) > tol*math.Max(1, math.Abs(want)) {
		return fmt.Errorf("got %g, want %g", got, want)
	}

	return nil
}

func checkDot(e env) error {
	x, err := vector.FromSlice([]float64{1, 2, 3}, vector.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer x.Close()
	y, err := vector.FromSlice([]float64{4, 5, 6}, vector.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer y.Close()
	got, err := blas.Dot(x, y)
	if err != nil {
		return err
	}

	return near(e.tol, 32, got)
}

func checkGemm(e env) error {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer a.Close()
	id, err := matrix.NewIdentity[float64](2, matrix.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer id.Close()
	c, err := matrix.NewZeroed[float64](2, 2, matrix.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer c.Close()

	// Aᵀ·I
	if err := blas.Gemm(enums.Trans, enums.NoTrans, 1, a, id, 0, c); err != nil {
		return err
	}
	rows, err := c.ToRows()
	if err != nil {
		return err
	}
	want := [][]float64{{1, 3}, {2, 4}}
	for i := range want {
		for j := range want[i] {
			if err := near(e.tol, want[i][j], rows[i][j]); err != nil {
				return fmt.Errorf("c[%d][%d]: %w", i, j, err)
			}
		}
	}

	return nil
}

// checkShape confirms mismatched operands are rejected before the native call.
func checkShape(e env) error {
	x, err := vector.NewZeroed[float64](2, vector.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer x.Close()
	y, err := vector.NewZeroed[float64](3, vector.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer y.Close()
	if _, err := blas.Dot(x, y); !errors.Is(err, gslerr.ErrBadLength) {
		return fmt.Errorf("dot of lengths 2 and 3: got %v, want %v", err, gslerr.ErrBadLength)
	}

	return nil
}

func checkEigen(e env) error {
	ws, err := eigen.NewSymmv(2, eigen.WithLibrary(e.lib), eigen.WithLogger(e.log))
	if err != nil {
		return err
	}
	defer ws.Close()
	a, err := matrix.FromRows([][]float64{{2, 1}, {1, 2}}, matrix.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer a.Close()
	eval, err := vector.NewZeroed[float64](2, vector.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer eval.Close()
	evec, err := matrix.NewZeroed[float64](2, 2, matrix.WithLibrary(e.lib))
	if err != nil {
		return err
	}
	defer evec.Close()

	if err := ws.Symmv(a, eval, evec); err != nil {
		return err
	}
	if err := eigen.SymmvSort(eval, evec, enums.SortValAsc); err != nil {
		return err
	}
	vals, err := eval.ToSlice()
	if err != nil {
		return err
	}

	return errors.Join(near(e.tol, 1, vals[0]), near(e.tol, 3, vals[1]))
}

func checkPoly(e env) error {
	roots, err := poly.New(poly.WithLibrary(e.lib)).SolveQuadratic(1, -3, 2)
	if err != nil {
		return err
	}
	if len(roots) != 2 {
		return fmt.Errorf("got %d roots of x²-3x+2, want 2", len(roots))
	}

	return errors.Join(near(e.tol, 1, roots[0]), near(e.tol, 2, roots[1]))
}

func checkSF(e env) error {
	r, err := sf.New(sf.WithLibrary(e.lib)).FactE(5)
	if err != nil {
		return err
	}

	return near(e.tol, 120, r.Val)
}

// checkHandler confirms a native domain error arrives both as a returned
// error and through the installed handler.
func checkHandler(e env) error {
	reg := errhandler.NewRegistry(&e.lib.ErrorHook)
	defer reg.Off()
	var rec errhandler.Recorder
	m := errhandler.NewMetrics(nil)
	reg.Set(errhandler.Chain(rec.Handler(), m.Handler(), errhandler.Logger(e.log)))

	_, err := sf.New(sf.WithLibrary(e.lib)).GammaE(-1)
	if !errors.Is(err, gslerr.ErrDomain) {
		return fmt.Errorf("gamma(-1): got %v, want %v", err, gslerr.ErrDomain)
	}
	if len(rec.Events()) == 0 {
		return errors.New("gamma(-1): handler saw no event")
	}

	return nil
}
