// SPDX-License-Identifier: MIT
package gslerr_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/stretchr/testify/require"
)

// TestNamedCount pins the size of the taxonomy to the gsl_errno.h table.
func TestNamedCount(t *testing.T) {
	require.Len(t, gslerr.Named(), 34) // 34 named failures + success
}

// TestRoundTripNamed checks FromCode(ToCode(e)) == e for every named kind.
func TestRoundTripNamed(t *testing.T) {
	for _, e := range gslerr.Named() {
		t.Run(e.Name(), func(t *testing.T) {
			code := gslerr.ToCode(e)
			require.Equal(t, e.Code(), code)

			back := gslerr.FromCode(code)
			require.Error(t, back)
			require.ErrorIs(t, back, e)
			require.Equal(t, code, gslerr.ToCode(back))
			require.True(t, e.Known())
		})
	}
}

// TestSuccess covers the success sentinel in both directions.
func TestSuccess(t *testing.T) {
	require.NoError(t, gslerr.FromCode(0))
	require.Equal(t, gslerr.Success, gslerr.ToCode(nil))
}

// TestUnknownCodes ensures unrecognized codes never panic and keep their value.
func TestUnknownCodes(t *testing.T) {
	codes := []int32{33, 77, -3, -1000, 1 << 20, math.MaxInt32, math.MinInt32}
	for _, c := range codes {
		err := gslerr.FromCode(c)
		require.Error(t, err)

		e, ok := gslerr.As(err)
		require.True(t, ok)
		require.False(t, e.Known())
		require.Equal(t, c, e.Code())
		require.Equal(t, gslerr.Unknown(c), e)
		require.Equal(t, c, gslerr.ToCode(err))
		require.Contains(t, err.Error(), fmt.Sprintf("code %d", c))
		require.Equal(t, fmt.Sprintf("Unknown(%d)", c), e.Name())
	}
}

// TestFromCodeNeverPanics sweeps a wide band of codes around the named range.
func TestFromCodeNeverPanics(t *testing.T) {
	for c := int32(-4096); c <= 4096; c++ {
		require.NotPanics(t, func() { _ = gslerr.FromCode(c) })
		require.Equal(t, c, gslerr.ToCode(gslerr.FromCode(c)))
	}
}

// TestMaxIterationScenario feeds "exceeded max number of iterations" (11) through
// the taxonomy and back.
func TestMaxIterationScenario(t *testing.T) {
	err := gslerr.FromCode(11)
	require.ErrorIs(t, err, gslerr.ErrMaxIteration)
	require.Equal(t, int32(11), gslerr.ToCode(err))
}

// TestWrappedErrorsKeepVariant verifies that context wrapping does not hide the kind.
func TestWrappedErrorsKeepVariant(t *testing.T) {
	err := fmt.Errorf("blas.Axpy: len(x)=3 != len(y)=4: %w", gslerr.ErrBadLength)
	require.ErrorIs(t, err, gslerr.ErrBadLength)
	require.Equal(t, int32(19), gslerr.ToCode(err))

	joined := fmt.Errorf("%w: %w", gslerr.ErrInvalid, errors.New("handle: borrow conflict"))
	require.Equal(t, int32(4), gslerr.ToCode(joined))
}

// TestForeignErrorMapsToFailure checks the fallback for non-taxonomy errors.
func TestForeignErrorMapsToFailure(t *testing.T) {
	require.Equal(t, gslerr.ErrFailure.Code(), gslerr.ToCode(errors.New("boom")))

	_, ok := gslerr.As(errors.New("boom"))
	require.False(t, ok)
	_, ok = gslerr.As(nil)
	require.False(t, ok)
}

// TestMessages spot-checks the human strings.
func TestMessages(t *testing.T) {
	require.Equal(t, "gsl: input domain error", gslerr.ErrDomain.Error())
	require.Equal(t, "matrix not square", gslerr.ErrNotSquare.Message())
	require.Equal(t, "unknown error", gslerr.Unknown(99).Message())
	require.Equal(t, "NoProgressJacobian", gslerr.ErrNoProgressJacobian.Name())
}

// TestCheck covers the payload helper.
func TestCheck(t *testing.T) {
	v, err := gslerr.Check(0, 3.5)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	v, err = gslerr.Check(1, 3.5)
	require.ErrorIs(t, err, gslerr.ErrDomain)
	require.Zero(t, v)
}

// TestNamedIsCopy guards the internal ordering table against mutation.
func TestNamedIsCopy(t *testing.T) {
	a := gslerr.Named()
	a[0] = gslerr.ErrEOF
	require.Equal(t, gslerr.ErrContinue, gslerr.Named()[0])
}

func TestConverged(t *testing.T) {
	ok, err := gslerr.Converged(gslerr.Success)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = gslerr.Converged(gslerr.ErrContinue.Code())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = gslerr.Converged(gslerr.ErrBadTolerance.Code())
	require.ErrorIs(t, err, gslerr.ErrBadTolerance)
	require.False(t, ok)
}
