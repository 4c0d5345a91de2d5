// SPDX-License-Identifier: MIT

package gslerr

import (
	"errors"
	"fmt"
)

// Error is a GSL failure kind. Its numeric value equals the native status code.
// The zero value is not an error (GSL_SUCCESS) and is never produced by FromCode.
type Error int32

// Success is the native status code for a successful call.
const Success int32 = 0

// Named failure kinds. Values are fixed by gsl_errno.h.
const (
	ErrFailure            Error = -1 // generic failure
	ErrContinue           Error = -2 // iteration has not converged
	ErrDomain             Error = 1  // input domain error, e.g. sqrt(-1)
	ErrRange              Error = 2  // output range error, e.g. exp(1e100)
	ErrFault              Error = 3  // invalid pointer
	ErrInvalid            Error = 4  // invalid argument supplied by user
	ErrFailed             Error = 5  // generic failure
	ErrFactorization      Error = 6  // factorization failed
	ErrSanity             Error = 7  // sanity check failed
	ErrNoMemory           Error = 8  // malloc failed
	ErrBadFunction        Error = 9  // problem with user-supplied function
	ErrRunAway            Error = 10 // iterative process is out of control
	ErrMaxIteration       Error = 11 // exceeded max number of iterations
	ErrZeroDiv            Error = 12 // tried to divide by zero
	ErrBadTolerance       Error = 13 // user specified an invalid tolerance
	ErrTolerance          Error = 14 // failed to reach the specified tolerance
	ErrUnderFlow          Error = 15 // underflow
	ErrOverFlow           Error = 16 // overflow
	ErrLoss               Error = 17 // loss of accuracy
	ErrRound              Error = 18 // failed because of roundoff error
	ErrBadLength          Error = 19 // matrix, vector lengths are not conformant
	ErrNotSquare          Error = 20 // matrix not square
	ErrSingularity        Error = 21 // apparent singularity detected
	ErrDiverge            Error = 22 // integral or series is divergent
	ErrUnsupported        Error = 23 // requested feature is not supported by the hardware
	ErrUnimplemented      Error = 24 // requested feature not (yet) implemented
	ErrCache              Error = 25 // cache limit exceeded
	ErrTable              Error = 26 // table limit exceeded
	ErrNoProgress         Error = 27 // iteration is not making progress towards solution
	ErrNoProgressJacobian Error = 28 // jacobian evaluations are not improving the solution
	ErrToleranceF         Error = 29 // cannot reach the specified tolerance in F
	ErrToleranceX         Error = 30 // cannot reach the specified tolerance in X
	ErrToleranceG         Error = 31 // cannot reach the specified tolerance in gradient
	ErrEOF                Error = 32 // end of file
)

// descriptor holds the stable name and human message of a named kind.
type descriptor struct {
	name string
	msg  string
}

// table is the single source of truth for named kinds. Order follows gsl_errno.h.
var table = map[Error]descriptor{
	ErrFailure:            {"Failure", "failure"},
	ErrContinue:           {"Continue", "the iteration has not converged yet"},
	ErrDomain:             {"Domain", "input domain error"},
	ErrRange:              {"Range", "output range error"},
	ErrFault:              {"Fault", "invalid pointer"},
	ErrInvalid:            {"Invalid", "invalid argument supplied by user"},
	ErrFailed:             {"Failed", "generic failure"},
	ErrFactorization:      {"Factorization", "factorization failed"},
	ErrSanity:             {"Sanity", "sanity check failed - shouldn't happen"},
	ErrNoMemory:           {"NoMemory", "malloc failed"},
	ErrBadFunction:        {"BadFunction", "problem with user-supplied function"},
	ErrRunAway:            {"RunAway", "iterative process is out of control"},
	ErrMaxIteration:       {"MaxIteration", "exceeded max number of iterations"},
	ErrZeroDiv:            {"ZeroDiv", "tried to divide by zero"},
	ErrBadTolerance:       {"BadTolerance", "specified tolerance is invalid or theoretically unattainable"},
	ErrTolerance:          {"Tolerance", "failed to reach the specified tolerance"},
	ErrUnderFlow:          {"UnderFlow", "underflow"},
	ErrOverFlow:           {"OverFlow", "overflow"},
	ErrLoss:               {"Loss", "loss of accuracy"},
	ErrRound:              {"Round", "roundoff error"},
	ErrBadLength:          {"BadLength", "matrix/vector sizes are not conformant"},
	ErrNotSquare:          {"NotSquare", "matrix not square"},
	ErrSingularity:        {"Singularity", "singularity or extremely bad function behavior detected"},
	ErrDiverge:            {"Diverge", "integral or series is divergent"},
	ErrUnsupported:        {"Unsupported", "the required feature is not supported by this hardware platform"},
	ErrUnimplemented:      {"Unimplemented", "the requested feature is not (yet) implemented"},
	ErrCache:              {"Cache", "cache limit exceeded"},
	ErrTable:              {"Table", "table limit exceeded"},
	ErrNoProgress:         {"NoProgress", "iteration is not making progress towards solution"},
	ErrNoProgressJacobian: {"NoProgressJacobian", "jacobian evaluations are not improving the solution"},
	ErrToleranceF:         {"ToleranceF", "cannot reach the specified tolerance in F"},
	ErrToleranceX:         {"ToleranceX", "cannot reach the specified tolerance in X"},
	ErrToleranceG:         {"ToleranceG", "cannot reach the specified tolerance in gradient"},
	ErrEOF:                {"EOF", "end of file"},
}

// named lists every named kind in native-code order (negatives first).
var named = []Error{
	ErrContinue, ErrFailure,
	ErrDomain, ErrRange, ErrFault, ErrInvalid, ErrFailed, ErrFactorization, ErrSanity,
	ErrNoMemory, ErrBadFunction, ErrRunAway, ErrMaxIteration, ErrZeroDiv, ErrBadTolerance,
	ErrTolerance, ErrUnderFlow, ErrOverFlow, ErrLoss, ErrRound, ErrBadLength, ErrNotSquare,
	ErrSingularity, ErrDiverge, ErrUnsupported, ErrUnimplemented, ErrCache, ErrTable,
	ErrNoProgress, ErrNoProgressJacobian, ErrToleranceF, ErrToleranceX, ErrToleranceG, ErrEOF,
}

// Named returns every named kind, ordered by native code. The slice is a copy.
func Named() []Error {
	out := make([]Error, len(named))
	copy(out, named)

	return out
}

// Unknown returns the Error carrying an arbitrary native code. For a named code
// it returns that named kind, so Unknown(19) == ErrBadLength.
func Unknown(code int32) Error {
	return Error(code)
}

// Known reports whether e is one of the named kinds.
func (e Error) Known() bool {
	_, ok := table[e]

	return ok
}

// Code returns the native status code of e.
func (e Error) Code() int32 {
	return int32(e)
}

// Name returns the stable identifier of e ("BadLength"), or "Unknown(<code>)".
func (e Error) Name() string {
	if d, ok := table[e]; ok {
		return d.name
	}

	return fmt.Sprintf("Unknown(%d)", int32(e))
}

// Message returns the human description of e without the package prefix.
func (e Error) Message() string {
	if d, ok := table[e]; ok {
		return d.msg
	}

	return "unknown error"
}

// Error implements the error interface: "gsl: <message>" or
// "gsl: unknown error (code N)".
func (e Error) Error() string {
	if e.Known() {
		return "gsl: " + e.Message()
	}

	return fmt.Sprintf("gsl: unknown error (code %d)", int32(e))
}

// As extracts the Error carried by err, following wrap chains.
// ok is false for nil and for foreign errors.
func As(err error) (e Error, ok bool) {
	if err == nil {
		return 0, false
	}
	ok = errors.As(err, &e)

	return e, ok
}
