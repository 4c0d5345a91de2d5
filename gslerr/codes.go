// SPDX-License-Identifier: MIT

package gslerr

// FromCode translates a native status code into an error.
// Success maps to nil, a named code to its sentinel, and any other value to
// Unknown(code). It never panics.
// Complexity: O(1).
func FromCode(code int32) error {
	if code == Success {
		return nil
	}

	return Error(code)
}

// ToCode is the inverse of FromCode.
//   - nil maps to Success.
//   - Any error whose chain holds an Error maps to that code (wrapping with
//     context does not lose the variant).
//   - Foreign errors map to ErrFailure, the closest generic native sentinel.
//
// Complexity: O(depth of the wrap chain).
func ToCode(err error) int32 {
	if err == nil {
		return Success
	}
	if e, ok := As(err); ok {
		return int32(e)
	}

	return int32(ErrFailure)
}

// Check pairs a success payload with a native status: on success it returns
// (v, nil), otherwise the zero T and the translated error.
func Check[T any](code int32, v T) (T, error) {
	if err := FromCode(code); err != nil {
		var zero T

		return zero, err
	}

	return v, nil
}

// Converged translates the status of a gsl_*_test_* convergence check:
// Success is (true, nil), ErrContinue is (false, nil), and any other code is
// (false, err).
func Converged(code int32) (bool, error) {
	switch Error(code) {
	case Error(Success):
		return true, nil
	case ErrContinue:
		return false, nil
	}

	return false, Error(code)
}
