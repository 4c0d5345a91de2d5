// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// Shaped is anything with a native Library, vectors and matrices alike.
type Shaped interface {
	Library() *native.Library
}

// SameLibrary ensures every operand was allocated by the same backend.
func SameLibrary(first Shaped, rest ...Shaped) error {
	lib := first.Library()
	for i, s := range rest {
		if s.Library() != lib {
			return fmt.Errorf("operand %d: backend %q, want %q: %w",
				i+1, s.Library().Name, lib.Name, gslerr.ErrInvalid)
		}
	}

	return nil
}

// Lengther is anything with a vector length.
type Lengther interface {
	Len() int
}

// ValidateSameLen ensures a and b have equal length.
func ValidateSameLen(a, b Lengther) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("lengths %d and %d: %w", a.Len(), b.Len(), gslerr.ErrBadLength)
	}

	return nil
}

// ValidateLen ensures v has exactly n elements.
func ValidateLen(v Lengther, n int) error {
	if v.Len() != n {
		return fmt.Errorf("length %d, want %d: %w", v.Len(), n, gslerr.ErrBadLength)
	}

	return nil
}
