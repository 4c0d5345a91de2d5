// SPDX-License-Identifier: MIT

package handle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
)

var (
	// ErrBorrowConflict is returned when a view would break the
	// single-writer-or-many-readers rule. Always joined with gslerr.ErrInvalid.
	ErrBorrowConflict = errors.New("handle: borrow conflict")

	// ErrClosed is returned when borrowing from a closed Owner.
	// Always joined with gslerr.ErrFault.
	ErrClosed = errors.New("handle: owner closed")
)

func conflictErrorf(o *Owner, want string) error {
	return fmt.Errorf("%s %s borrow while %s: %w: %w",
		o.kind, want, o.stateLocked(), ErrBorrowConflict, gslerr.ErrInvalid)
}

func closedErrorf(o *Owner, want string) error {
	return fmt.Errorf("%s %s borrow: %w: %w", o.kind, want, ErrClosed, gslerr.ErrFault)
}
