// SPDX-License-Identifier: MIT
package gslerr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgsl/gslerr"
)

// ExampleFromCode shows translating native codes and matching the result.
func ExampleFromCode() {
	err := gslerr.FromCode(11)
	fmt.Println(errors.Is(err, gslerr.ErrMaxIteration), gslerr.ToCode(err))

	err = gslerr.FromCode(77)
	e, _ := gslerr.As(err)
	fmt.Println(e.Known(), e.Name())

	// Output:
	// true 11
	// false Unknown(77)
}
