// SPDX-License-Identifier: MIT

package poly_test

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/native/nativetest"
	"github.com/katalvlaran/lvgsl/poly"
)

func ExamplePoly_SolveQuadratic() {
	p := poly.New(poly.WithLibrary(nativetest.New().Library()))
	roots, err := p.SolveQuadratic(1, -3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(roots)
	// Output: [1 2]
}
