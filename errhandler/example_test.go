// SPDX-License-Identifier: MIT

package errhandler_test

import (
	"fmt"

	"github.com/katalvlaran/lvgsl/errhandler"
	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native/nativetest"
)

func ExampleRegistry_Set() {
	f := nativetest.New()
	r := errhandler.NewRegistry(&f.Library().ErrorHook)

	r.Set(func(reason, _ string, _ int, err gslerr.Error) {
		fmt.Println(err.Name()+":", reason)
	})
	f.Raise("exceeded max number of iterations", gslerr.ErrMaxIteration.Code())
	r.Off()
	f.Raise("not reported", gslerr.ErrMaxIteration.Code())
	// Output:
	// MaxIteration: exceeded max number of iterations
}
