// SPDX-License-Identifier: MIT

//go:build cgo && gsl

package cgsl

/*
#include "cgsl.h"
*/
import "C"

import (
	"sync/atomic"

	"github.com/katalvlaran/lvgsl/native"
)

// active is the handler the trampoline forwards to.
var active atomic.Pointer[native.ErrorFunc]

//export lvgslHandleError
func lvgslHandleError(reason, file *C.char, line, code C.int) {
	if fn := active.Load(); fn != nil {
		(*fn)(C.GoString(reason), C.GoString(file), int(line), native.Status(code))
	}
}

func errorHook() native.ErrorHookABI {
	return native.ErrorHookABI{
		SetHandler: func(fn native.ErrorFunc) {
			active.Store(&fn)
			C.lvgsl_install_handler()
		},
		SetHandlerOff: func() {
			active.Store(nil)
			C.gsl_set_error_handler_off()
		},
	}
}
