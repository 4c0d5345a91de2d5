// SPDX-License-Identifier: MIT

package native

// ErrorHookABI is GSL's single process-wide error hook.
// SetHandler installs fn as the active gsl_error_handler_t; SetHandlerOff is
// gsl_set_error_handler_off (no callback, no abort; routines just return codes).
type ErrorHookABI struct {
	SetHandler    func(fn ErrorFunc)
	SetHandlerOff func()
}

// Install routes native errors to fn. A backend without a hook ignores it.
func (h *ErrorHookABI) Install(fn ErrorFunc) {
	if h.SetHandler != nil {
		h.SetHandler(fn)
	}
}

// Off disables both the callback and the native abort.
func (h *ErrorHookABI) Off() {
	if h.SetHandlerOff != nil {
		h.SetHandlerOff()
	}
}
