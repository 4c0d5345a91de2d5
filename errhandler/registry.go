// SPDX-License-Identifier: MIT

package errhandler

import (
	"sync"

	"github.com/katalvlaran/lvgsl/gslerr"
	"github.com/katalvlaran/lvgsl/native"
)

// Handler observes one native error.
type Handler func(reason, file string, line int, err gslerr.Error)

// Hook is the native side of the registry. native.ErrorHookABI implements it.
//
//go:generate mockgen -destination=mock/mock_hook.go -package=errhandlermock github.com/katalvlaran/lvgsl/errhandler Hook
type Hook interface {
	Install(fn native.ErrorFunc)
	Off()
}

// Registry holds the active Handler for one Hook.
type Registry struct {
	hook    Hook
	current Handler
}

// NewRegistry binds a registry to hook and forces the Off state.
func NewRegistry(hook Hook) *Registry {
	hook.Off()

	return &Registry{hook: hook}
}

// Set makes h the active handler and returns the previous one.
// A nil h is the same as Off.
func (r *Registry) Set(h Handler) Handler {
	if h == nil {
		return r.Off()
	}
	prev := r.current
	r.current = h
	r.hook.Install(r.dispatch)

	return prev
}

// Off removes the active handler and returns it.
func (r *Registry) Off() Handler {
	prev := r.current
	r.current = nil
	r.hook.Off()

	return prev
}

// Current returns the active handler, nil when Off.
func (r *Registry) Current() Handler { return r.current }

// dispatch is what the native hook calls.
func (r *Registry) dispatch(reason, file string, line int, code native.Status) {
	if h := r.current; h != nil {
		h(reason, file, line, gslerr.Error(code))
	}
}

var (
	defaultMu  sync.Mutex
	defaultLib *native.Library
	defaultReg *Registry
)

// Default returns the registry bound to the error hook of native.Default().
// When native.SetDefault has swapped the library since the last call, the
// old hook is switched off and the active handler moves to the new one.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	lib := native.Default()
	if lib == defaultLib {
		return defaultReg
	}
	var carried Handler
	if defaultReg != nil {
		carried = defaultReg.Off()
	}
	defaultLib, defaultReg = lib, NewRegistry(&lib.ErrorHook)
	if carried != nil {
		defaultReg.Set(carried)
	}

	return defaultReg
}

// Set installs h on the default registry and returns the previous handler.
func Set(h Handler) Handler { return Default().Set(h) }

// Off disables the default registry and returns the previous handler.
func Off() Handler { return Default().Off() }

// Current returns the default registry's handler.
func Current() Handler { return Default().Current() }
