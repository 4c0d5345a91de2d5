// SPDX-License-Identifier: MIT

package native

// Library is a complete table of native entry points. A nil entry means the
// backend does not provide that routine.
type Library struct {
	Name    string // backend label used in errors and logs
	Version string // linked library version, empty when unknown

	VectorF32 VectorABI[float32]
	VectorF64 VectorABI[float64]
	VectorI32 VectorABI[int32]

	MatrixF32 MatrixABI[float32]
	MatrixF64 MatrixABI[float64]

	BLASF32 BLASABI[float32]
	BLASF64 BLASABI[float64]
	Mixed   MixedBLASABI

	CBLASF32 CBLASABI[float32]
	CBLASF64 CBLASABI[float64]

	Eigen     EigenABI
	Filter    FilterABI
	Multifit  MultifitABI
	Multiroot MultirootABI
	Poly      PolyABI
	SF        SFABI
	Mathieu   MathieuABI

	ErrorHook ErrorHookABI
}

// UnavailableName labels the empty library used when no backend is linked.
const UnavailableName = "unavailable"

// Unavailable returns an empty Library: every entry is nil.
func Unavailable() *Library {
	return &Library{Name: UnavailableName}
}

// current is the process-wide default backend. Mutated only by SetDefault,
// which is documented as startup-only.
var current = Unavailable()

// Default returns the library new views use when no explicit one is given.
func Default() *Library {
	return current
}

// SetDefault makes lib the default backend and returns the previous one.
// The native error hook of lib is turned off first, so the GSL abort handler
// can never fire once lib is reachable. A nil lib restores Unavailable().
//
// Not safe for concurrent use: call once during startup.
func SetDefault(lib *Library) *Library {
	if lib == nil {
		lib = Unavailable()
	}
	lib.ErrorHook.Off()
	prev := current
	current = lib

	return prev
}
