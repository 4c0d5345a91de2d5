// SPDX-License-Identifier: MIT

//go:build cgo && gsl

package lvgsl

// Linking the package installs the cgo backend as native.Default().
import _ "github.com/katalvlaran/lvgsl/native/cgsl"
