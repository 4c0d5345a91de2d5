// SPDX-License-Identifier: MIT

package enums

// EigenSort orders eigenvalue/eigenvector pairs.
type EigenSort uint8

const (
	SortValAsc EigenSort = iota
	SortValDesc
	SortAbsAsc
	SortAbsDesc
)

var eigenSortFamily = family{"EigenSort",
	[]string{"ValAsc", "ValDesc", "AbsAsc", "AbsDesc"},
	[]int32{GSLEigenSortValAsc, GSLEigenSortValDesc, GSLEigenSortAbsAsc, GSLEigenSortAbsDesc}}

func (e EigenSort) Native() int32  { return eigenSortFamily.native(uint8(e)) }
func (e EigenSort) String() string { return eigenSortFamily.name(uint8(e)) }

// EigenSortFromNative decodes a gsl_eigen_sort_t value.
func EigenSortFromNative(code int32) EigenSort {
	return fromNative[EigenSort](&eigenSortFamily, code)
}

// FilterEnd is the boundary policy of gsl_filter_*.
type FilterEnd uint8

const (
	PadZero FilterEnd = iota
	PadValue
	Truncate
)

var filterEndFamily = family{"FilterEnd",
	[]string{"PadZero", "PadValue", "Truncate"},
	[]int32{GSLFilterEndPadZero, GSLFilterEndPadValue, GSLFilterEndTruncate}}

func (f FilterEnd) Native() int32  { return filterEndFamily.native(uint8(f)) }
func (f FilterEnd) String() string { return filterEndFamily.name(uint8(f)) }

// FilterEndFromNative decodes a gsl_filter_end_t value.
func FilterEndFromNative(code int32) FilterEnd {
	return fromNative[FilterEnd](&filterEndFamily, code)
}

// FilterScale is the robust scale estimator of the impulse filter.
type FilterScale uint8

const (
	MedianAbsoluteDeviation FilterScale = iota
	InterQuartileRange
	SN
	QN
)

var filterScaleFamily = family{"FilterScale",
	[]string{"MedianAbsoluteDeviation", "InterQuartileRange", "SN", "QN"},
	[]int32{GSLFilterScaleMAD, GSLFilterScaleIQR, GSLFilterScaleSN, GSLFilterScaleQN}}

func (f FilterScale) Native() int32  { return filterScaleFamily.native(uint8(f)) }
func (f FilterScale) String() string { return filterScaleFamily.name(uint8(f)) }

// FilterScaleFromNative decodes a gsl_filter_scale_t value.
func FilterScaleFromNative(code int32) FilterScale {
	return fromNative[FilterScale](&filterScaleFamily, code)
}

// Prec is the gsl_mode_t precision of special functions.
type Prec uint8

const (
	PrecDouble Prec = iota
	PrecSingle
	PrecApprox
)

var precFamily = family{"Prec",
	[]string{"Double", "Single", "Approx"},
	[]int32{GSLPrecDouble, GSLPrecSingle, GSLPrecApprox}}

func (p Prec) Native() int32  { return precFamily.native(uint8(p)) }
func (p Prec) String() string { return precFamily.name(uint8(p)) }

// PrecFromNative decodes a gsl_mode_t precision.
func PrecFromNative(code int32) Prec { return fromNative[Prec](&precFamily, code) }

// VegasMode is the sampling mode of the VEGAS Monte Carlo integrator.
type VegasMode uint8

const (
	Importance VegasMode = iota
	ImportanceOnly
	Stratified
)

var vegasModeFamily = family{"VegasMode",
	[]string{"Importance", "ImportanceOnly", "Stratified"},
	[]int32{GSLVegasModeImportance, GSLVegasModeImportanceOnly, GSLVegasModeStratified}}

func (v VegasMode) Native() int32  { return vegasModeFamily.native(uint8(v)) }
func (v VegasMode) String() string { return vegasModeFamily.name(uint8(v)) }

// VegasModeFromNative decodes a GSL_VEGAS_MODE_* value.
func VegasModeFromNative(code int32) VegasMode {
	return fromNative[VegasMode](&vegasModeFamily, code)
}

// WaveletDirection is the direction of a wavelet transform.
type WaveletDirection uint8

const (
	Forward WaveletDirection = iota
	Backward
)

var waveletFamily = family{"WaveletDirection",
	[]string{"Forward", "Backward"},
	[]int32{GSLWaveletForward, GSLWaveletBackward}}

func (w WaveletDirection) Native() int32  { return waveletFamily.native(uint8(w)) }
func (w WaveletDirection) String() string { return waveletFamily.name(uint8(w)) }

// WaveletDirectionFromNative decodes a gsl_wavelet_direction value.
func WaveletDirectionFromNative(code int32) WaveletDirection {
	return fromNative[WaveletDirection](&waveletFamily, code)
}

// LegendreNorm is the normalization of associated Legendre functions.
type LegendreNorm uint8

const (
	Schmidt LegendreNorm = iota
	SphericalHarmonic
	Full
	None
)

var legendreFamily = family{"LegendreNorm",
	[]string{"Schmidt", "SphericalHarmonic", "Full", "None"},
	[]int32{GSLSfLegendreSchmidt, GSLSfLegendreSpharm, GSLSfLegendreFull, GSLSfLegendreNone}}

func (l LegendreNorm) Native() int32  { return legendreFamily.native(uint8(l)) }
func (l LegendreNorm) String() string { return legendreFamily.name(uint8(l)) }

// LegendreNormFromNative decodes a gsl_sf_legendre_t value.
func LegendreNormFromNative(code int32) LegendreNorm {
	return fromNative[LegendreNorm](&legendreFamily, code)
}
