package noisedb

import "github.com/tphakala/go-channel-noisedb/internal/simdops"

// Filter is an immutable spectrum of Len() complex coefficients.
//
// Channels configured with identical parameters hold the same *Filter, so
// pointer equality means identical derivation.
type Filter struct {
	coeffs []complex128
}

// newFilter takes ownership of coeffs.
func newFilter(coeffs []complex128) *Filter {
	return &Filter{coeffs: coeffs}
}

// Len returns the number of frequency bins.
func (f *Filter) Len() int { return len(f.coeffs) }

// At returns the coefficient of bin k.
func (f *Filter) At(k int) complex128 { return f.coeffs[k] }

// CopyTo copies the coefficients into dst and returns the number copied.
func (f *Filter) CopyTo(dst []complex128) int { return copy(dst, f.coeffs) }

// Coefficients returns a copy of the coefficients.
func (f *Filter) Coefficients() []complex128 {
	return append([]complex128(nil), f.coeffs...)
}

// Apply multiplies spectrum in place by the filter over the shorter of the
// two lengths.
func (f *Filter) Apply(spectrum []complex128) {
	simdops.Mul(spectrum, spectrum, f.coeffs)
}

// FilterKind selects one of the four filters held per channel.
type FilterKind int

const (
	// FilterRCRC is the RC⊗RC undershoot filter.
	FilterRCRC FilterKind = iota

	// FilterConfig is the electronics reconfiguration filter.
	FilterConfig

	// FilterNoise is the frequency mask.
	FilterNoise

	// FilterResponse is the field response spectrum.
	FilterResponse
)

func (k FilterKind) String() string {
	switch k {
	case FilterRCRC:
		return "rcrc"
	case FilterConfig:
		return "config"
	case FilterNoise:
		return "noise"
	case FilterResponse:
		return "response"
	default:
		return "unknown"
	}
}

// ParseFilterKind maps a name printed by String back to its kind.
func ParseFilterKind(name string) (FilterKind, bool) {
	for _, k := range []FilterKind{FilterRCRC, FilterConfig, FilterNoise, FilterResponse} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
