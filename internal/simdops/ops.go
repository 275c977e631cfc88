// Package simdops collects the vector kernels used for spectrum algebra.
//
// Complex products go through github.com/tphakala/simd/c128 and real
// scaling through github.com/tphakala/simd/f64, which pick AVX2/SSE/NEON
// implementations at runtime and fall back to pure Go.
package simdops

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
)

// Mul computes dst[i] = a[i] * b[i] over the shortest of the three slices.
// dst may alias a or b.
func Mul(dst, a, b []complex128) {
	c128.Mul(dst, a, b)
}

// Square computes dst[i] = a[i]². It is the spectrum of two identical
// cascaded stages.
func Square(dst, a []complex128) {
	c128.Mul(dst, a, a)
}

// Div computes dst[i] = a[i] / b[i].
// A zero divisor yields a zero coefficient instead of Inf or NaN.
func Div(dst, a, b []complex128) {
	for i := range dst {
		if b[i] == 0 {
			dst[i] = 0
			continue
		}
		dst[i] = a[i] / b[i]
	}
}

// Scale computes dst[i] = a[i] * s.
func Scale(dst, a []float64, s float64) {
	f64.Scale(dst, a, s)
}

// Accumulate adds src into dst element-wise over the shorter of the two.
func Accumulate(dst, src []float64) {
	n := min(len(dst), len(src))
	f64.AccumulateAdd(dst, src[:n], 0)
}

// Fill sets every element of dst to v.
func Fill(dst []complex128, v complex128) {
	for i := range dst {
		dst[i] = v
	}
}

// Real widens a real sequence into a complex one of length n, zero-extending
// or truncating as needed.
func Real(src []float64, n int) []complex128 {
	out := make([]complex128, n)
	m := min(len(src), n)
	for i := range m {
		out[i] = complex(src[i], 0)
	}
	return out
}
