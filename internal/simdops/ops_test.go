package simdops

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulAndSquare(t *testing.T) {
	a := []complex128{1 + 1i, 2, 0, -1i}
	b := []complex128{1 - 1i, 0.5, 3, 1i}

	dst := make([]complex128, len(a))
	Mul(dst, a, b)
	assert.Equal(t, []complex128{2, 1, 0, 1}, dst)

	inPlace := append([]complex128(nil), a...)
	Mul(inPlace, inPlace, b)
	assert.Equal(t, dst, inPlace)

	short := make([]complex128, 2)
	Mul(short, a, b)
	assert.Equal(t, dst[:2], short)

	Square(dst, a)
	for i, v := range a {
		assert.InDelta(t, 0, cmplx.Abs(dst[i]-v*v), 1e-12, "bin %d", i)
	}
}

func TestDivZeroDivisor(t *testing.T) {
	a := []complex128{4, 1 + 1i, 7}
	b := []complex128{2, 1i, 0}
	dst := make([]complex128, len(a))
	Div(dst, a, b)

	assert.Equal(t, complex128(2), dst[0])
	assert.InDelta(t, 0, cmplx.Abs(dst[1]-(1-1i)), 1e-12)
	assert.Equal(t, complex128(0), dst[2], "zero divisor must give zero, not NaN")
}

func TestScale(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	dst := make([]float64, len(a))
	Scale(dst, a, 0.5)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, dst)
}

func TestAccumulateShorterSource(t *testing.T) {
	dst := []float64{1, 1, 1, 1}
	Accumulate(dst, []float64{1, 2})
	assert.Equal(t, []float64{2, 3, 1, 1}, dst)

	Accumulate(dst, []float64{1, 1, 1, 1, 100, 100})
	assert.Equal(t, []float64{3, 4, 2, 2}, dst)
}

func TestRealExtendsAndTruncates(t *testing.T) {
	assert.Equal(t, []complex128{1, 2, 0, 0}, Real([]float64{1, 2}, 4))
	assert.Equal(t, []complex128{1, 2}, Real([]float64{1, 2, 3}, 2))
}

func TestFill(t *testing.T) {
	dst := make([]complex128, 3)
	Fill(dst, 1)
	assert.Equal(t, []complex128{1, 1, 1}, dst)
}
