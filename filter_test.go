package noisedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Accessors(t *testing.T) {
	f := newFilter([]complex128{1, 2i, 3})

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 2i, f.At(1))

	dst := make([]complex128, 2)
	assert.Equal(t, 2, f.CopyTo(dst))
	assert.Equal(t, []complex128{1, 2i}, dst)

	c := f.Coefficients()
	c[0] = 100
	assert.Equal(t, complex128(1), f.At(0), "Coefficients must return a copy")
}

func TestFilter_Apply(t *testing.T) {
	f := newFilter([]complex128{2, 1i, 0})
	spec := []complex128{1, 1, 5, 7}
	f.Apply(spec)
	assert.Equal(t, []complex128{2, 1i, 0, 7}, spec)

	short := []complex128{1 + 1i, 2}
	f.Apply(short)
	assert.Equal(t, []complex128{2 + 2i, 2i}, short)
	assert.Equal(t, []complex128{2, 1i, 0}, f.Coefficients())
}

func TestFilterKind_String(t *testing.T) {
	for _, k := range []FilterKind{FilterRCRC, FilterConfig, FilterNoise, FilterResponse} {
		parsed, ok := ParseFilterKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseFilterKind("bogus")
	assert.False(t, ok)
	assert.Equal(t, "unknown", FilterKind(42).String())
}
