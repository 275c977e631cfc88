package waveio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.wav")
	in := []float64{0, 0.5, -0.25, 1, -1, 0.125}

	require.NoError(t, WriteWaveform(path, in, 2000000, 0))

	out, err := ReadWaveform(path)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-8, "sample %d", i)
	}
}

func TestWriteWaveform_PeakNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kernel.wav")
	in := []float64{4, -2, 1}

	require.NoError(t, WriteWaveform(path, in, 48000, Peak(in)))

	out, err := ReadWaveform(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[0], 1e-8)
	assert.InDelta(t, -0.5, out[1], 1e-8)
	assert.InDelta(t, 0.25, out[2], 1e-8)
}

func TestWriteWaveform_InvalidRate(t *testing.T) {
	err := WriteWaveform(filepath.Join(t.TempDir(), "x.wav"), []float64{1}, 0, 0)
	require.Error(t, err)
}

func TestReadWaveform_FileNotFound(t *testing.T) {
	_, err := ReadWaveform("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open waveform file")
}

func TestReadWaveform_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := ReadWaveform(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestPeak(t *testing.T) {
	assert.Equal(t, 3.0, Peak([]float64{1, -3, 2}))
	assert.Zero(t, Peak(nil))
}
