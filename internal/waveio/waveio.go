// Package waveio reads and writes real waveforms as WAV files.
//
// Samples are stored as 32-bit PCM normalized to full scale; multi-channel
// files are reduced to their first channel on read.
package waveio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth     = 32
	pcmFormat    = 1
	maxInt32     = 2147483647.0
	fileMode     = 0o644
	monoChannels = 1
)

// ReadWaveform reads the first channel of a WAV file as samples in [-1, 1].
func ReadWaveform(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open waveform file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read waveform data: %w", err)
	}

	channels := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		channels = buf.Format.NumChannels
	}
	depth := int(decoder.BitDepth)
	if depth <= 0 {
		depth = bitDepth
	}
	scale := 1.0 / (math.Exp2(float64(depth-1)) - 1)

	n := len(buf.Data) / channels
	out := make([]float64, n)
	for i := range n {
		out[i] = float64(buf.Data[i*channels]) * scale
	}
	return out, nil
}

// WriteWaveform writes samples as a mono 32-bit WAV file. Samples are scaled
// by 1/peak when peak is positive and clipped to [-1, 1].
func WriteWaveform(path string, samples []float64, sampleRate int, peak float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive: %d", sampleRate)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, fileMode)
	if err != nil {
		return fmt.Errorf("failed to create waveform file: %w", err)
	}

	gain := 1.0
	if peak > 0 {
		gain = 1 / peak
	}
	data := make([]int, len(samples))
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v*gain))
		data[i] = int(math.Round(v * maxInt32))
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write waveform data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return f.Close()
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	var p float64
	for _, v := range samples {
		p = math.Max(p, math.Abs(v))
	}
	return p
}
