// Package synth builds the frequency-domain filters served by the noise
// database.
//
// Every routine returns a freshly allocated spectrum of exactly Len()
// complex coefficients computed with an unnormalized forward DFT, so callers
// may wrap the result without copying.
package synth

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-channel-noisedb/internal/mathutil"
	"github.com/tphakala/go-channel-noisedb/internal/simdops"
)

// Synthesizer holds the shared sample count and tick and a reusable DFT
// plan. It is not safe for concurrent use.
type Synthesizer struct {
	n    int
	tick float64
	fft  *fourier.CmplxFFT
}

// Electronics is one gain / shaping-time front-end setting.
type Electronics struct {
	Gain    float64
	Shaping float64
}

// Mask overwrites a bin range of a frequency mask with Value.
type Mask struct {
	Value float64
	LoBin int
	HiBin int
}

// New creates a synthesizer for spectra of nsamples bins at the given tick.
func New(nsamples int, tick float64) (*Synthesizer, error) {
	if nsamples <= 0 {
		return nil, fmt.Errorf("synth: nsamples must be positive: %d", nsamples)
	}
	if tick <= 0 {
		return nil, fmt.Errorf("synth: tick must be positive: %g", tick)
	}
	return &Synthesizer{
		n:    nsamples,
		tick: tick,
		fft:  fourier.NewCmplxFFT(nsamples),
	}, nil
}

// Len returns the spectrum length.
func (s *Synthesizer) Len() int { return s.n }

// Tick returns the sample period.
func (s *Synthesizer) Tick() float64 { return s.tick }

// Unity returns an all-ones spectrum.
func (s *Synthesizer) Unity() []complex128 {
	out := make([]complex128, s.n)
	simdops.Fill(out, 1)
	return out
}

// RC returns the spectrum of two cascaded identical RC stages with time
// constant tau: X[k]² where X is the DFT of one sampled stage.
func (s *Synthesizer) RC(tau float64) []complex128 {
	signal := make([]float64, s.n)
	for i := range signal {
		signal[i] = mathutil.SimpleRC(float64(i)*s.tick, tau, s.tick)
	}
	spec := s.dft(signal)
	out := make([]complex128, s.n)
	simdops.Square(out, spec)
	return out
}

// Reconfig returns the ratio to[k] / from[k] of the two electronics
// responses. It maps a signal read out with "from" electronics onto "to".
func (s *Synthesizer) Reconfig(from, to Electronics) []complex128 {
	fromSpec := s.dft(s.coldElec(from))
	toSpec := s.dft(s.coldElec(to))
	out := make([]complex128, s.n)
	simdops.Div(out, toSpec, fromSpec)
	return out
}

func (s *Synthesizer) coldElec(e Electronics) []float64 {
	signal := make([]float64, s.n)
	for i := range signal {
		signal[i] = mathutil.ColdElec(float64(i)*s.tick, e.Gain, e.Shaping)
	}
	return signal
}

// FreqMask starts from all ones and applies masks in order, later entries
// overwriting earlier ones.
//
// Each entry fills [max(LoBin, 0), max(HiBin, Len()-1)], so the upper bound
// always reaches the last bin whatever HiBin asks for.
//
// TODO: confirm with the detector groups whether HiBin was meant to be an
// upper limit (min instead of max) before changing it.
func (s *Synthesizer) FreqMask(masks []Mask) []complex128 {
	out := s.Unity()
	last := s.n - 1
	for _, m := range masks {
		lo := max(m.LoBin, 0)
		hi := min(max(m.HiBin, last), last)
		v := complex(m.Value, 0)
		for i := lo; i <= hi; i++ {
			out[i] = v
		}
	}
	return out
}

// Waveform returns the spectrum of a time-domain sequence zero-extended or
// truncated to Len() samples.
func (s *Synthesizer) Waveform(samples []float64) []complex128 {
	return s.dft(samples)
}

// PlaneResponse sums the current waveforms of every wire path of a plane
// into one Len()-sample sequence and returns its spectrum.
func (s *Synthesizer) PlaneResponse(paths [][]float64) []complex128 {
	total := make([]float64, s.n)
	for _, p := range paths {
		simdops.Accumulate(total, p)
	}
	return s.dft(total)
}

// Inverse returns the real part of the normalized inverse DFT of spectrum.
func (s *Synthesizer) Inverse(spectrum []complex128) ([]float64, error) {
	if len(spectrum) != s.n {
		return nil, fmt.Errorf("synth: spectrum length %d, want %d", len(spectrum), s.n)
	}
	seq := s.fft.Sequence(nil, spectrum)
	out := make([]float64, s.n)
	for i, v := range seq {
		out[i] = real(v)
	}
	simdops.Scale(out, out, 1/float64(s.n))
	return out, nil
}

func (s *Synthesizer) dft(signal []float64) []complex128 {
	return s.fft.Coefficients(nil, simdops.Real(signal, s.n))
}
