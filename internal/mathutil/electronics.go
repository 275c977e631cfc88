// Package mathutil provides the analytic front-end response models that the
// filter synthesizer samples.
package mathutil

import "math"

// ColdElec evaluates the cold-electronics impulse response at time t for
// the given gain and shaping time.
//
// The response is zero for t <= 0 and beyond the 10 µs fit range.
func ColdElec(t, gain, shaping float64) float64 {
	if t <= 0 || t >= coldElecValidity || shaping <= 0 {
		return 0
	}

	x := t / shaping
	g := gain * coldElecScale

	e0 := math.Exp(-coldElecDecay0 * x)
	e1 := math.Exp(-coldElecDecay1 * x)
	e2 := math.Exp(-coldElecDecay2 * x)

	c1, s1 := math.Cos(coldElecRate1*x), math.Sin(coldElecRate1*x)
	c2, s2 := math.Cos(coldElecRate2*x), math.Sin(coldElecRate2*x)
	c3, s3 := math.Cos(coldElecRate3*x), math.Sin(coldElecRate3*x)
	c4, s4 := math.Cos(coldElecRate4*x), math.Sin(coldElecRate4*x)

	v := coldElecA0 * e0
	v -= coldElecA1 * e1 * c1
	v -= coldElecA1 * e1 * c1 * c2
	v += coldElecA2 * e2 * c3
	v += coldElecA2 * e2 * c3 * c4
	v += coldElecA3 * e1 * s1
	v -= coldElecA3 * e1 * c2 * s1
	v += coldElecA3 * e1 * c1 * s2
	v -= coldElecA1 * e1 * s1 * s2
	v -= coldElecA4 * e2 * s3
	v += coldElecA4 * e2 * c4 * s3
	v -= coldElecA4 * e2 * c3 * s4
	v += coldElecA2 * e2 * s3 * s4

	return v * g
}

// SimpleRC evaluates a single RC high-pass stage with time constant tau,
// sampled with period tick: a unit delta in the first tick followed by the
// negative exponential tail -(tick/tau)·exp(-t/tau).
//
// A non-positive tau leaves only the delta.
func SimpleRC(t, tau, tick float64) float64 {
	var v float64
	if t >= 0 && t < tick {
		v = 1
	}
	if tau > 0 && t >= 0 {
		v -= tick / tau * math.Exp(-t/tau)
	}
	return v
}
