package mathutil

import "github.com/tphakala/go-channel-noisedb/internal/units"

// Cold-electronics shaper coefficients.
// The response is a sum of damped oscillations in reltime = t / shaping;
// each term below is amplitude * exp(-decay*reltime) times products of
// cos/sin of the listed angular rates.
const (
	coldElecA0 = 4.31054
	coldElecA1 = 2.6202
	coldElecA2 = 0.464924
	coldElecA3 = 0.762456
	coldElecA4 = 0.327684

	coldElecDecay0 = 2.94809
	coldElecDecay1 = 2.82833
	coldElecDecay2 = 2.40318

	coldElecRate1 = 1.19361
	coldElecRate2 = 2.38722
	coldElecRate3 = 2.5928
	coldElecRate4 = 5.18561

	// coldElecScale converts the polynomial's natural amplitude to gain units.
	coldElecScale = 10.0

	// coldElecValidity bounds the time range in which the fit holds.
	coldElecValidity = 10 * units.Microsecond
)
