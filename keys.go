package noisedb

import (
	"math"

	"github.com/tphakala/go-channel-noisedb/internal/units"
)

// rcKey is an RC time constant in thousandths of a millisecond.
type rcKey int64

func quantizeRC(tau float64) rcKey {
	return rcKey(math.Round(rcKeyScale * tau / units.Millisecond))
}

// reconfigKey holds the four reconfiguration parameters, each in tenths of
// its customary unit (mV/fC for gain, µs for shaping).
type reconfigKey struct {
	fromGain    int64
	fromShaping int64
	toGain      int64
	toShaping   int64
}

func quantizeReconfig(r ReconfigSpec) reconfigKey {
	q := func(v, unit float64) int64 {
		return int64(math.Round(reconfigKeyScale * v / unit))
	}
	return reconfigKey{
		fromGain:    q(r.From.Gain, units.GainUnit),
		fromShaping: q(r.From.Shaping, units.Microsecond),
		toGain:      q(r.To.Gain, units.GainUnit),
		toShaping:   q(r.To.Shaping, units.Microsecond),
	}
}
