package noisedb

import "github.com/tphakala/go-channel-noisedb/internal/units"

// Configuration defaults.
const (
	DefaultTick     = 0.5 * units.Microsecond
	DefaultNSamples = 9600
	DefaultAnode    = "AnodePlane"
)

// Record defaults.
const (
	defaultGainCorrection = 1.0
	defaultMinRMSCut      = 0.5
	defaultMaxRMSCut      = 10.0
)

// Cache key quantization.
const (
	rcKeyScale       = 1000 // thousandths of a millisecond
	reconfigKeyScale = 10   // tenths of mV/fC or µs
)

// maxRangePrealloc caps the capacity reserved when expanding a channel range.
const maxRangePrealloc = 1 << 16
