// Package noisedb is a per-channel noise-filter database for multi-channel
// detector readout.
//
// It turns a configuration document of channel selectors, electronics
// parameters and calibration overrides into per-channel scalar values and
// frequency-domain filters, and serves them by channel id to the noise
// removal stages downstream.
//
// # Quick Start
//
//	cfg, err := noisedb.LoadConfig("noisedb.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	db, err := noisedb.New(cfg, noisedb.Anodes{"AnodePlane": anode})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rc, err := db.RCRC(42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rc.Apply(spectrum)
//
// # Configuration
//
// A document (YAML or JSON) carries the sample period ("tick"), the filter
// length ("nsamples"), the anode name, channel groups, bad channels and an
// ordered list of batch updates ("channel_info"):
//
//	tick: 500
//	nsamples: 9600
//	anode: AnodePlane
//	channel_info:
//	  - channels: {first: 0, last: 2399}
//	    nominal_baseline: 2048
//	    rcrc: 1000000
//	  - channels: {wpid: 4}
//	    nominal_baseline: 400
//	    response: {wpid: 4}
//	  - channels: [2016, 2017, 2018]
//	    reconfig:
//	      from: {gain: 1.2497e-12, shaping: 1100}
//	      to:   {gain: 2.2430e-12, shaping: 2200}
//	    freqmasks:
//	      - {value: 0, lobin: 169, hibin: 173}
//
// Quantities are plain numbers in the base units of internal/units: time
// in nanoseconds (0.5 µs is 500), and gain such that 1 mV/fC is about
// 1.602e-13, so 14 mV/fC is written 2.2430e-12.
//
// Channels are selected by a single id, a list, an inclusive
// {first, last} range or a wire plane {wpid}. Updates apply in order and
// later ones override earlier ones field by field.
//
// # Filter Sharing
//
// Filters are cached by quantized parameters: RC constants to 1/1000 ms,
// electronics gains and shaping times to tenths of mV/fC and µs, field
// responses by plane id or waveform id. Channels with equal keys share one
// immutable *Filter. Channels that never receive a filter update hold the
// database's all-ones default filter.
//
// # Thread Safety
//
// A Database may be queried from multiple goroutines, including while an
// Update runs. Filters are never modified after construction.
package noisedb
