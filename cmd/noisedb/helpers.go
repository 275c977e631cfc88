package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	noisedb "github.com/tphakala/go-channel-noisedb"
	"github.com/tphakala/go-channel-noisedb/internal/geometry"
	"github.com/tphakala/go-channel-noisedb/internal/synth"
	"github.com/tphakala/go-channel-noisedb/internal/units"
	"github.com/tphakala/go-channel-noisedb/internal/waveio"
)

// bytesPerBin is the storage of one complex128 coefficient.
const bytesPerBin = 16

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// summary describes a loaded database.
type summary struct {
	Channels    int            `json:"channels"`
	Samples     int            `json:"nsamples"`
	Tick        float64        `json:"tick_ns"`
	Groups      int            `json:"groups"`
	Bad         []int          `json:"bad"`
	Distinct    map[string]int `json:"distinct_filters"`
	Configured  map[string]int `json:"configured_channels"`
	CacheHits   int            `json:"cache_hits"`
	CacheMisses int            `json:"cache_misses"`
	CacheBytes  uint64         `json:"cache_bytes"`
}

var filterKinds = []noisedb.FilterKind{
	noisedb.FilterRCRC,
	noisedb.FilterConfig,
	noisedb.FilterNoise,
	noisedb.FilterResponse,
}

// openDatabase loads the anode description and binds it under the anode
// name the configuration asks for.
func openDatabase(configPath, geometryPath string, verbose bool) (*noisedb.Database, error) {
	cfg, err := noisedb.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	anode, err := geometry.Load(geometryPath)
	if err != nil {
		return nil, err
	}

	var opts []noisedb.Option
	if verbose {
		opts = append(opts, noisedb.WithLogger(log.Default()))
	}
	return noisedb.New(cfg, noisedb.Anodes{cfg.Anode: anode}, opts...)
}

// buildSummary counts, per filter kind, the distinct filters in use and the
// channels holding something other than the default.
func buildSummary(db *noisedb.Database) summary {
	s := summary{
		Channels:   db.NumChannels(),
		Samples:    db.NumberSamples(),
		Tick:       db.SampleTime() / units.Nanosecond,
		Groups:     len(db.ChannelGroups()),
		Bad:        db.BadChannels(),
		Distinct:   make(map[string]int, len(filterKinds)),
		Configured: make(map[string]int, len(filterKinds)),
	}

	def := db.DefaultFilter()
	for _, kind := range filterKinds {
		seen := make(map[*noisedb.Filter]struct{})
		for ch := range s.Channels {
			f, err := db.Filter(ch, kind)
			if err != nil {
				continue
			}
			seen[f] = struct{}{}
			if f != def {
				s.Configured[kind.String()]++
			}
		}
		s.Distinct[kind.String()] = len(seen)
	}

	stats := db.CacheStats()
	for _, t := range []noisedb.TableStats{stats.RC, stats.Reconfig, stats.Plane, stats.Waveform} {
		s.CacheHits += t.Hits
		s.CacheMisses += t.Misses
	}
	s.CacheBytes = uint64(stats.Entries()) * uint64(s.Samples) * bytesPerBin
	return s
}

// writeSummary prints s as indented JSON or as a short report.
func writeSummary(w io.Writer, s summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil
	}

	_, err := fmt.Fprintf(w, "Channels: %s (%d bad, %d groups)\n", humanize.Comma(int64(s.Channels)), len(s.Bad), s.Groups)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Filters: %d bins at %g ns\n", s.Samples, s.Tick)
	if err != nil {
		return err
	}
	for _, kind := range filterKinds {
		name := kind.String()
		_, err = fmt.Fprintf(w, "  %-8s %s channels configured, %d distinct\n",
			name, humanize.Comma(int64(s.Configured[name])), s.Distinct[name])
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Cache: %s, %s hits, %s misses\n",
		humanize.Bytes(s.CacheBytes), humanize.Comma(int64(s.CacheHits)), humanize.Comma(int64(s.CacheMisses)))
	return err
}

// kernelSampleRate converts the tick into a WAV sample rate in Hz.
func kernelSampleRate(tick float64) (int, error) {
	rate := math.Round(units.Second / tick)
	if rate < 1 || rate > math.MaxUint32 {
		return 0, fmt.Errorf("tick %g ns has no WAV sample rate", tick/units.Nanosecond)
	}
	return int(rate), nil
}

// dumpFilter writes the time-domain kernel of one channel filter to path,
// normalized to its peak. It returns the number of samples written.
func dumpFilter(db *noisedb.Database, ch int, kind noisedb.FilterKind, path string) (int, error) {
	f, err := db.Filter(ch, kind)
	if err != nil {
		return 0, err
	}
	sy, err := synth.New(db.NumberSamples(), db.SampleTime())
	if err != nil {
		return 0, err
	}
	kernel, err := sy.Inverse(f.Coefficients())
	if err != nil {
		return 0, err
	}
	rate, err := kernelSampleRate(sy.Tick())
	if err != nil {
		return 0, err
	}
	if err := waveio.WriteWaveform(path, kernel, rate, waveio.Peak(kernel)); err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return sy.Len(), nil
}
