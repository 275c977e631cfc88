package noisedb

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/tphakala/go-channel-noisedb/internal/filtercache"
	"github.com/tphakala/go-channel-noisedb/internal/synth"
)

// Common errors returned by the database.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid noise database configuration")

	// ErrAnodeNotFound indicates the configured anode name is not bound.
	ErrAnodeNotFound = errors.New("anode not found")

	// ErrChannelOutOfRange indicates a channel id outside [0, NumChannels()).
	ErrChannelOutOfRange = errors.New("channel out of range")

	// ErrInvalidSelector indicates a channel selector that could not be decoded.
	ErrInvalidSelector = errors.New("invalid channel selector")
)

// TableStats reports the occupancy and lookup counters of one filter cache.
type TableStats = filtercache.Stats

// CacheStats reports every filter cache of a database.
type CacheStats struct {
	RC       TableStats
	Reconfig TableStats
	Plane    TableStats
	Waveform TableStats
}

// Entries returns the total number of cached filters.
func (s CacheStats) Entries() int {
	return s.RC.Entries + s.Reconfig.Entries + s.Plane.Entries + s.Waveform.Entries
}

// Option configures a Database.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the logger used for configuration progress. By default
// nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Database serves per-channel calibration values and filters.
//
// Queries may run concurrently with each other and with Update. A record
// returned before an Update keeps the values it had when it was read.
type Database struct {
	mu sync.RWMutex

	tick     float64
	nsamples int
	anode    Anode
	synth    *synth.Synthesizer
	logger   *log.Logger

	defaultFilter *Filter
	store         *recordStore
	groups        [][]int
	bad           []int

	rcCache       filtercache.Table[rcKey, *Filter]
	reconfigCache filtercache.Table[reconfigKey, *Filter]
	planeCache    filtercache.Table[int, *Filter]
	waveformCache filtercache.Table[int, *Filter]
}

// New binds cfg.Anode through anodes, creates one default record per anode
// channel and applies cfg.DefaultInfo followed by cfg.ChannelInfo in order.
func New(cfg *Config, anodes AnodeLookup, opts ...Option) (*Database, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if anodes == nil {
		return nil, fmt.Errorf("%w: %q (no anodes registered)", ErrAnodeNotFound, cfg.Anode)
	}
	anode, ok := anodes.LookupAnode(cfg.Anode)
	if !ok || anode == nil {
		return nil, fmt.Errorf("%w: %q", ErrAnodeNotFound, cfg.Anode)
	}

	sy, err := synth.New(cfg.NSamples, cfg.Tick)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	db := &Database{
		tick:          cfg.Tick,
		nsamples:      cfg.NSamples,
		anode:         anode,
		synth:         sy,
		logger:        o.logger,
		defaultFilter: newFilter(sy.Unity()),
		groups:        cloneGroups(cfg.Groups),
		bad:           append([]int(nil), cfg.Bad...),
	}

	// Channel ids are assumed to count from 0 without gaps.
	nchans := len(anode.Channels())
	db.store = newRecordStore(nchans, db.defaultFilter)
	db.logger.Printf("noise database with %d channels, %d samples", nchans, cfg.NSamples)

	if cfg.DefaultInfo != nil {
		all := *cfg.DefaultInfo
		all.Channels = ChannelRange(0, nchans-1)
		if err := db.update(all); err != nil {
			return nil, fmt.Errorf("default_info: %w", err)
		}
	}
	for i, u := range cfg.ChannelInfo {
		if err := db.update(u); err != nil {
			return nil, fmt.Errorf("channel_info[%d]: %w", i, err)
		}
	}
	db.logger.Printf("applied %d channel updates, %d filters cached",
		len(cfg.ChannelInfo), db.CacheStats().Entries())

	return db, nil
}

// Update applies one batch update. Every selected channel is checked first;
// if any is out of range nothing is changed.
func (db *Database) Update(u ChannelUpdate) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.update(u)
}

// Apply applies updates in order, stopping at the first error.
func (db *Database) Apply(updates ...ChannelUpdate) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, u := range updates {
		if err := db.update(u); err != nil {
			return fmt.Errorf("update %d: %w", i, err)
		}
	}
	return nil
}

func (db *Database) update(u ChannelUpdate) error {
	if err := db.store.validateRange(u.Channels); err != nil {
		return err
	}
	chans := u.Channels.Resolve(db.anode)
	if err := db.store.validate(chans); err != nil {
		return err
	}

	// Filters are built before any record changes so a failure leaves the
	// store untouched.
	var rcrc, config, noise, response *Filter
	var err error
	if u.RCRC != nil {
		if rcrc, err = db.rcrcFilter(*u.RCRC); err != nil {
			return err
		}
	}
	if u.Reconfig != nil {
		if config, err = db.reconfigFilter(*u.Reconfig); err != nil {
			return err
		}
	}
	if u.FreqMasks != nil {
		noise = db.freqMaskFilter(u.FreqMasks)
	}
	if u.Response != nil {
		if response, err = db.responseFilter(*u.Response); err != nil {
			return err
		}
	}

	for _, ch := range chans {
		r := &db.store.records[ch]
		setIf(&r.NominalBaseline, u.NominalBaseline)
		setIf(&r.GainCorrection, u.GainCorrection)
		setIf(&r.ResponseOffset, u.ResponseOffset)
		setIf(&r.MinRMSCut, u.MinRMSCut)
		setIf(&r.MaxRMSCut, u.MaxRMSCut)
		setIf(&r.PadWindowFront, u.PadWindowFront)
		setIf(&r.PadWindowBack, u.PadWindowBack)
		if rcrc != nil {
			r.RCRC = rcrc
		}
		if config != nil {
			r.Config = config
		}
		if noise != nil {
			r.Noise = noise
		}
		if response != nil {
			r.Response = response
		}
	}
	return nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func (db *Database) rcrcFilter(tau float64) (*Filter, error) {
	return db.rcCache.Get(quantizeRC(tau), func() (*Filter, error) {
		return newFilter(db.synth.RC(tau)), nil
	})
}

func (db *Database) reconfigFilter(r ReconfigSpec) (*Filter, error) {
	if r.IsZero() {
		return db.defaultFilter, nil
	}
	return db.reconfigCache.Get(quantizeReconfig(r), func() (*Filter, error) {
		from := synth.Electronics{Gain: r.From.Gain, Shaping: r.From.Shaping}
		to := synth.Electronics{Gain: r.To.Gain, Shaping: r.To.Shaping}
		return newFilter(db.synth.Reconfig(from, to)), nil
	})
}

// freqMaskFilter is not cached: masks carry no identifying key.
func (db *Database) freqMaskFilter(masks []FreqMask) *Filter {
	if len(masks) == 0 {
		return db.defaultFilter
	}
	sm := make([]synth.Mask, len(masks))
	for i, m := range masks {
		sm[i] = synth.Mask{Value: m.Value, LoBin: m.LoBin, HiBin: m.HiBin}
	}
	return newFilter(db.synth.FreqMask(sm))
}

func (db *Database) responseFilter(r ResponseSpec) (*Filter, error) {
	switch {
	case r.WirePlane != nil:
		wpid := *r.WirePlane
		return db.planeCache.Get(wpid.Ident(), func() (*Filter, error) {
			plane, err := db.anode.Plane(wpid.Face(), wpid.Index())
			if err != nil {
				return nil, fmt.Errorf("field response for plane %v: %w", wpid, err)
			}
			return newFilter(db.synth.PlaneResponse(plane.ResponsePaths())), nil
		})

	case r.Waveform != nil && r.WaveformID != nil:
		return db.waveformCache.Get(*r.WaveformID, func() (*Filter, error) {
			return newFilter(db.synth.Waveform(r.Waveform)), nil
		})

	default:
		return db.defaultFilter, nil
	}
}

// NumberSamples returns the length of every filter.
func (db *Database) NumberSamples() int { return db.nsamples }

// SampleTime returns the sample period.
func (db *Database) SampleTime() float64 { return db.tick }

// NumChannels returns the number of channel records.
func (db *Database) NumChannels() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.store.len()
}

// DefaultFilter returns the all-ones filter held by unconfigured channels.
func (db *Database) DefaultFilter() *Filter { return db.defaultFilter }

// ChannelGroups returns a copy of the configured channel groups.
func (db *Database) ChannelGroups() [][]int { return cloneGroups(db.groups) }

// BadChannels returns a copy of the configured bad channel list.
func (db *Database) BadChannels() []int { return append([]int(nil), db.bad...) }

// Record returns a copy of a channel's record.
func (db *Database) Record(ch int) (ChannelRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	r, err := db.store.get(ch)
	if err != nil {
		return ChannelRecord{}, err
	}
	return *r, nil
}

// NominalBaseline returns the channel's nominal baseline.
func (db *Database) NominalBaseline(ch int) (float64, error) {
	r, err := db.Record(ch)
	return r.NominalBaseline, err
}

// GainCorrection returns the channel's gain correction.
func (db *Database) GainCorrection(ch int) (float64, error) {
	r, err := db.Record(ch)
	return r.GainCorrection, err
}

// ResponseOffset returns the channel's response offset.
func (db *Database) ResponseOffset(ch int) (float64, error) {
	r, err := db.Record(ch)
	return r.ResponseOffset, err
}

// MinRMSCut returns the channel's lower RMS bound.
func (db *Database) MinRMSCut(ch int) (float64, error) {
	r, err := db.Record(ch)
	return r.MinRMSCut, err
}

// MaxRMSCut returns the channel's upper RMS bound.
func (db *Database) MaxRMSCut(ch int) (float64, error) {
	r, err := db.Record(ch)
	return r.MaxRMSCut, err
}

// PadWindowFront returns the channel's front padding window.
func (db *Database) PadWindowFront(ch int) (float64, error) {
	r, err := db.Record(ch)
	return r.PadWindowFront, err
}

// PadWindowBack returns the channel's back padding window.
func (db *Database) PadWindowBack(ch int) (float64, error) {
	r, err := db.Record(ch)
	return r.PadWindowBack, err
}

// Filter returns the channel's filter of the given kind.
func (db *Database) Filter(ch int, kind FilterKind) (*Filter, error) {
	r, err := db.Record(ch)
	if err != nil {
		return nil, err
	}
	f := r.Filter(kind)
	if f == nil {
		return nil, fmt.Errorf("unknown filter kind %d", int(kind))
	}
	return f, nil
}

// RCRC returns the channel's RC⊗RC filter.
func (db *Database) RCRC(ch int) (*Filter, error) { return db.Filter(ch, FilterRCRC) }

// Config returns the channel's electronics reconfiguration filter.
func (db *Database) Config(ch int) (*Filter, error) { return db.Filter(ch, FilterConfig) }

// Noise returns the channel's frequency mask.
func (db *Database) Noise(ch int) (*Filter, error) { return db.Filter(ch, FilterNoise) }

// Response returns the channel's field response spectrum.
func (db *Database) Response(ch int) (*Filter, error) { return db.Filter(ch, FilterResponse) }

// CacheStats returns a snapshot of every filter cache.
func (db *Database) CacheStats() CacheStats {
	return CacheStats{
		RC:       db.rcCache.Stats(),
		Reconfig: db.reconfigCache.Stats(),
		Plane:    db.planeCache.Stats(),
		Waveform: db.waveformCache.Stats(),
	}
}

func cloneGroups(groups [][]int) [][]int {
	if groups == nil {
		return nil
	}
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = append([]int(nil), g...)
	}
	return out
}
