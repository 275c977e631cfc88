package noisedb

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-channel-noisedb/internal/waveio"
)

// Config is the configuration document of a Database.
//
// Documents may be written in YAML or JSON. All quantities are in the units
// of package internal/units (tick 0.5 µs is 500).
type Config struct {
	// Tick is the sample period shared by every filter.
	Tick float64 `yaml:"tick"`

	// NSamples is the length of every filter.
	NSamples int `yaml:"nsamples"`

	// Anode names the geometry the database binds to.
	Anode string `yaml:"anode"`

	// Groups lists channel groups for coherent noise removal. Not
	// interpreted by the database.
	Groups [][]int `yaml:"groups"`

	// Bad lists channels flagged as bad. Not interpreted by the database.
	Bad []int `yaml:"bad"`

	// DefaultInfo, if set, is applied to every channel before ChannelInfo.
	// Its selector is ignored.
	DefaultInfo *ChannelUpdate `yaml:"default_info"`

	// ChannelInfo is applied in order; later entries override earlier ones.
	ChannelInfo []ChannelUpdate `yaml:"channel_info"`
}

// ChannelUpdate sets any subset of a channel record's fields on every
// channel its selector matches. Nil fields are left untouched.
type ChannelUpdate struct {
	Channels ChannelSelector `yaml:"channels"`

	NominalBaseline *float64 `yaml:"nominal_baseline"`
	GainCorrection  *float64 `yaml:"gain_correction"`
	ResponseOffset  *float64 `yaml:"response_offset"`
	MinRMSCut       *float64 `yaml:"min_rms_cut"`
	MaxRMSCut       *float64 `yaml:"max_rms_cut"`
	PadWindowFront  *float64 `yaml:"pad_window_front"`
	PadWindowBack   *float64 `yaml:"pad_window_back"`

	// RCRC is the RC time constant.
	RCRC *float64 `yaml:"rcrc"`

	Reconfig *ReconfigSpec `yaml:"reconfig"`

	// FreqMasks builds the noise filter. A nil slice leaves the filter
	// untouched; an empty one resets it to the default.
	FreqMasks []FreqMask `yaml:"freqmasks"`

	Response *ResponseSpec `yaml:"response"`
}

// Electronics is one front-end gain / shaping-time setting.
type Electronics struct {
	Gain    float64 `yaml:"gain"`
	Shaping float64 `yaml:"shaping"`
}

// ReconfigSpec describes a channel read out with From electronics that must
// be corrected to To.
type ReconfigSpec struct {
	From Electronics `yaml:"from"`
	To   Electronics `yaml:"to"`
}

// IsZero reports whether no parameter is set.
func (r ReconfigSpec) IsZero() bool {
	return r == ReconfigSpec{}
}

// FreqMask sets bins LoBin.. of the noise filter to Value.
type FreqMask struct {
	Value float64 `yaml:"value"`
	LoBin int     `yaml:"lobin"`
	HiBin int     `yaml:"hibin"`
}

// ResponseSpec picks the field response either from a wire plane of the
// anode or from an explicit waveform identified by WaveformID.
type ResponseSpec struct {
	WirePlane *WirePlaneID `yaml:"wpid"`

	Waveform   []float64 `yaml:"waveform"`
	WaveformID *int      `yaml:"waveformid"`

	// WaveformFile is a WAV file loaded into Waveform by ParseConfig.
	// Relative paths are resolved against the configuration file.
	WaveformFile string `yaml:"waveformfile"`
}

// DefaultConfig returns a configuration with default tick, sample count and
// anode name and no updates.
func DefaultConfig() Config {
	return Config{
		Tick:     DefaultTick,
		NSamples: DefaultNSamples,
		Anode:    DefaultAnode,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.NSamples <= 0 {
		return fmt.Errorf("%w: nsamples must be positive: %d", ErrInvalidConfig, c.NSamples)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive: %g", ErrInvalidConfig, c.Tick)
	}
	if c.Anode == "" {
		return fmt.Errorf("%w: anode name is empty", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads and parses a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data, filepath.Dir(path))
}

// ParseConfig decodes a YAML or JSON document over DefaultConfig, loads
// waveform files relative to baseDir and validates the result.
func ParseConfig(data []byte, baseDir string) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DefaultInfo != nil {
		if err := loadWaveformFile(cfg.DefaultInfo, baseDir); err != nil {
			return nil, err
		}
	}
	for i := range cfg.ChannelInfo {
		if err := loadWaveformFile(&cfg.ChannelInfo[i], baseDir); err != nil {
			return nil, fmt.Errorf("channel_info[%d]: %w", i, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadWaveformFile(u *ChannelUpdate, baseDir string) error {
	r := u.Response
	if r == nil || r.WaveformFile == "" || r.Waveform != nil {
		return nil
	}
	path := r.WaveformFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	samples, err := waveio.ReadWaveform(path)
	if err != nil {
		return fmt.Errorf("%w: response waveform: %v", ErrInvalidConfig, err)
	}
	r.Waveform = samples
	return nil
}
