package noisedb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-channel-noisedb/internal/waveio"
)

const fullDoc = `
tick: 500
nsamples: 4096
anode: TestAnode
groups: [[0, 1, 2], [3, 4]]
bad: [1, 42]
default_info:
  channels: 0
  min_rms_cut: 1.0
channel_info:
  - channels: {first: 0, last: 3}
    nominal_baseline: 2048
    gain_correction: 0.9
    response_offset: 79.1
    max_rms_cut: 30
    pad_window_front: 10
    pad_window_back: 20
    rcrc: 1000000
  - channels: [4, 5]
    reconfig:
      from: {gain: 1.2497e-12, shaping: 1100}
      to: {gain: 2.2430e-12, shaping: 2200}
    freqmasks:
      - {value: 0, lobin: 169, hibin: 173}
      - {value: 0.5, lobin: 513, hibin: 516}
  - channels: {wpid: 4}
    response: {wpid: 4}
  - channels: 7
    response: {waveform: [0, 1, 0.5], waveformid: 3}
`

func TestParseConfig_Full(t *testing.T) {
	cfg, err := ParseConfig([]byte(fullDoc), ".")
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Tick)
	assert.Equal(t, 4096, cfg.NSamples)
	assert.Equal(t, "TestAnode", cfg.Anode)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, cfg.Groups)
	assert.Equal(t, []int{1, 42}, cfg.Bad)

	require.NotNil(t, cfg.DefaultInfo)
	assert.Equal(t, 1.0, *cfg.DefaultInfo.MinRMSCut)

	require.Len(t, cfg.ChannelInfo, 4)

	first := cfg.ChannelInfo[0]
	assert.Equal(t, ChannelRange(0, 3), first.Channels)
	assert.Equal(t, 2048.0, *first.NominalBaseline)
	assert.Equal(t, 0.9, *first.GainCorrection)
	assert.Equal(t, 79.1, *first.ResponseOffset)
	assert.Nil(t, first.MinRMSCut)
	assert.Equal(t, 30.0, *first.MaxRMSCut)
	assert.Equal(t, 10.0, *first.PadWindowFront)
	assert.Equal(t, 20.0, *first.PadWindowBack)
	assert.Equal(t, 1e6, *first.RCRC)
	assert.Nil(t, first.Reconfig)
	assert.Nil(t, first.FreqMasks)
	assert.Nil(t, first.Response)

	second := cfg.ChannelInfo[1]
	assert.Equal(t, ChannelList(4, 5), second.Channels)
	require.NotNil(t, second.Reconfig)
	assert.Equal(t, Electronics{Gain: 1.2497e-12, Shaping: 1100}, second.Reconfig.From)
	assert.Equal(t, Electronics{Gain: 2.2430e-12, Shaping: 2200}, second.Reconfig.To)
	assert.Equal(t, []FreqMask{{Value: 0, LoBin: 169, HiBin: 173}, {Value: 0.5, LoBin: 513, HiBin: 516}}, second.FreqMasks)

	third := cfg.ChannelInfo[2]
	assert.Equal(t, PlaneChannels(4), third.Channels)
	require.NotNil(t, third.Response)
	require.NotNil(t, third.Response.WirePlane)
	assert.Equal(t, WirePlaneID(4), *third.Response.WirePlane)

	fourth := cfg.ChannelInfo[3]
	assert.Equal(t, SingleChannel(7), fourth.Channels)
	require.NotNil(t, fourth.Response)
	assert.Equal(t, []float64{0, 1, 0.5}, fourth.Response.Waveform)
	require.NotNil(t, fourth.Response.WaveformID)
	assert.Equal(t, 3, *fourth.Response.WaveformID)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"), ".")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, 500.0, cfg.Tick)
	assert.Equal(t, 9600, cfg.NSamples)
	assert.Equal(t, "AnodePlane", cfg.Anode)
}

func TestParseConfig_JSON(t *testing.T) {
	doc := `{"nsamples": 128, "channel_info": [{"channels": {"first": 1, "last": 2}, "rcrc": 5e5, "response": null}]}`
	cfg, err := ParseConfig([]byte(doc), ".")
	require.NoError(t, err)
	require.Len(t, cfg.ChannelInfo, 1)
	assert.Equal(t, ChannelRange(1, 2), cfg.ChannelInfo[0].Channels)
	assert.Equal(t, 5e5, *cfg.ChannelInfo[0].RCRC)
	assert.Nil(t, cfg.ChannelInfo[0].Response)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"ZeroSamples", "nsamples: 0"},
		{"NegativeTick", "tick: -1"},
		{"EmptyAnode", `anode: ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc), ".")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := ParseConfig([]byte("nsamples: [1, 2"), ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = ParseConfig([]byte("channel_info: [{rcrc: fast}]"), ".")
	require.Error(t, err)
}

func TestParseConfig_WaveformFile(t *testing.T) {
	dir := t.TempDir()
	samples := []float64{0, 0.5, -0.25}
	require.NoError(t, waveio.WriteWaveform(filepath.Join(dir, "resp.wav"), samples, 2000000, 0))

	doc := `
channel_info:
  - channels: 0
    response: {waveformfile: resp.wav, waveformid: 9}
`
	cfgPath := filepath.Join(dir, "noisedb.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o644))

	cfg, err := LoadConfig(cfgPath)
	require.NoError(t, err)

	got := cfg.ChannelInfo[0].Response.Waveform
	require.Len(t, got, len(samples))
	for i := range samples {
		assert.InDelta(t, samples[i], got[i], 1e-8)
	}
}

func TestParseConfig_WaveformFileMissing(t *testing.T) {
	doc := `
channel_info:
  - channels: 0
    response: {waveformfile: missing.wav, waveformid: 9}
`
	_, err := ParseConfig([]byte(doc), t.TempDir())
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_NotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/noisedb.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestReconfigSpec_IsZero(t *testing.T) {
	assert.True(t, ReconfigSpec{}.IsZero())
	assert.False(t, ReconfigSpec{To: Electronics{Shaping: 1}}.IsZero())
}
