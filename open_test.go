package noisedb_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	noisedb "github.com/tphakala/go-channel-noisedb"
	"github.com/tphakala/go-channel-noisedb/internal/geometry"
)

const geometryDoc = `
planes:
  - {wpid: 1, first: 0, last: 3, paths: [[0, 1, 0.5]]}
  - {wpid: 2, first: 4, last: 7, paths: [[0, -1]]}
  - {wpid: 4, first: 8, last: 11, paths: [[1]]}
`

const configDoc = `
nsamples: 256
anode: TestAnode
groups: [[0, 1, 2, 3], [4, 5, 6, 7]]
bad: [9]
default_info:
  rcrc: 1000000
channel_info:
  - channels: {wpid: 2}
    gain_correction: 1.1
    response: {wpid: 2}
  - channels: {first: 8, last: 11}
    freqmasks: [{value: 0, lobin: 0, hibin: 1}]
  - channels: [0, 11]
    min_rms_cut: 2
  - channels: 5
    min_rms_cut: 3
`

func openTestDB(t *testing.T) *noisedb.Database {
	t.Helper()
	anode, err := geometry.Parse([]byte(geometryDoc))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "noisedb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configDoc), 0o644))

	db, err := noisedb.Open(path, noisedb.Anodes{"TestAnode": anode})
	require.NoError(t, err)
	return db
}

func TestOpen_EndToEnd(t *testing.T) {
	db := openTestDB(t)

	assert.Equal(t, 12, db.NumChannels())
	assert.Equal(t, 256, db.NumberSamples())
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}, db.ChannelGroups())
	assert.Equal(t, []int{9}, db.BadChannels())

	for ch := range 12 {
		gain, err := db.GainCorrection(ch)
		require.NoError(t, err)
		resp, err := db.Response(ch)
		require.NoError(t, err)
		if ch >= 4 && ch <= 7 {
			assert.Equal(t, 1.1, gain, "channel %d", ch)
			assert.NotSame(t, db.DefaultFilter(), resp, "channel %d", ch)
		} else {
			assert.Equal(t, 1.0, gain, "channel %d", ch)
			assert.Same(t, db.DefaultFilter(), resp, "channel %d", ch)
		}
	}

	want := map[int]float64{0: 2, 11: 2, 5: 3, 6: 0.5}
	for ch, w := range want {
		v, err := db.MinRMSCut(ch)
		require.NoError(t, err)
		assert.Equal(t, w, v, "channel %d", ch)
	}

	noise, err := db.Noise(10)
	require.NoError(t, err)
	for k := range noise.Len() {
		require.Equal(t, complex(0, 0), noise.At(k))
	}

	stats := db.CacheStats()
	assert.Equal(t, 1, stats.RC.Entries)
	assert.Equal(t, 1, stats.Plane.Entries)
	assert.Equal(t, 2, stats.Entries())
}

func TestOpen_SharedFilters(t *testing.T) {
	db := openTestDB(t)

	first, err := db.RCRC(0)
	require.NoError(t, err)
	for ch := 1; ch < db.NumChannels(); ch++ {
		f, err := db.RCRC(ch)
		require.NoError(t, err)
		assert.Same(t, first, f)
	}

	r4, err := db.Response(4)
	require.NoError(t, err)
	r7, err := db.Response(7)
	require.NoError(t, err)
	assert.Same(t, r4, r7)
}

func TestOpen_Errors(t *testing.T) {
	anode, err := geometry.Parse([]byte(geometryDoc))
	require.NoError(t, err)

	_, err = noisedb.Open(filepath.Join(t.TempDir(), "missing.yaml"), noisedb.Anodes{"TestAnode": anode})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "noisedb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configDoc), 0o644))
	_, err = noisedb.Open(path, noisedb.Anodes{"Other": anode})
	require.ErrorIs(t, err, noisedb.ErrAnodeNotFound)
}
