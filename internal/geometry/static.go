// Package geometry provides an in-memory anode for tools and tests.
//
// A StaticAnode is described by its wire planes: each plane owns a
// contiguous channel range and the induced-current waveforms of its wire
// paths.
package geometry

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	noisedb "github.com/tphakala/go-channel-noisedb"
)

// PlaneSpec describes one wire plane.
type PlaneSpec struct {
	// WPID is the packed wire plane id.
	WPID noisedb.WirePlaneID `yaml:"wpid"`

	// First and Last bound the plane's channels, inclusive.
	First int `yaml:"first"`
	Last  int `yaml:"last"`

	// Paths holds one current waveform per wire path.
	Paths [][]float64 `yaml:"paths"`
}

// Description is the document form of a StaticAnode.
type Description struct {
	Planes []PlaneSpec `yaml:"planes"`
}

type planeKey struct{ face, index int }

// StaticAnode implements noisedb.Anode over fixed plane descriptions.
type StaticAnode struct {
	channels []int
	planeOf  map[int]noisedb.WirePlaneID
	planes   map[planeKey]*StaticPlane
}

// StaticPlane implements noisedb.Plane.
type StaticPlane struct {
	id    noisedb.WirePlaneID
	paths [][]float64
}

// ID returns the plane's wire plane id.
func (p *StaticPlane) ID() noisedb.WirePlaneID { return p.id }

// ResponsePaths implements noisedb.Plane.
func (p *StaticPlane) ResponsePaths() [][]float64 { return p.paths }

// New builds an anode from plane descriptions. Channels are enumerated plane
// by plane in the order given.
func New(planes ...PlaneSpec) (*StaticAnode, error) {
	a := &StaticAnode{
		planeOf: make(map[int]noisedb.WirePlaneID),
		planes:  make(map[planeKey]*StaticPlane),
	}
	for i, p := range planes {
		if !p.WPID.Valid() {
			return nil, fmt.Errorf("geometry: plane %d: invalid wpid %d", i, int(p.WPID))
		}
		if p.Last < p.First {
			return nil, fmt.Errorf("geometry: plane %d: last %d < first %d", i, p.Last, p.First)
		}
		key := planeKey{face: p.WPID.Face(), index: p.WPID.Index()}
		if _, dup := a.planes[key]; dup {
			return nil, fmt.Errorf("geometry: plane %d: duplicate plane %v", i, p.WPID)
		}
		a.planes[key] = &StaticPlane{id: p.WPID, paths: p.Paths}

		for ch := p.First; ch <= p.Last; ch++ {
			if _, dup := a.planeOf[ch]; dup {
				return nil, fmt.Errorf("geometry: plane %d: channel %d already assigned", i, ch)
			}
			a.planeOf[ch] = p.WPID
			a.channels = append(a.channels, ch)
		}
	}
	return a, nil
}

// Parse builds an anode from a YAML or JSON description.
func Parse(data []byte) (*StaticAnode, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("geometry: failed to parse description: %w", err)
	}
	return New(d.Planes...)
}

// Load reads and parses a description file.
func Load(path string) (*StaticAnode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geometry: failed to read description: %w", err)
	}
	return Parse(data)
}

// Channels implements noisedb.Anode.
func (a *StaticAnode) Channels() []int { return slices.Clone(a.channels) }

// Resolve implements noisedb.Anode. Unknown channels resolve to the zero id.
func (a *StaticAnode) Resolve(channel int) noisedb.WirePlaneID {
	return a.planeOf[channel]
}

// Plane implements noisedb.Anode.
func (a *StaticAnode) Plane(face, index int) (noisedb.Plane, error) {
	p, ok := a.planes[planeKey{face: face, index: index}]
	if !ok {
		return nil, fmt.Errorf("geometry: no plane at face %d index %d", face, index)
	}
	return p, nil
}
