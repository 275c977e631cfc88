package noisedb

import "fmt"

// WirePlaneLayer identifies one of the three wire layers of a face.
type WirePlaneLayer int

// Wire layers. The values are bit flags so they can be combined into masks.
const (
	LayerUnknown WirePlaneLayer = 0
	LayerU       WirePlaneLayer = 1
	LayerV       WirePlaneLayer = 2
	LayerW       WirePlaneLayer = 4
)

const (
	layerMask = 0x7
	faceShift = 3
	apaShift  = 4
)

// WirePlaneID packs a layer, a face and an anode (APA) number into one
// integer: layer flag in bits 0-2, face in bit 3, APA above.
type WirePlaneID int

// NewWirePlaneID builds an id from its parts.
func NewWirePlaneID(layer WirePlaneLayer, face, apa int) WirePlaneID {
	return WirePlaneID(int(layer)&layerMask | (face&1)<<faceShift | apa<<apaShift)
}

// Ident returns the packed integer.
func (w WirePlaneID) Ident() int { return int(w) }

// Layer returns the layer flag.
func (w WirePlaneID) Layer() WirePlaneLayer { return WirePlaneLayer(int(w) & layerMask) }

// Face returns the face number, 0 or 1.
func (w WirePlaneID) Face() int { return (int(w) >> faceShift) & 1 }

// APA returns the anode number.
func (w WirePlaneID) APA() int { return int(w) >> apaShift }

// Index returns 0, 1 or 2 for the U, V and W layers and -1 otherwise.
func (w WirePlaneID) Index() int {
	switch w.Layer() {
	case LayerU:
		return 0
	case LayerV:
		return 1
	case LayerW:
		return 2
	default:
		return -1
	}
}

// Valid reports whether the id names exactly one layer.
func (w WirePlaneID) Valid() bool { return w.Index() >= 0 }

func (w WirePlaneID) String() string {
	layers := [...]string{"U", "V", "W"}
	if !w.Valid() {
		return fmt.Sprintf("wpid(%d)", int(w))
	}
	return fmt.Sprintf("%s%d/apa%d", layers[w.Index()], w.Face(), w.APA())
}

// Anode is the read-only view of detector geometry the database needs.
type Anode interface {
	// Channels lists every channel id in the anode's native order.
	Channels() []int

	// Resolve returns the wire plane a channel reads out.
	Resolve(channel int) WirePlaneID

	// Plane returns the plane at the given face and layer index.
	Plane(face, index int) (Plane, error)
}

// Plane exposes the field response of one wire plane.
type Plane interface {
	// ResponsePaths returns the induced-current waveforms of every wire
	// path in the plane, each sampled at the database tick.
	ResponsePaths() [][]float64
}

// AnodeLookup resolves the anode name given in a configuration.
type AnodeLookup interface {
	LookupAnode(name string) (Anode, bool)
}

// Anodes is a name-indexed AnodeLookup.
type Anodes map[string]Anode

// LookupAnode implements AnodeLookup.
func (a Anodes) LookupAnode(name string) (Anode, bool) {
	an, ok := a[name]
	return an, ok
}
