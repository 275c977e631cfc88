package noisedb

import "fmt"

// fakeAnode maps channel i to planes[i] and serves per-plane paths keyed by
// face and index.
type fakeAnode struct {
	planes []WirePlaneID
	paths  map[[2]int][][]float64
	calls  int
}

func newFakeAnode(planes []WirePlaneID) *fakeAnode {
	return &fakeAnode{planes: planes, paths: map[[2]int][][]float64{}}
}

func (a *fakeAnode) Channels() []int {
	chans := make([]int, len(a.planes))
	for i := range chans {
		chans[i] = i
	}
	return chans
}

func (a *fakeAnode) Resolve(ch int) WirePlaneID {
	if ch < 0 || ch >= len(a.planes) {
		return 0
	}
	return a.planes[ch]
}

func (a *fakeAnode) Plane(face, index int) (Plane, error) {
	a.calls++
	p, ok := a.paths[[2]int{face, index}]
	if !ok {
		return nil, fmt.Errorf("no plane %d/%d", face, index)
	}
	return fakePlane(p), nil
}

type fakePlane [][]float64

func (p fakePlane) ResponsePaths() [][]float64 { return p }
