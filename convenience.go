package noisedb

// Open loads a configuration file and builds a database from it.
func Open(path string, anodes AnodeLookup, opts ...Option) (*Database, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, anodes, opts...)
}

// Float returns a pointer to v, for building ChannelUpdate literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// PlaneID returns a pointer to v.
func PlaneID(v WirePlaneID) *WirePlaneID { return &v }
