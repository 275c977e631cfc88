package noisedb

import "fmt"

// ChannelRecord is the per-channel calibration and filter set.
type ChannelRecord struct {
	Channel         int
	NominalBaseline float64
	GainCorrection  float64
	ResponseOffset  float64
	MinRMSCut       float64
	MaxRMSCut       float64
	PadWindowFront  float64
	PadWindowBack   float64

	RCRC     *Filter
	Config   *Filter
	Noise    *Filter
	Response *Filter
}

func defaultRecord(ch int, def *Filter) ChannelRecord {
	return ChannelRecord{
		Channel:        ch,
		GainCorrection: defaultGainCorrection,
		MinRMSCut:      defaultMinRMSCut,
		MaxRMSCut:      defaultMaxRMSCut,
		RCRC:           def,
		Config:         def,
		Noise:          def,
		Response:       def,
	}
}

// Filter returns the filter of the given kind.
func (r *ChannelRecord) Filter(kind FilterKind) *Filter {
	switch kind {
	case FilterRCRC:
		return r.RCRC
	case FilterConfig:
		return r.Config
	case FilterNoise:
		return r.Noise
	case FilterResponse:
		return r.Response
	default:
		return nil
	}
}

// recordStore owns one record per channel id in [0, len).
type recordStore struct {
	records []ChannelRecord
}

func newRecordStore(n int, def *Filter) *recordStore {
	records := make([]ChannelRecord, n)
	for ch := range records {
		records[ch] = defaultRecord(ch, def)
	}
	return &recordStore{records: records}
}

func (s *recordStore) len() int { return len(s.records) }

func (s *recordStore) get(ch int) (*ChannelRecord, error) {
	if ch < 0 || ch >= len(s.records) {
		return nil, fmt.Errorf("%w: channel %d not in [0, %d)", ErrChannelOutOfRange, ch, len(s.records))
	}
	return &s.records[ch], nil
}

// validate checks every id before any record is touched.
func (s *recordStore) validate(chans []int) error {
	for _, ch := range chans {
		if _, err := s.get(ch); err != nil {
			return err
		}
	}
	return nil
}

// validateRange rejects a range selector reaching outside the store before
// it is expanded.
func (s *recordStore) validateRange(sel ChannelSelector) error {
	if sel.Kind != SelectRange || sel.Last < sel.First {
		return nil
	}
	if _, err := s.get(sel.First); err != nil {
		return err
	}
	_, err := s.get(sel.Last)
	return err
}
