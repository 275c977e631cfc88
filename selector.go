package noisedb

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SelectorKind tags the shape of a ChannelSelector.
type SelectorKind int

const (
	// SelectNone matches no channel.
	SelectNone SelectorKind = iota

	// SelectSingle matches one channel id.
	SelectSingle

	// SelectList matches an explicit list of ids, kept in order.
	SelectList

	// SelectRange matches the inclusive range First..Last.
	SelectRange

	// SelectPlane matches every channel of one wire plane.
	SelectPlane
)

// ChannelSelector names a set of channels in a batch update.
//
// In a configuration document it is written as an integer, a list of
// integers, {first, last} or {wpid}. Any other shape selects nothing.
type ChannelSelector struct {
	Kind  SelectorKind
	IDs   []int
	First int
	Last  int
	Plane WirePlaneID
}

// SingleChannel selects one channel.
func SingleChannel(id int) ChannelSelector {
	return ChannelSelector{Kind: SelectSingle, IDs: []int{id}}
}

// ChannelList selects the given channels in the given order.
func ChannelList(ids ...int) ChannelSelector {
	return ChannelSelector{Kind: SelectList, IDs: append([]int(nil), ids...)}
}

// ChannelRange selects first..last inclusive.
func ChannelRange(first, last int) ChannelSelector {
	return ChannelSelector{Kind: SelectRange, First: first, Last: last}
}

// PlaneChannels selects every channel that resolves to wpid.
func PlaneChannels(wpid WirePlaneID) ChannelSelector {
	return ChannelSelector{Kind: SelectPlane, Plane: wpid}
}

// Resolve expands the selector into channel ids. Ids are not checked
// against the anode; duplicates are kept. A plane selector needs anode and
// resolves to nothing without one.
func (s ChannelSelector) Resolve(anode Anode) []int {
	switch s.Kind {
	case SelectSingle, SelectList:
		return append([]int(nil), s.IDs...)

	case SelectRange:
		if s.Last < s.First {
			return nil
		}
		// The span may overflow int; it only sizes the first allocation.
		span := s.Last - s.First
		if span < 0 || span >= maxRangePrealloc {
			span = maxRangePrealloc - 1
		}
		ids := make([]int, 0, span+1)
		for ch := s.First; ; ch++ {
			ids = append(ids, ch)
			if ch == s.Last {
				break
			}
		}
		return ids

	case SelectPlane:
		if anode == nil {
			return nil
		}
		var ids []int
		for _, ch := range anode.Channels() {
			if anode.Resolve(ch) == s.Plane {
				ids = append(ids, ch)
			}
		}
		return ids

	default:
		return nil
	}
}

// UnmarshalYAML decodes the document forms of a selector.
func (s *ChannelSelector) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.AliasNode:
		return s.UnmarshalYAML(value.Alias)

	case yaml.ScalarNode:
		if value.Tag != "!!int" {
			*s = ChannelSelector{}
			return nil
		}
		var id int
		if err := value.Decode(&id); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidSelector, value.Line, err)
		}
		*s = SingleChannel(id)

	case yaml.SequenceNode:
		var ids []int
		if err := value.Decode(&ids); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidSelector, value.Line, err)
		}
		*s = ChannelSelector{Kind: SelectList, IDs: ids}

	case yaml.MappingNode:
		var m struct {
			First *int `yaml:"first"`
			Last  *int `yaml:"last"`
			WPID  *int `yaml:"wpid"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidSelector, value.Line, err)
		}
		switch {
		case m.First != nil && m.Last != nil:
			*s = ChannelRange(*m.First, *m.Last)
		case m.WPID != nil:
			*s = PlaneChannels(WirePlaneID(*m.WPID))
		default:
			*s = ChannelSelector{}
		}

	default:
		*s = ChannelSelector{}
	}
	return nil
}
