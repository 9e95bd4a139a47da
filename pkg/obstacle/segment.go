package obstacle

import (
	"github.com/paulmach/orb"
)

type Kind int

const (
	Unknown Kind = iota
	Building
	Barrier
	Wall
	Water
	Waterway
)

func (k Kind) String() string {
	return []string{"Unknown", "Building", "Barrier", "Wall", "Water", "Waterway"}[k]
}

// Segment is the outline of an obstacle. Points are (lon, lat).
type Segment struct {
	ID     int64
	Kind   Kind
	Points []orb.Point
	Tags   map[string]string
}

// Closed reports whether the segment is the outline of an area
func (s *Segment) Closed() bool {
	return len(s.Points) > 2 && s.Points[0] == s.Points[len(s.Points)-1]
}

func (s *Segment) Bound() orb.Bound {
	return orb.LineString(s.Points).Bound()
}

// Bound of all segments. Returns an empty bound at the origin if no segment has points.
func Bound(segments []*Segment) orb.Bound {
	var bound orb.Bound
	initialized := false
	for _, s := range segments {
		if len(s.Points) == 0 {
			continue
		}
		if !initialized {
			bound = s.Bound()
			initialized = true
			continue
		}
		bound = bound.Union(s.Bound())
	}
	return bound
}

// KindOf classifies a way by its tags. Unknown means the way is no obstacle.
func KindOf(tags map[string]string) Kind {
	if value, ok := tags["building"]; ok && value != "no" {
		return Building
	}
	if tags["barrier"] == "wall" || tags["wall"] != "" {
		return Wall
	}
	if _, ok := tags["barrier"]; ok {
		return Barrier
	}
	if tags["natural"] == "water" {
		return Water
	}
	if _, ok := tags["waterway"]; ok {
		return Waterway
	}
	return Unknown
}
