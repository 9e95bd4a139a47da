package obstacle

import (
	"github.com/paulmach/orb"
)

// Merger joins open segments of the same kind which share an end point.
// This reduces the number of polylines which have to be rasterized.
type Merger struct {
	segments        []*Segment
	mergeCount      int
	unmergableCount int
}

func NewMerger(segments []*Segment) *Merger {
	return &Merger{
		segments: segments,
	}
}

func (m *Merger) Merge() {
	endpoints := make(map[orb.Point][]*Segment)

	candidates := make([]*Segment, 0, len(m.segments))
	for _, seg := range m.segments {
		if len(seg.Points) < 2 || seg.Closed() {
			m.unmergableCount++
			continue
		}
		candidates = append(candidates, seg)
		start := seg.Points[0]
		end := seg.Points[len(seg.Points)-1]
		endpoints[start] = append(endpoints[start], seg)
		endpoints[end] = append(endpoints[end], seg)
	}

	merged := make(map[*Segment]bool)
	result := make([]*Segment, 0, len(m.segments))
	for _, seg := range m.segments {
		if len(seg.Points) < 2 || seg.Closed() {
			result = append(result, seg)
		}
	}

	for _, seg := range candidates {
		if merged[seg] {
			continue
		}
		merged[seg] = true

		current := seg
		for {
			end := current.Points[len(current.Points)-1]
			foundNext := false
			for _, next := range endpoints[end] {
				if merged[next] || next.Kind != current.Kind || next.Points[0] != end {
					continue
				}
				current = mergeTwoSegments(current, next)
				merged[next] = true
				m.mergeCount++
				foundNext = true
				break
			}
			if !foundNext || current.Closed() {
				break
			}
		}
		result = append(result, current)
	}

	m.segments = result
}

func mergeTwoSegments(s1, s2 *Segment) *Segment {
	merged := &Segment{
		ID:     s1.ID,
		Kind:   s1.Kind,
		Tags:   s1.Tags,
		Points: make([]orb.Point, 0, len(s1.Points)+len(s2.Points)-1),
	}
	merged.Points = append(merged.Points, s1.Points...)
	// the first point of s2 equals the last one of s1
	merged.Points = append(merged.Points, s2.Points[1:]...)
	return merged
}

func (m *Merger) Segments() []*Segment { return m.segments }
func (m *Merger) MergeCount() int      { return m.mergeCount }

// Number of segments which were skipped because they are areas or have less than two points
func (m *Merger) UnmergableCount() int { return m.unmergableCount }
