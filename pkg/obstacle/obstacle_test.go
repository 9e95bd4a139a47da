package obstacle

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		tags map[string]string
		want Kind
	}{
		{map[string]string{"building": "yes"}, Building},
		{map[string]string{"building": "no"}, Unknown},
		{map[string]string{"barrier": "fence"}, Barrier},
		{map[string]string{"barrier": "wall"}, Wall},
		{map[string]string{"wall": "dry_stone"}, Wall},
		{map[string]string{"natural": "water"}, Water},
		{map[string]string{"natural": "wood"}, Unknown},
		{map[string]string{"waterway": "river"}, Waterway},
		{map[string]string{"highway": "primary"}, Unknown},
		{nil, Unknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KindOf(tc.tags), "tags %v", tc.tags)
	}
	assert.Equal(t, "Waterway", Waterway.String())
}

func TestBound(t *testing.T) {
	segments := []*Segment{
		{ID: 1, Points: []orb.Point{{1, 1}, {2, 3}}},
		{ID: 2},
		{ID: 3, Points: []orb.Point{{-1, 2}, {0, 0.5}}},
	}
	bound := Bound(segments)
	assert.Equal(t, orb.Point{-1, 0.5}, bound.Min)
	assert.Equal(t, orb.Point{2, 3}, bound.Max)

	assert.Equal(t, orb.Bound{}, Bound(nil))
}

func TestMerge(t *testing.T) {
	a := &Segment{ID: 1, Kind: Wall, Points: []orb.Point{{0, 0}, {1, 0}}}
	b := &Segment{ID: 2, Kind: Wall, Points: []orb.Point{{1, 0}, {2, 0}}}
	c := &Segment{ID: 3, Kind: Wall, Points: []orb.Point{{2, 0}, {2, 1}}}
	// shares an end point but has another kind
	d := &Segment{ID: 4, Kind: Barrier, Points: []orb.Point{{2, 1}, {3, 1}}}
	area := &Segment{ID: 5, Kind: Building, Points: []orb.Point{{5, 5}, {6, 5}, {6, 6}, {5, 5}}}
	single := &Segment{ID: 6, Kind: Barrier, Points: []orb.Point{{9, 9}}}

	m := NewMerger([]*Segment{a, b, c, d, area, single})
	m.Merge()

	assert.Equal(t, 2, m.MergeCount())
	assert.Equal(t, 2, m.UnmergableCount())
	require.Len(t, m.Segments(), 4)

	var wall *Segment
	for _, s := range m.Segments() {
		if s.Kind == Wall {
			wall = s
		}
	}
	require.NotNil(t, wall)
	assert.Equal(t, int64(1), wall.ID)
	assert.Equal(t, []orb.Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, wall.Points)
	// the input segments are not modified
	assert.Len(t, a.Points, 2)

	assert.True(t, area.Closed())
	assert.False(t, a.Closed())
}
