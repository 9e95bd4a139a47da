package path

import (
	"math"
	"testing"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExact(t *testing.T, g *grid.Grid, k float64) *HeadingDijkstra {
	t.Helper()
	d, err := NewHeadingDijkstra(g, k)
	require.NoError(t, err)
	return d
}

func TestHeadingDijkstraDiagonal(t *testing.T) {
	g := grid.NewFreeGrid(3, 3)
	origin, destination := grid.Position{X: 0, Y: 0}, grid.Position{X: 2, Y: 2}
	for _, k := range []float64{0, 100} {
		d := newExact(t, g, k)
		res, err := d.ComputePlan(origin, destination)
		require.NoError(t, err)
		assertConsistentResult(t, res, origin, destination, g, k)
		assert.Equal(t, []int{1, 1}, res.ActionIds())
		assert.InDelta(t, 2*math.Sqrt2, res.Cost(), 1e-12)
	}
}

func TestHeadingDijkstraOriginIsDestination(t *testing.T) {
	d := newExact(t, grid.NewFreeGrid(2, 2), 1)
	p := grid.Position{X: 1, Y: 1}
	res, err := d.ComputePlan(p, p)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, []grid.Position{p}, res.Path)
	assert.Empty(t, res.Actions)
	assert.Equal(t, []grid.Position{p}, d.GetSearchSpace())
}

func TestHeadingDijkstraNoPath(t *testing.T) {
	g := gridFromRows(t,
		"....",
		"###.",
		".#..",
		".#..",
	)
	d := newExact(t, g, 3)
	res, err := d.ComputePlan(grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 3})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNoPath)
	assert.Equal(t, 0, d.GetStaleEntries())

	res, err = d.ComputePlan(grid.Position{X: 0, Y: 0}, grid.Position{X: 0, Y: 4})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, grid.ErrInvalidPosition)
}

func TestNewHeadingDijkstraRejectsNegativePenalty(t *testing.T) {
	_, err := NewHeadingDijkstra(grid.NewFreeGrid(2, 2), -1)
	assert.ErrorIs(t, err, ErrNegativePenalty)
}

// The heuristic ignores the turning penalty, so the weighted search settles for a more expensive path here.
func TestWeightedAStarIsNotOptimalWithPenalty(t *testing.T) {
	for _, tc := range []struct {
		seed         int64
		aStar, exact float64
	}{
		{1, 21.721, 21.471},
		{2, 12.657, 12.407},
	} {
		g, origin, destination := randomGrid(tc.seed, 20, 15, 0.25)

		aStarRes, err := newAStar(t, g, 1).ComputePlan(origin, destination)
		require.NoError(t, err)
		exactRes, err := newExact(t, g, 1).ComputePlan(origin, destination)
		require.NoError(t, err)

		assert.InDelta(t, tc.aStar, aStarRes.Cost(), 1e-3, "seed %v", tc.seed)
		assert.InDelta(t, tc.exact, exactRes.Cost(), 1e-3, "seed %v", tc.seed)
		assert.Greater(t, aStarRes.Cost(), exactRes.Cost()+0.1, "seed %v", tc.seed)
	}
}

// Without turning penalty the euclidean heuristic is consistent and both searches find the optimum.
// With a penalty the heuristic still ignores the turns, the weighted search may return a more expensive path.
func TestWeightedAStarAgainstExactSearch(t *testing.T) {
	for _, k := range []float64{0, 1, 5, 50} {
		for seed := int64(1); seed <= 15; seed++ {
			g, origin, destination := randomGrid(seed, 20, 15, 0.25)

			aStarRes, aStarErr := newAStar(t, g, k).ComputePlan(origin, destination)
			exactRes, exactErr := newExact(t, g, k).ComputePlan(origin, destination)

			if exactErr != nil {
				require.ErrorIs(t, exactErr, ErrNoPath)
				assert.ErrorIs(t, aStarErr, ErrNoPath, "k %v, seed %v", k, seed)
				continue
			}
			require.NoError(t, aStarErr, "k %v, seed %v", k, seed)
			assertConsistentResult(t, exactRes, origin, destination, g, k)
			assertConsistentResult(t, aStarRes, origin, destination, g, k)

			if k == 0 {
				assert.InDelta(t, exactRes.Cost(), aStarRes.Cost(), 1e-9, "seed %v", seed)
			} else {
				assert.GreaterOrEqual(t, aStarRes.Cost(), exactRes.Cost()-1e-9, "k %v, seed %v", k, seed)
			}
		}
	}
}
