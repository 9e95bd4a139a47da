package path

import (
	"math"
	"testing"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/stretchr/testify/assert"
)

func TestDistanceCost(t *testing.T) {
	for _, m := range grid.Moves {
		if m.Id%2 == 0 {
			assert.Equal(t, 1.0, DistanceCost(m), "move %v", m.Id)
		} else {
			assert.Equal(t, math.Sqrt2, DistanceCost(m), "move %v", m.Id)
		}
	}
}

func TestAngleDifference(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{0, 180, 180},
		{180, 0, 180},
		{315, 45, 90},
		{45, 315, 90},
		{0, 270, 90},
		{225, 45, 180},
		{90, 135, 45},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AngleDifference(tc.a, tc.b), "AngleDifference(%v, %v)", tc.a, tc.b)
	}
}

func TestAngleCost(t *testing.T) {
	k := 7.5
	// opposite headings cost the full penalty
	assert.Equal(t, k, AngleCost(Heading(0), 180, k))
	assert.Equal(t, k, AngleCost(Heading(180), 0, k))
	// wrap around 0°
	assert.Equal(t, k/2, AngleCost(Heading(315), 45, k))
	// leaving the root is free
	assert.Equal(t, 0.0, AngleCost(NoHeading, 180, k))
	// no turn
	assert.Equal(t, 0.0, AngleCost(Heading(90), 90, k))
	// no penalty
	assert.Equal(t, 0.0, AngleCost(Heading(0), 180, 0))
}

func TestStepCost(t *testing.T) {
	east, northEast := grid.Moves[0], grid.Moves[1]
	assert.Equal(t, 1.0, StepCost(NoHeading, east, 100))
	assert.InDelta(t, math.Sqrt2+25, StepCost(HeadingOf(east), northEast, 100), 1e-12)
	assert.InDelta(t, 1+25, StepCost(HeadingOf(northEast), east, 100), 1e-12)
	assert.Equal(t, math.Sqrt2, StepCost(HeadingOf(northEast), northEast, 100))
}

func TestHeuristic(t *testing.T) {
	goal := grid.Position{X: 3, Y: 4}
	assert.Equal(t, 5.0, Heuristic(grid.Position{}, goal))
	assert.Equal(t, 0.0, Heuristic(goal, goal))
	assert.InDelta(t, 2*math.Sqrt2, Heuristic(grid.Position{X: 0, Y: 0}, grid.Position{X: 2, Y: 2}), 1e-12)
}

func TestValidatePenalty(t *testing.T) {
	assert.NoError(t, ValidatePenalty(0))
	assert.NoError(t, ValidatePenalty(12.5))
	assert.ErrorIs(t, ValidatePenalty(-1), ErrNegativePenalty)
	assert.ErrorIs(t, ValidatePenalty(math.NaN()), ErrNegativePenalty)
	assert.ErrorIs(t, ValidatePenalty(math.Inf(1)), ErrNegativePenalty)
}

func TestHeadingString(t *testing.T) {
	assert.Equal(t, "none", NoHeading.String())
	assert.Equal(t, "45°", HeadingOf(grid.Moves[1]).String())
}
