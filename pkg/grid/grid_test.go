package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridErrors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]Label
		err  error
	}{
		{"EmptyRows", [][]Label{}, ErrEmptyGrid},
		{"EmptyCols", [][]Label{{}}, ErrEmptyGrid},
		{"NonRectangular", [][]Label{{0, 1}, {0}}, ErrNonRectangular},
		{"UnknownLabel", [][]Label{{0, 7}}, ErrUnknownLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestGridQueries(t *testing.T) {
	rows := [][]Label{
		{0, 1, 0},
		{0, 0, 1},
	}
	g, err := NewGrid(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 4, g.FreeCount())

	for _, p := range []Position{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []Position{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		assert.False(t, g.IsFree(p), "IsFree(%v)", p)
	}

	assert.False(t, g.IsFree(Position{1, 0}))
	assert.False(t, g.IsFree(Position{2, 1}))
	assert.True(t, g.IsFree(Position{0, 1}))

	_, err = g.Label(Position{5, 5})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// input must be copied
	rows[0][0] = Obstacle
	assert.True(t, g.IsFree(Position{0, 0}))
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewFreeGrid(5, 4)
	for i := 0; i < g.CellCount(); i++ {
		assert.Equal(t, i, g.Index(g.Position(i)))
	}
	assert.Equal(t, Position{X: 2, Y: 3}, g.Position(17))
}

func TestAnnotate(t *testing.T) {
	g := NewFreeGrid(3, 3)
	annotated, err := g.Annotate([]Position{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)

	label := func(gr *Grid, p Position) Label {
		l, err := gr.Label(p)
		require.NoError(t, err)
		return l
	}
	assert.Equal(t, Start, label(annotated, Position{0, 0}))
	assert.Equal(t, Path, label(annotated, Position{1, 1}))
	assert.Equal(t, Goal, label(annotated, Position{2, 2}))
	assert.Equal(t, Free, label(g, Position{1, 1}), "original grid must stay untouched")

	single, err := g.Annotate([]Position{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, Goal, label(single, Position{1, 2}))

	_, err = g.Annotate([]Position{{0, 0}, {3, 0}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestMoves(t *testing.T) {
	axisAligned := 0
	for i, m := range Moves {
		assert.Equal(t, i, m.Id)
		assert.Equal(t, float64(45*i), m.Heading)
		assert.False(t, m.Dx == 0 && m.Dy == 0)
		if m.IsAxisAligned() {
			axisAligned++
			assert.Equal(t, 0, i%2, "axis aligned moves have even ids")
		}
	}
	assert.Equal(t, 4, axisAligned)

	m, ok := MoveBetween(Position{1, 1}, Position{0, 2})
	require.True(t, ok)
	assert.Equal(t, 3, m.Id)

	_, ok = MoveBetween(Position{0, 0}, Position{2, 0})
	assert.False(t, ok)

	_, ok = MoveById(8)
	assert.False(t, ok)
}
