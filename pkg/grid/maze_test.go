package grid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallMaze = `0 0 3 2
0 0 0 0
0 1 1 0
0 0 0 0
`

func TestParseMaze(t *testing.T) {
	m, err := ParseMazeString(smallMaze, 4, 3)
	require.NoError(t, err)

	assert.Equal(t, Position{0, 0}, m.Start)
	assert.Equal(t, Position{3, 2}, m.Goal)
	// the second grid line is the middle row
	assert.False(t, m.Grid.IsFree(Position{1, 1}))
	assert.False(t, m.Grid.IsFree(Position{2, 1}))
	assert.True(t, m.Grid.IsFree(Position{1, 0}))
	assert.True(t, m.Grid.IsFree(Position{1, 2}))

	assert.Equal(t, smallMaze, FormatMaze(m))
}

func TestParseMazeErrors(t *testing.T) {
	cases := []struct {
		name string
		maze string
		err  error
	}{
		{"Empty", "", ErrHeader},
		{"ShortHeader", "0 0 3\n0 0 0 0\n", ErrHeader},
		{"NonNumericHeader", "a 0 3 2\n", ErrHeader},
		{"MissingColumn", "0 0 3 2\n0 0 0\n0 0 0 0\n0 0 0 0\n", ErrColumnCount},
		{"ExtraColumn", "0 0 3 2\n0 0 0 0 0\n0 0 0 0\n0 0 0 0\n", ErrColumnCount},
		{"MissingRow", "0 0 3 2\n0 0 0 0\n0 0 0 0\n", ErrRowCount},
		{"ExtraRow", smallMaze + "0 0 0 0\n", ErrRowCount},
		{"BadCell", "0 0 3 2\n0 0 0 0\n0 x 0 0\n0 0 0 0\n", ErrCellValue},
		{"UnknownLabel", "0 0 3 2\n0 0 0 0\n0 9 0 0\n0 0 0 0\n", ErrCellValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMazeString(tc.maze, 4, 3)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseMazeDimensions(t *testing.T) {
	for _, size := range [][2]int{{2, -1}, {-3, 2}, {0, 3}, {4, 0}} {
		_, err := ParseMazeString("0 0 1 1\n0 0\n", size[0], size[1])
		assert.ErrorIs(t, err, ErrEmptyGrid, "%dx%d", size[0], size[1])
	}
}

func TestMazeFileRoundTrip(t *testing.T) {
	m, err := ParseMazeString(smallMaze, 4, 3)
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, WriteMazeFile(m, filename))

	read, err := ReadMazeFile(filename, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, m.Start, read.Start)
	assert.Equal(t, m.Goal, read.Goal)
	assert.Equal(t, m.Grid.Rows(), read.Grid.Rows())
}
