package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyGrid       = errors.New("grid: grid must have at least one row and one column")
	ErrNonRectangular  = errors.New("grid: all rows must have the same length")
	ErrOutOfBounds     = errors.New("grid: position is outside of the grid")
	ErrUnknownLabel    = errors.New("grid: unknown cell label")
	ErrInvalidPosition = errors.New("grid: start or goal is not a valid position")
)

// Label of a single cell. Only Free and Obstacle are valid input labels,
// the others are written when a solution gets rendered.
type Label int

const (
	Free     Label = 0
	Obstacle Label = 1
	Start    Label = 2
	Reserved Label = 3
	Path     Label = 4
	Goal     Label = 5
)

func (l Label) Valid() bool { return l >= Free && l <= Goal }

// Grid is an immutable occupancy map.
// Cells are stored row-major, row 0 is the bottom row.
type Grid struct {
	width  int
	height int
	cells  []Label
}

// Create a new grid from the given rows. rows[y][x] holds the label of the cell (x, y).
// The rows are copied, later changes of the input don't affect the grid.
func NewGrid(rows [][]Label) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(rows), len(rows[0])
	cells := make([]Label, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrNonRectangular, y, len(row), width)
		}
		for x, label := range row {
			if !label.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownLabel, label, x, y)
			}
		}
		cells = append(cells, row...)
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

// Create an obstacle free grid with the given dimensions
func NewFreeGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{width: width, height: height, cells: make([]Label, width*height)}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) CellCount() int {
	return len(g.cells)
}

func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsFree reports whether p lies inside the grid and is not blocked
func (g *Grid) IsFree(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] != Obstacle
}

func (g *Grid) Label(p Position) (Label, error) {
	if !g.InBounds(p) {
		return Free, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return g.cells[g.Index(p)], nil
}

// Row-major index of p. The caller has to guarantee that p is in bounds.
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Position for the given row-major index
func (g *Grid) Position(index int) Position {
	return Position{X: index % g.width, Y: index / g.width}
}

// Count the free cells of the grid
func (g *Grid) FreeCount() int {
	free := 0
	for _, label := range g.cells {
		if label != Obstacle {
			free++
		}
	}
	return free
}

// Rows returns a copy of the grid as rows, rows[y][x]
func (g *Grid) Rows() [][]Label {
	rows := make([][]Label, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]Label, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Annotate returns a copy of the grid with the solution path marked.
// The first position is labeled as Start, the last one as Goal and all positions in between as Path.
func (g *Grid) Annotate(path []Position) (*Grid, error) {
	annotated := &Grid{width: g.width, height: g.height, cells: make([]Label, len(g.cells))}
	copy(annotated.cells, g.cells)
	if len(path) == 0 {
		return annotated, nil
	}
	for _, p := range path {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	for i := 1; i < len(path)-1; i++ {
		annotated.cells[g.Index(path[i])] = Path
	}
	annotated.cells[g.Index(path[0])] = Start
	annotated.cells[g.Index(path[len(path)-1])] = Goal
	return annotated, nil
}

func (g *Grid) String() string {
	var sb strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%d", g.cells[y*g.width+x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
