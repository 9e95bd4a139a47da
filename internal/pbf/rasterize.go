package pbf

import (
	"errors"
	"fmt"
	"math"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/obstacle"
	"github.com/paulmach/orb"
)

var ErrEmptyBound = errors.New("pbf: bound has no area")

// Rasterize marks every cell touched by an obstacle as blocked.
// The bound is mapped onto a width x height grid, x grows to the east and y to the north.
// Points outside of the bound are clamped to the border cells.
func Rasterize(segments []*obstacle.Segment, bound orb.Bound, width, height int) (*grid.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", grid.ErrEmptyGrid, width, height)
	}
	if !(bound.Max.X() > bound.Min.X()) || !(bound.Max.Y() > bound.Min.Y()) {
		return nil, fmt.Errorf("%w: %v", ErrEmptyBound, bound)
	}

	rows := make([][]grid.Label, height)
	for y := range rows {
		rows[y] = make([]grid.Label, width)
	}
	block := func(p grid.Position) {
		rows[p.Y][p.X] = grid.Obstacle
	}

	toCell := func(p orb.Point) grid.Position {
		x := int(math.Floor((p.X() - bound.Min.X()) / (bound.Max.X() - bound.Min.X()) * float64(width)))
		y := int(math.Floor((p.Y() - bound.Min.Y()) / (bound.Max.Y() - bound.Min.Y()) * float64(height)))
		return grid.Position{X: clamp(x, 0, width-1), Y: clamp(y, 0, height-1)}
	}

	for _, segment := range segments {
		if len(segment.Points) == 0 {
			continue
		}
		previous := toCell(segment.Points[0])
		block(previous)
		for _, point := range segment.Points[1:] {
			current := toCell(point)
			for _, p := range Line(previous, current) {
				block(p)
			}
			previous = current
		}
	}

	return grid.NewGrid(rows)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Line returns the cells between a and b (both inclusive) using Bresenham's algorithm
func Line(a, b grid.Position) []grid.Position {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	cells := make([]grid.Position, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := a.X, a.Y
	for {
		cells = append(cells, grid.Position{X: x, Y: y})
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
