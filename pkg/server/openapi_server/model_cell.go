// SPDX-License-Identifier: MIT

package openapi_server

import "github.com/natevvv/grid-path-planning/pkg/grid"

// Cell of the grid, y counts from the bottom row
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cells is a list of grid cells, e.g. the search space of the last plan
type Cells struct {
	Cells []Cell `json:"cells"`
}

func (c Cell) Position() grid.Position {
	return grid.Position{X: c.X, Y: c.Y}
}

func CellOf(p grid.Position) Cell {
	return Cell{X: p.X, Y: p.Y}
}

func CellsOf(positions []grid.Position) []Cell {
	cells := make([]Cell, 0, len(positions))
	for _, p := range positions {
		cells = append(cells, CellOf(p))
	}
	return cells
}
