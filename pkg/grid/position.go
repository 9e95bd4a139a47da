package grid

import "fmt"

// Position identifies a cell. X is the column, Y the row (counted from the bottom).
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neighbor returns the position reached when applying move m
func (p Position) Neighbor(m Move) Position {
	return Position{X: p.X + m.Dx, Y: p.Y + m.Dy}
}
