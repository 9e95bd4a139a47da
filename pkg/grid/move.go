package grid

import "fmt"

// Move is one of the eight actions of the robot.
// Id is the action number written to the solution file.
type Move struct {
	Id      int
	Dx      int
	Dy      int
	Heading float64 // degrees, counter clockwise from east
}

// Moves in action order. Searches iterate them in this order.
var Moves = [8]Move{
	{Id: 0, Dx: 1, Dy: 0, Heading: 0},     // east
	{Id: 1, Dx: 1, Dy: 1, Heading: 45},    // north east
	{Id: 2, Dx: 0, Dy: 1, Heading: 90},    // north
	{Id: 3, Dx: -1, Dy: 1, Heading: 135},  // north west
	{Id: 4, Dx: -1, Dy: 0, Heading: 180},  // west
	{Id: 5, Dx: -1, Dy: -1, Heading: 225}, // south west
	{Id: 6, Dx: 0, Dy: -1, Heading: 270},  // south
	{Id: 7, Dx: 1, Dy: -1, Heading: 315},  // south east
}

// Axis-aligned moves change exactly one coordinate
func (m Move) IsAxisAligned() bool {
	return m.Dx == 0 || m.Dy == 0
}

func (m Move) String() string {
	return fmt.Sprintf("%d", m.Id)
}

// Get the move with the given action number
func MoveById(id int) (Move, bool) {
	if id < 0 || id >= len(Moves) {
		return Move{}, false
	}
	return Moves[id], true
}

// Get the move which leads from a to b. Both positions have to be adjacent.
func MoveBetween(a, b Position) (Move, bool) {
	for _, m := range Moves {
		if a.X+m.Dx == b.X && a.Y+m.Dy == b.Y {
			return m, true
		}
	}
	return Move{}, false
}
