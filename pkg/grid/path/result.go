package path

import (
	"errors"

	"github.com/natevvv/grid-path-planning/pkg/grid"
)

// ErrNoPath is returned when the frontier runs empty before the destination was reached
var ErrNoPath = errors.New("path: no path found")

// Result of a successful search. A failed search returns a nil Result and ErrNoPath.
type Result struct {
	Depth          int             // number of moves from origin to destination
	NodesGenerated int             // number of generated search nodes, including the root
	Actions        []grid.Move     // moves from origin to destination
	FValues        []float64       // f = g + h of every node on the path, origin first
	GValues        []float64       // accumulated cost of every node on the path, origin first
	Path           []grid.Position // positions from origin to destination (both inclusive)
}

// Total cost of the path
func (r *Result) Cost() float64 {
	if len(r.GValues) == 0 {
		return 0
	}
	return r.GValues[len(r.GValues)-1]
}

func (r *Result) Origin() grid.Position      { return r.Path[0] }
func (r *Result) Destination() grid.Position { return r.Path[len(r.Path)-1] }

// Action ids, as written to the solution file
func (r *Result) ActionIds() []int {
	ids := make([]int, len(r.Actions))
	for i, m := range r.Actions {
		ids[i] = m.Id
	}
	return ids
}
