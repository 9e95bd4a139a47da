package path

import (
	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/slice"
)

// trace collects a path while walking from the destination back to the origin
type trace struct {
	path    []grid.Position
	actions []grid.Move
	fValues []float64
	gValues []float64
}

// add the next node (towards the origin). move is -1 for the root.
func (t *trace) add(p grid.Position, move int, g, f float64) {
	t.path = append(t.path, p)
	t.gValues = append(t.gValues, g)
	t.fValues = append(t.fValues, f)
	if move >= 0 {
		t.actions = append(t.actions, grid.Moves[move])
	}
}

// reverse the collected sequences (to create the correct direction) and build the result
func (t *trace) result(nodesGenerated int) *Result {
	slice.ReverseInPlace(t.path)
	slice.ReverseInPlace(t.actions)
	slice.ReverseInPlace(t.fValues)
	slice.ReverseInPlace(t.gValues)
	if t.actions == nil {
		t.actions = make([]grid.Move, 0)
	}
	return &Result{
		Depth:          len(t.path) - 1,
		NodesGenerated: nodesGenerated,
		Actions:        t.actions,
		FValues:        t.fValues,
		GValues:        t.gValues,
		Path:           t.path,
	}
}

// Walk the parent links from the destination node to the root
func reconstructPath(nodes []SearchNode, destination int, nodesGenerated int) *Result {
	var t trace
	for i := destination; i != -1; i = nodes[i].parent {
		node := &nodes[i]
		t.add(node.position, node.move, node.g, node.f)
	}
	return t.result(nodesGenerated)
}
