package path

import (
	"fmt"

	"github.com/natevvv/grid-path-planning/pkg/grid"
)

// SearchNode is the best known state at a position.
// Nodes live in an arena owned by one search; parent refers to the arena index of the parent (-1 for the root).
type SearchNode struct {
	position grid.Position
	g        float64 // cost from origin to this node
	h        float64 // estimated cost from this node to the destination
	f        float64 // g + h
	parent   int     // arena index of the parent
	move     int     // id of the move which reached this node, -1 for the root
	heading  Heading // heading at this node
}

func newRootNode(origin grid.Position, heuristic float64) SearchNode {
	return SearchNode{position: origin, g: 0, h: heuristic, f: heuristic, parent: -1, move: -1, heading: NoHeading}
}

func (n *SearchNode) Position() grid.Position { return n.position }
func (n *SearchNode) G() float64              { return n.g }
func (n *SearchNode) H() float64              { return n.h }
func (n *SearchNode) F() float64              { return n.f }
func (n *SearchNode) Heading() Heading        { return n.heading }
func (n *SearchNode) IsRoot() bool            { return n.parent < 0 }

// set the values of a (cheaper) route to this node
func (n *SearchNode) relax(g, h float64, parent int, m grid.Move) {
	n.g = g
	n.h = h
	n.f = g + h
	n.parent = parent
	n.move = m.Id
	n.heading = HeadingOf(m)
}

// FrontierItem references a node of the arena together with the priority at the time it was pushed.
// After a cost decrease the frontier may hold several items for the same node; outdated ones are
// discarded when popped.
//
// implements queue.Priorizable
type FrontierItem struct {
	node     int     // arena index
	f        float64 // priority when the item was pushed
	sequence uint64  // insertion order, used for tie breaking
	index    int     // internal usage
}

func newFrontierItem(node int, f float64) *FrontierItem {
	return &FrontierItem{node: node, f: f, index: -1}
}

func (item *FrontierItem) Node() int                   { return item.node }
func (item *FrontierItem) Priority() float64           { return item.f }
func (item *FrontierItem) Sequence() uint64            { return item.sequence }
func (item *FrontierItem) SetSequence(sequence uint64) { item.sequence = sequence }
func (item *FrontierItem) Index() int                  { return item.index }
func (item *FrontierItem) SetIndex(index int)          { item.index = index }
func (item *FrontierItem) String() string {
	return fmt.Sprintf("%v: %v, %v\n", item.index, item.node, item.Priority())
}
