package path

import (
	"fmt"
	"log"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/queue"
	"github.com/natevvv/grid-path-planning/pkg/slice"
)

type SearchKPIs struct {
	pqPops             int // store the amount of Pops which were performed on the priority queue for the computed search
	pqUpdates          int // store each push to the priority queue
	staleEntries       int // popped entries of already expanded positions
	relaxationAttempts int // store the attempt for relaxed edges
	relaxedEdges       int // number of relaxed edges
	decreasedCosts     int // number of in place updates of already generated nodes
	expandedNodes      int // number of expanded (closed) positions
}

// Reset the kpi
func (kpi *SearchKPIs) Reset() {
	kpi.pqPops = 0
	kpi.pqUpdates = 0
	kpi.staleEntries = 0
	kpi.relaxationAttempts = 0
	kpi.relaxedEdges = 0
	kpi.decreasedCosts = 0
	kpi.expandedNodes = 0
}

// WeightedAStar is a best-first search over the 8-connected grid.
// The cost of a move consists of the travelled distance and a penalty for changing the heading.
// Since the heuristic ignores the penalty, the result is only guaranteed to be optimal for k = 0.
//
// The frontier, the closed set and the reached table are created for every search and are never shared.
// Implements the Navigator Interface.
type WeightedAStar struct {
	g *grid.Grid
	k float64 // turning penalty

	minHeap queue.MinHeap[*FrontierItem] // frontier
	nodes   []SearchNode                 // arena of all generated nodes
	reached []int                        // arena index for each cell (row-major index), -1 if not generated
	closed  slice.FixedSizeSlice         // expanded cells

	origin         grid.Position
	destination    grid.Position
	expansionOrder []grid.Position
	nodesGenerated int

	searchKPIs SearchKPIs

	debugLevel int // debug level for logging purpose
}

// Create a new search on grid g with the turning penalty k
func NewWeightedAStar(g *grid.Grid, k float64) (*WeightedAStar, error) {
	if err := ValidatePenalty(k); err != nil {
		return nil, err
	}
	return &WeightedAStar{g: g, k: k}, nil
}

// Compute a plan from the origin to the destination.
// If the destination can't be reached, ErrNoPath is returned.
func (a *WeightedAStar) ComputePlan(origin, destination grid.Position) (*Result, error) {
	if !a.g.InBounds(origin) || !a.g.InBounds(destination) {
		return nil, fmt.Errorf("%w: %v -> %v", grid.ErrInvalidPosition, origin, destination)
	}

	if a.debugLevel >= 1 {
		log.Printf("New search: %v -> %v, k = %v\n", origin, destination, a.k)
	}

	a.initializeSearch(origin, destination)

	for a.minHeap.Len() > 0 {
		item := a.minHeap.Pop()
		a.searchKPIs.pqPops++
		position := a.nodes[item.node].position
		cell := a.g.Index(position)

		if a.closed.Has(cell) {
			// outdated entry of a node which got a cheaper route
			a.searchKPIs.staleEntries++
			continue
		}

		if position == destination {
			result := reconstructPath(a.nodes, item.node, a.nodesGenerated)
			if a.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with cost %v, depth %v, generated nodes %v\n", origin, destination, result.Cost(), result.Depth, result.NodesGenerated)
			}
			return result, nil
		}

		if a.debugLevel >= 2 {
			log.Printf("Expanding node %v, g %v, f %v\n", position, a.nodes[item.node].g, a.nodes[item.node].f)
		}

		a.closed.Add(cell)
		a.expansionOrder = append(a.expansionOrder, position)
		a.searchKPIs.expandedNodes++
		a.relaxEdges(item.node)
	}

	if a.debugLevel >= 1 {
		log.Printf("Finished search, no path found\n")
	}
	return nil, ErrNoPath
}

// Initialize a new search
// This creates a new frontier, closed set and reached table
func (a *WeightedAStar) initializeSearch(origin, destination grid.Position) {
	a.origin = origin
	a.destination = destination
	a.searchKPIs.Reset()

	cells := a.g.CellCount()
	a.closed = slice.MakeFixedSizeSlice(cells)
	a.reached = make([]int, cells)
	for i := range a.reached {
		a.reached[i] = -1
	}
	a.nodes = make([]SearchNode, 0, cells)
	a.expansionOrder = make([]grid.Position, 0)
	a.minHeap = *queue.NewMinHeap[*FrontierItem](nil)

	a.nodes = append(a.nodes, newRootNode(origin, Heuristic(origin, destination)))
	a.reached[a.g.Index(origin)] = 0
	a.minHeap.Push(newFrontierItem(0, a.nodes[0].f))
	a.searchKPIs.pqUpdates++
	a.nodesGenerated = 1
}

// Relax the edges of the given node and add new or cheaper nodes to the frontier
func (a *WeightedAStar) relaxEdges(nodeIndex int) {
	// copy, the arena may grow while relaxing
	node := a.nodes[nodeIndex]

	for _, move := range grid.Moves {
		a.searchKPIs.relaxationAttempts++
		successor := node.position.Neighbor(move)

		if !a.g.IsFree(successor) {
			// out of bounds or obstacle
			continue
		}
		cell := a.g.Index(successor)
		if a.closed.Has(cell) {
			continue
		}

		distance := node.g + StepCost(node.heading, move, a.k)
		heuristic := Heuristic(successor, a.destination)
		priority := distance + heuristic

		if a.debugLevel >= 3 {
			log.Printf("Relax Edge %v -> %v (move %v), f %v\n", node.position, successor, move.Id, priority)
		}

		if existing := a.reached[cell]; existing < 0 {
			successorNode := SearchNode{position: successor}
			successorNode.relax(distance, heuristic, nodeIndex, move)
			a.nodes = append(a.nodes, successorNode)
			a.reached[cell] = len(a.nodes) - 1
			a.minHeap.Push(newFrontierItem(len(a.nodes)-1, priority))
			a.searchKPIs.pqUpdates++
			a.nodesGenerated++
		} else if priority < a.nodes[existing].f {
			a.nodes[existing].relax(distance, heuristic, nodeIndex, move)
			// the old entry stays in the frontier and gets discarded when popped
			a.minHeap.Push(newFrontierItem(existing, priority))
			a.searchKPIs.pqUpdates++
			a.searchKPIs.decreasedCosts++
		}
		a.searchKPIs.relaxedEdges++
	}
}

// Returns the search space of a previous computation. This contains all expanded positions in expansion order.
func (a *WeightedAStar) GetSearchSpace() []grid.Position {
	searchSpace := make([]grid.Position, len(a.expansionOrder))
	copy(searchSpace, a.expansionOrder)
	return searchSpace
}

func (a *WeightedAStar) GetPqPops() int             { return a.searchKPIs.pqPops }
func (a *WeightedAStar) GetPqUpdates() int          { return a.searchKPIs.pqUpdates }
func (a *WeightedAStar) GetEdgeRelaxations() int    { return a.searchKPIs.relaxedEdges }
func (a *WeightedAStar) GetRelaxationAttempts() int { return a.searchKPIs.relaxationAttempts }
func (a *WeightedAStar) GetStaleEntries() int       { return a.searchKPIs.staleEntries }
func (a *WeightedAStar) GetDecreasedCosts() int     { return a.searchKPIs.decreasedCosts }
func (a *WeightedAStar) GetExpandedNodes() int      { return a.searchKPIs.expandedNodes }
func (a *WeightedAStar) GetNodesGenerated() int     { return a.nodesGenerated }
func (a *WeightedAStar) GetGrid() *grid.Grid        { return a.g }
func (a *WeightedAStar) TurnPenalty() float64       { return a.k }
func (a *WeightedAStar) SetDebugLevel(level int)    { a.debugLevel = level }
func (a *WeightedAStar) ClosedRatio() float64       { return a.closed.Ratio() }
func (a *WeightedAStar) Origin() grid.Position      { return a.origin }
func (a *WeightedAStar) Destination() grid.Position { return a.destination }
