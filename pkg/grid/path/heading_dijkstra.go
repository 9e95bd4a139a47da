package path

import (
	"container/heap"
	"fmt"
	"log"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/queue"
	"github.com/natevvv/grid-path-planning/pkg/slice"
)

// number of heading slots per cell: no heading (root) and one per move
const headingSlots = len(grid.Moves) + 1

// HeadingDijkstra is a plain Dijkstra over the states (cell, heading).
// Since the turning penalty only depends on the heading of the current state, this search returns
// the cheapest path regarding the combined cost. It serves as reference for the WeightedAStar.
// Implements the Navigator Interface.
type HeadingDijkstra struct {
	g *grid.Grid
	k float64

	items   []*queue.Item        // item of each generated state, nil otherwise
	settled slice.FixedSizeSlice // settled states

	destination    grid.Position
	settleOrder    []grid.Position
	nodesGenerated int

	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int

	debugLevel int
}

func NewHeadingDijkstra(g *grid.Grid, k float64) (*HeadingDijkstra, error) {
	if err := ValidatePenalty(k); err != nil {
		return nil, err
	}
	return &HeadingDijkstra{g: g, k: k}, nil
}

func stateId(cell, slot int) int { return cell*headingSlots + slot }

func splitState(state int) (cell, slot int) { return state / headingSlots, state % headingSlots }

// slot 0 is the root without heading, slot i+1 belongs to move i
func slotHeading(slot int) Heading {
	if slot == 0 {
		return NoHeading
	}
	return HeadingOf(grid.Moves[slot-1])
}

func (d *HeadingDijkstra) ComputePlan(origin, destination grid.Position) (*Result, error) {
	if !d.g.InBounds(origin) || !d.g.InBounds(destination) {
		return nil, fmt.Errorf("%w: %v -> %v", grid.ErrInvalidPosition, origin, destination)
	}
	if d.debugLevel >= 1 {
		log.Printf("New search: %v -> %v, k = %v\n", origin, destination, d.k)
	}

	states := d.g.CellCount() * headingSlots
	d.items = make([]*queue.Item, states)
	d.settled = slice.MakeFixedSizeSlice(states)
	d.destination = destination
	d.settleOrder = make([]grid.Position, 0)
	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0

	originState := stateId(d.g.Index(origin), 0)
	originItem := queue.NewQueueItem(originState, 0, -1)
	d.items[originState] = originItem
	pq := queue.NewQueue(originItem)
	d.pqUpdates++
	d.nodesGenerated = 1

	settledCells := slice.MakeFixedSizeSlice(d.g.CellCount())

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*queue.Item)
		d.pqPops++
		d.settled.Add(current.ItemId)

		cell, slot := splitState(current.ItemId)
		position := d.g.Position(cell)
		if !settledCells.Has(cell) {
			settledCells.Add(cell)
			d.settleOrder = append(d.settleOrder, position)
		}

		if position == destination {
			result := d.reconstructPath(current.ItemId)
			if d.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with cost %v\n", origin, destination, result.Cost())
			}
			return result, nil
		}

		heading := slotHeading(slot)
		for _, move := range grid.Moves {
			d.relaxationAttempts++
			successor := position.Neighbor(move)
			if !d.g.IsFree(successor) {
				continue
			}
			successorState := stateId(d.g.Index(successor), move.Id+1)
			if d.settled.Has(successorState) {
				continue
			}

			distance := current.Priority + StepCost(heading, move, d.k)
			if d.items[successorState] == nil {
				item := queue.NewQueueItem(successorState, distance, current.ItemId)
				d.items[successorState] = item
				heap.Push(pq, item)
				d.pqUpdates++
				d.nodesGenerated++
			} else if distance < d.items[successorState].Priority {
				pq.Update(d.items[successorState], distance)
				d.items[successorState].Predecessor = current.ItemId
				d.pqUpdates++
			}
			d.relaxedEdges++
		}
	}

	if d.debugLevel >= 1 {
		log.Printf("Finished search, no path found\n")
	}
	return nil, ErrNoPath
}

func (d *HeadingDijkstra) reconstructPath(destinationState int) *Result {
	var t trace
	for state := destinationState; state != -1; state = d.items[state].Predecessor {
		cell, slot := splitState(state)
		position := d.g.Position(cell)
		g := d.items[state].Priority
		t.add(position, slot-1, g, g+Heuristic(position, d.destination))
	}
	return t.result(d.nodesGenerated)
}

// Returns the cells of all settled states, in the order they were settled first
func (d *HeadingDijkstra) GetSearchSpace() []grid.Position {
	searchSpace := make([]grid.Position, len(d.settleOrder))
	copy(searchSpace, d.settleOrder)
	return searchSpace
}

func (d *HeadingDijkstra) GetPqPops() int             { return d.pqPops }
func (d *HeadingDijkstra) GetPqUpdates() int          { return d.pqUpdates }
func (d *HeadingDijkstra) GetEdgeRelaxations() int    { return d.relaxedEdges }
func (d *HeadingDijkstra) GetRelaxationAttempts() int { return d.relaxationAttempts }
func (d *HeadingDijkstra) GetStaleEntries() int       { return 0 }
func (d *HeadingDijkstra) GetGrid() *grid.Grid        { return d.g }
func (d *HeadingDijkstra) TurnPenalty() float64       { return d.k }
func (d *HeadingDijkstra) SetDebugLevel(level int)    { d.debugLevel = level }
