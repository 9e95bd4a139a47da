package path

import "github.com/natevvv/grid-path-planning/pkg/grid"

type Navigator interface {
	ComputePlan(origin, destination grid.Position) (*Result, error) // Compute a plan from the origin to the destination. Returns ErrNoPath if the destination is not reachable
	GetSearchSpace() []grid.Position                                 // Returns the search space of a previous computation. This contains all expanded positions in expansion order
	GetPqPops() int                                                  // Returns the amount of priority queue/heap pops which were performed during the search
	GetPqUpdates() int                                               // Get the number of pq pushes and updates
	GetEdgeRelaxations() int                                         // Get the number of relaxed edges
	GetRelaxationAttempts() int                                      // Get the number of attempted edge relaxations (some are skipped because of bounds, obstacles or closed cells)
	GetStaleEntries() int                                            // Get the number of discarded outdated frontier entries
	GetGrid() *grid.Grid                                             // Get the used grid
	TurnPenalty() float64                                            // Get the turning penalty coefficient k
	SetDebugLevel(level int)                                         // Set the debug level for logging
}
