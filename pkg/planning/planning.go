package planning

import (
	"errors"
	"fmt"
	"log"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/grid/path"
)

var ErrUnknownNavigator = errors.New("planning: unknown navigator")

// Names of the available navigators
const (
	AStar = "astar" // weighted A*, the heuristic ignores the turning penalty
	Exact = "exact" // uniform cost search over (position, heading)
)

type PlanConfig struct {
	TurnPenalty float64 // k, weight of a 180° turn
	DebugLevel  int     // debug level of the navigators
}

// Outcome of a single planning request. If no path exists, Result is nil.
type Plan struct {
	Start  grid.Position
	Goal   grid.Position
	Exists bool
	Result *path.Result
}

type Planner struct {
	grid          *grid.Grid
	config        PlanConfig
	navigatorType string
	navigator     path.Navigator
	searchSpace   []grid.Position
}

// Create a new planner for grid g. If navigator is nil, the weighted A* is used.
func NewPlanner(g *grid.Grid, config PlanConfig, navigator *string) (*Planner, error) {
	if err := path.ValidatePenalty(config.TurnPenalty); err != nil {
		return nil, err
	}
	p := &Planner{grid: g, config: config}

	navigatorType := AStar
	if navigator != nil {
		navigatorType = *navigator
	}
	if !p.SetNavigator(navigatorType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNavigator, navigatorType)
	}
	return p, nil
}

// Select the search strategy. Returns false for unknown names; the current navigator is kept then.
func (p *Planner) SetNavigator(navigatorType string) bool {
	navigator, err := newNavigator(navigatorType, p.grid, p.config.TurnPenalty)
	if err != nil {
		log.Printf("Could not set navigator: %v\n", err)
		return false
	}
	navigator.SetDebugLevel(p.config.DebugLevel)
	p.navigator = navigator
	p.navigatorType = navigatorType
	return true
}

// Change the turning penalty. The navigator gets recreated with the new value.
func (p *Planner) SetTurnPenalty(k float64) error {
	if err := path.ValidatePenalty(k); err != nil {
		return err
	}
	navigator, err := newNavigator(p.navigatorType, p.grid, k)
	if err != nil {
		return err
	}
	navigator.SetDebugLevel(p.config.DebugLevel)
	p.config.TurnPenalty = k
	p.navigator = navigator
	return nil
}

func newNavigator(navigatorType string, g *grid.Grid, k float64) (path.Navigator, error) {
	switch navigatorType {
	case AStar:
		return path.NewWeightedAStar(g, k)
	case Exact:
		return path.NewHeadingDijkstra(g, k)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNavigator, navigatorType)
	}
}

// Compute a plan from start to goal.
// An unreachable goal is not an error, it results in a Plan with Exists == false.
func (p *Planner) ComputePlan(start, goal grid.Position) (Plan, error) {
	res, err := p.navigator.ComputePlan(start, goal)
	if err != nil && !errors.Is(err, path.ErrNoPath) {
		return Plan{}, err
	}
	p.searchSpace = p.navigator.GetSearchSpace()
	if err != nil {
		return Plan{Start: start, Goal: goal, Exists: false}, nil
	}
	return Plan{Start: start, Goal: goal, Exists: true, Result: res}, nil
}

// Returns the positions which got expanded by the last search
func (p *Planner) GetSearchSpace() []grid.Position {
	return p.searchSpace
}

func (p *Planner) GetGrid() *grid.Grid         { return p.grid }
func (p *Planner) Navigator() string           { return p.navigatorType }
func (p *Planner) TurnPenalty() float64        { return p.config.TurnPenalty }
func (p *Planner) SearchStats() path.Navigator { return p.navigator }
