package openapi_server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/grid/path"
	"github.com/natevvv/grid-path-planning/pkg/planning"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	mu      sync.Mutex // the planner keeps the state of the last search
	planner *planning.Planner
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(planner *planning.Planner) DefaultApiServicer {
	return &DefaultApiService{planner: planner}
}

// compute a plan, a non nil k overrides the configured turning penalty for this request only
func (s *DefaultApiService) computePlan(start, goal Cell, k *float64) (planning.Plan, error) {
	if k != nil && *k != s.planner.TurnPenalty() {
		configured := s.planner.TurnPenalty()
		if err := s.planner.SetTurnPenalty(*k); err != nil {
			return planning.Plan{}, err
		}
		defer func() {
			if err := s.planner.SetTurnPenalty(configured); err != nil {
				log.Printf("Could not restore turning penalty %v: %v\n", configured, err)
			}
		}()
	}
	return s.planner.ComputePlan(start.Position(), goal.Position())
}

func badRequest(err error) bool {
	return errors.Is(err, grid.ErrInvalidPosition) || errors.Is(err, path.ErrNegativePenalty)
}

// ComputePlan - Compute a new plan
func (s *DefaultApiService) ComputePlan(ctx context.Context, planRequest PlanRequest) (ImplResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.computePlan(*planRequest.Start, *planRequest.Goal, planRequest.K)
	if badRequest(err) {
		return Response(http.StatusBadRequest, err.Error()), nil
	}
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}

	planResult := PlanResult{
		Start:       *planRequest.Start,
		Goal:        *planRequest.Goal,
		Reachable:   plan.Exists,
		Navigator:   s.planner.Navigator(),
		TurnPenalty: s.planner.TurnPenalty(),
	}
	if planRequest.K != nil {
		planResult.TurnPenalty = *planRequest.K
	}
	if plan.Exists {
		res := plan.Result
		planResult.Depth = res.Depth
		planResult.NodesGenerated = res.NodesGenerated
		planResult.Cost = res.Cost()
		planResult.Actions = res.ActionIds()
		planResult.FValues = res.FValues
		planResult.Path = CellsOf(res.Path)
	}

	return Response(http.StatusOK, planResult), nil
}

func (s *DefaultApiService) GetPlanGeoJSON(ctx context.Context, start, goal Cell) (ImplResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.computePlan(start, goal, nil)
	if badRequest(err) {
		return Response(http.StatusBadRequest, err.Error()), nil
	}
	if err != nil {
		return Response(http.StatusInternalServerError, nil), err
	}
	return Response(http.StatusOK, planning.PathGeoJSON(plan)), nil
}

func (s *DefaultApiService) GetGrid(ctx context.Context) (ImplResponse, error) {
	g := s.planner.GetGrid()

	rows := make([][]int, g.Height())
	for y, row := range g.Rows() {
		rows[y] = make([]int, len(row))
		for x, label := range row {
			rows[y][x] = int(label)
		}
	}
	return Response(http.StatusOK, GridResponse{Width: g.Width(), Height: g.Height(), Rows: rows}), nil
}

func (s *DefaultApiService) GetSearchSpace(ctx context.Context) (ImplResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Response(http.StatusOK, Cells{Cells: CellsOf(s.planner.GetSearchSpace())}), nil
}

func (s *DefaultApiService) SetNavigator(ctx context.Context, navigatorRequest NavigatorRequest) (ImplResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.planner.SetNavigator(navigatorRequest.Navigator) {
		return Response(http.StatusBadRequest, "Unknown Navigator"), nil
	}
	return Response(http.StatusOK, NavigatorResponse{Navigator: s.planner.Navigator(), TurnPenalty: s.planner.TurnPenalty()}), nil
}
