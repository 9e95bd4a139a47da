package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var ErrNegativePenalty = errors.New("path: turning penalty must be a non-negative finite number")

// Heading of a node in degrees.
// NoHeading is used for the root, which was not reached by a move.
type Heading float64

const NoHeading Heading = -1

func (h Heading) Defined() bool { return h >= 0 }

func (h Heading) String() string {
	if !h.Defined() {
		return "none"
	}
	return fmt.Sprintf("%v°", float64(h))
}

func HeadingOf(m grid.Move) Heading { return Heading(m.Heading) }

// Validate the turning penalty coefficient k
func ValidatePenalty(k float64) error {
	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("%w: %v", ErrNegativePenalty, k)
	}
	return nil
}

// Distance cost of a single move: 1 for axis-aligned moves, sqrt(2) for diagonal moves
func DistanceCost(m grid.Move) float64 {
	if m.IsAxisAligned() {
		return 1
	}
	return math.Sqrt2
}

// Shortest angular difference between two headings, in [0, 180]
func AngleDifference(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Cost for turning from the previous heading to the next one.
// There is no cost if the previous heading is not defined (leaving the root).
func AngleCost(previous Heading, next float64, k float64) float64 {
	if !previous.Defined() {
		return 0
	}
	return k * (AngleDifference(next, float64(previous)) / 180)
}

// Cost for applying move m on a node with the given heading
func StepCost(previous Heading, m grid.Move, k float64) float64 {
	return DistanceCost(m) + AngleCost(previous, m.Heading, k)
}

// Euclidean distance from p to the goal.
// The turning penalty is not considered, so for k > 0 the estimate is not admissible
// for the combined cost.
func Heuristic(p, goal grid.Position) float64 {
	return planar.Distance(toPoint(p), toPoint(goal))
}

func toPoint(p grid.Position) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}
