package planning

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/grid/path"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Write the solution in the output file format:
// depth, number of generated nodes, the action ids, the f-values (two decimals)
// and finally the grid with the path marked, top row first.
func WriteSolution(w io.Writer, res *path.Result, g *grid.Grid) error {
	annotated, err := g.Annotate(res.Path)
	if err != nil {
		return err
	}

	actions := make([]string, len(res.Actions))
	for i, m := range res.Actions {
		actions[i] = strconv.Itoa(m.Id)
	}
	fValues := make([]string, len(res.FValues))
	for i, f := range res.FValues {
		fValues[i] = fmt.Sprintf("%.2f", f)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", res.Depth)
	fmt.Fprintf(bw, "%d\n", res.NodesGenerated)
	fmt.Fprintf(bw, "%s\n", strings.Join(actions, " "))
	fmt.Fprintf(bw, "%s\n", strings.Join(fValues, " "))
	bw.WriteString(annotated.String())
	return bw.Flush()
}

func WriteSolutionFile(filename string, res *path.Result, g *grid.Grid) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := WriteSolution(file, res, g); err != nil {
		return err
	}
	return file.Close()
}

// centre of the cell in grid coordinates
func cellCentre(p grid.Position) orb.Point {
	return orb.Point{float64(p.X) + 0.5, float64(p.Y) + 0.5}
}

// PathGeoJSON exports the plan as a FeatureCollection in grid coordinates.
// It contains the path as LineString (only if the plan exists) and the start and goal as points.
func PathGeoJSON(plan Plan) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	start := geojson.NewFeature(cellCentre(plan.Start))
	start.Properties["role"] = "start"
	fc.Append(start)

	goal := geojson.NewFeature(cellCentre(plan.Goal))
	goal.Properties["role"] = "goal"
	fc.Append(goal)

	if !plan.Exists {
		return fc
	}

	line := make(orb.LineString, len(plan.Result.Path))
	for i, p := range plan.Result.Path {
		line[i] = cellCentre(p)
	}
	route := geojson.NewFeature(line)
	route.Properties["role"] = "path"
	route.Properties["cost"] = plan.Result.Cost()
	route.Properties["depth"] = plan.Result.Depth
	route.Properties["nodesGenerated"] = plan.Result.NodesGenerated
	route.Properties["actions"] = plan.Result.ActionIds()
	fc.Append(route)
	return fc
}

// SearchSpaceGeoJSON exports the expanded cells as a single MultiPoint feature
func SearchSpaceGeoJSON(searchSpace []grid.Position) *geojson.FeatureCollection {
	points := make(orb.MultiPoint, len(searchSpace))
	for i, p := range searchSpace {
		points[i] = cellCentre(p)
	}
	feature := geojson.NewFeature(points)
	feature.Properties["role"] = "searchSpace"
	return geojson.NewFeatureCollection().Append(feature)
}
