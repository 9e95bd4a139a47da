package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/natevvv/grid-path-planning/internal/occupancy"
	"github.com/natevvv/grid-path-planning/internal/pbf"
	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/obstacle"
)

var flagInputFile = flag.String("f", "map.osm.pbf", "Input file: OSM extract (.pbf, .osm) or occupancy map (.yaml)")
var flagOutputFile = flag.String("o", "maze.txt", "Output maze file")
var flagWidth = flag.Int("w", grid.DefaultWidth, "Grid width (ignored for occupancy maps)")
var flagHeight = flag.Int("h", grid.DefaultHeight, "Grid height (ignored for occupancy maps)")
var flagStart = flag.String("start", "0,0", "Start cell x,y written to the maze header")
var flagGoal = flag.String("goal", "", "Goal cell x,y written to the maze header (default top right cell)")
var flagJson = flag.String("json", "", "Also export the merged obstacles as JSON to this file")

func main() {
	flag.Parse()

	var g *grid.Grid
	var err error
	switch strings.ToLower(filepath.Ext(*flagInputFile)) {
	case ".yaml", ".yml":
		g, err = buildFromMap(*flagInputFile)
	default:
		g, err = buildFromOsm(*flagInputFile)
	}
	if err != nil {
		log.Fatal(err)
	}

	start, err := parseCell(*flagStart, grid.Position{X: 0, Y: 0})
	if err != nil {
		log.Fatal(err)
	}
	goal, err := parseCell(*flagGoal, grid.Position{X: g.Width() - 1, Y: g.Height() - 1})
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range []grid.Position{start, goal} {
		if !g.InBounds(p) {
			log.Fatalf("Cell %v is outside of the %dx%d grid", p, g.Width(), g.Height())
		}
		if !g.IsFree(p) {
			log.Printf("Warning: cell %v is blocked\n", p)
		}
	}

	startTime := time.Now()
	if err := grid.WriteMazeFile(&grid.Maze{Start: start, Goal: goal, Grid: g}, *flagOutputFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME] Export: %s\n", time.Since(startTime))
	fmt.Printf("Grid: %dx%d, free cells: %d\n", g.Width(), g.Height(), g.FreeCount())
	fmt.Printf("Exported maze to %s\n", *flagOutputFile)
}

func buildFromMap(filename string) (*grid.Grid, error) {
	start := time.Now()
	g, meta, err := occupancy.LoadMap(filename)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[TIME] Import: %s\n", time.Since(start))
	fmt.Printf("Map image: %s, resolution: %v\n", meta.Image, meta.Resolution)
	return g, nil
}

func buildFromOsm(filename string) (*grid.Grid, error) {
	start := time.Now()
	obstacles, err := importObstacles(filename)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[TIME] Import: %s\n", time.Since(start))

	start = time.Now()
	merger := obstacle.NewMerger(obstacles)
	merger.Merge()
	fmt.Printf("[TIME] Merge: %s\n", time.Since(start))
	fmt.Printf("Obstacle segments: %d\n", len(merger.Segments()))
	fmt.Printf("Merges: %d\n", merger.MergeCount())
	fmt.Printf("Unmergable segments: %d\n", merger.UnmergableCount())

	if *flagJson != "" {
		if err := pbf.ExportObstacleJson(merger.Segments(), *flagJson); err != nil {
			return nil, err
		}
		fmt.Printf("Exported obstacles to %s\n", *flagJson)
	}

	start = time.Now()
	bound := obstacle.Bound(merger.Segments())
	g, err := pbf.Rasterize(merger.Segments(), bound, *flagWidth, *flagHeight)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[TIME] Rasterize: %s\n", time.Since(start))
	fmt.Printf("Bound: %v - %v\n", bound.Min, bound.Max)
	return g, nil
}

func importObstacles(filename string) ([]*obstacle.Segment, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".pbf") {
		importer := pbf.NewObstacleImporter(filename)
		if err := importer.Import(); err != nil {
			return nil, err
		}
		fmt.Printf("Nodes: %d\n", importer.NodeCount())
		return importer.Obstacles(), nil
	}
	return pbf.ImportOsmXmlFile(context.Background(), filename)
}

// Parse a cell given as "x,y". An empty value returns the fallback.
func parseCell(value string, fallback grid.Position) (grid.Position, error) {
	if value == "" {
		return fallback, nil
	}
	var p grid.Position
	if _, err := fmt.Sscanf(value, "%d,%d", &p.X, &p.Y); err != nil {
		return p, fmt.Errorf("invalid cell %q, expected x,y: %w", value, err)
	}
	return p, nil
}
