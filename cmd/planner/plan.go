package main

import (
	"fmt"
	"os"
	"time"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/planning"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"
)

var (
	planK           float64
	planNavigator   string
	planWidth       int
	planHeight      int
	planGeoJSON     string
	planSearchSpace string
	planDebugLevel  int
)

var planCmd = &cobra.Command{
	Use:   "plan <input maze> <output file>",
	Short: "Plan a path for a maze file and write the solution file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(args[0], args[1])
	},
}

func init() {
	planCmd.Flags().Float64VarP(&planK, "k", "k", 0, "turning penalty, cost of a 180° turn")
	planCmd.Flags().StringVarP(&planNavigator, "navigator", "n", planning.AStar, "search algorithm (astar, exact)")
	planCmd.Flags().IntVar(&planWidth, "width", grid.DefaultWidth, "maze width")
	planCmd.Flags().IntVar(&planHeight, "height", grid.DefaultHeight, "maze height")
	planCmd.Flags().StringVar(&planGeoJSON, "geojson", "", "also write the plan as GeoJSON to this file")
	planCmd.Flags().StringVar(&planSearchSpace, "search-space", "", "write the expanded cells as GeoJSON to this file")
	planCmd.Flags().IntVar(&planDebugLevel, "debug", 0, "debug level of the navigator")
}

func runPlan(input, output string) error {
	start := time.Now()
	m, err := grid.ReadMazeFile(input, planWidth, planHeight)
	if err != nil {
		return fmt.Errorf("failed to read maze %s: %w", input, err)
	}
	fmt.Printf("[TIME-Import] = %s\n", time.Since(start))

	planner, err := planning.NewPlanner(m.Grid, planning.PlanConfig{TurnPenalty: planK, DebugLevel: planDebugLevel}, &planNavigator)
	if err != nil {
		return err
	}

	start = time.Now()
	plan, err := planner.ComputePlan(m.Start, m.Goal)
	if err != nil {
		return err
	}
	fmt.Printf("[TIME-Navigate] = %s\n", time.Since(start))

	if planSearchSpace != "" {
		if err := writeGeoJSON(planning.SearchSpaceGeoJSON(planner.GetSearchSpace()), planSearchSpace); err != nil {
			return err
		}
	}
	if planGeoJSON != "" {
		if err := writeGeoJSON(planning.PathGeoJSON(plan), planGeoJSON); err != nil {
			return err
		}
	}

	if !plan.Exists {
		fmt.Printf("No path found from %v to %v\n", m.Start, m.Goal)
		return nil
	}
	if err := planning.WriteSolutionFile(output, plan.Result, m.Grid); err != nil {
		return err
	}
	fmt.Printf("Path found: depth %d, %d nodes generated, cost %.2f\n", plan.Result.Depth, plan.Result.NodesGenerated, plan.Result.Cost())
	fmt.Printf("Solution written to %s\n", output)
	return nil
}

func writeGeoJSON(fc *geojson.FeatureCollection, filename string) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
