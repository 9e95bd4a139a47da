package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/grid/path"
	"github.com/natevvv/grid-path-planning/pkg/planning"
	"github.com/natevvv/grid-path-planning/pkg/slice"
)

// reference cost of an unreachable target
const unreachable = -1

type target struct {
	origin, destination grid.Position
	cost                float64 // cost of the exact search, unreachable if there is no path
	depth               int
	actions             []int
}

func main() {
	mazeFile := flag.String("maze", "", "Benchmark on this maze file instead of a random grid")
	width := flag.Int("w", grid.DefaultWidth, "Grid width")
	height := flag.Int("h", grid.DefaultHeight, "Grid height")
	density := flag.Float64("density", 0.25, "Obstacle density of a random grid")
	seed := flag.Int64("seed", 0, "Seed for the random grid and targets (0 uses the current time)")
	amountTargets := flag.Int("n", 100, "How many targets should get created")
	targetFile := flag.String("targets", "", "Read targets from this file, or store them if -store is set")
	storeTargets := flag.Bool("store", false, "Store targets (when newly generated)")
	algorithm := flag.String("search", planning.AStar, "Select the search algorithm (astar, exact)")
	k := flag.Float64("k", 1, "Turning penalty")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	debugLevel := flag.Int("debug", 0, "Set the debug level of the navigator")
	flag.Parse()

	if !slice.Contains([]string{planning.AStar, planning.Exact}, *algorithm) {
		log.Fatalf("Navigator %q not supported", *algorithm)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	start := time.Now()
	g := loadGrid(*mazeFile, *width, *height, *density, rng)
	fmt.Printf("[TIME-Import] = %s\n", time.Since(start))
	fmt.Printf("Grid: %dx%d, %d free cells, seed %d\n", g.Width(), g.Height(), g.FreeCount(), *seed)

	navigator, err := planning.NewPlanner(g, planning.PlanConfig{TurnPenalty: *k, DebugLevel: *debugLevel}, algorithm)
	if err != nil {
		log.Fatal(err)
	}
	reference, err := path.NewHeadingDijkstra(g, *k)
	if err != nil {
		log.Fatal(err)
	}

	var targets []target
	if *targetFile != "" && !*storeTargets {
		targets, err = readTargets(*targetFile)
		if err != nil {
			log.Fatal(err)
		}
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	} else {
		start = time.Now()
		targets = createTargets(*amountTargets, g, reference, rng)
		fmt.Printf("[TIME-Reference] = %s\n", time.Since(start))
		if *storeTargets && *targetFile != "" {
			if err := writeTargets(targets, *targetFile); err != nil {
				log.Fatal(err)
			}
		}
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	benchmark(navigator, targets)
}

func loadGrid(mazeFile string, width, height int, density float64, rng *rand.Rand) *grid.Grid {
	if mazeFile != "" {
		m, err := grid.ReadMazeFile(mazeFile, width, height)
		if err != nil {
			log.Fatal(err)
		}
		return m.Grid
	}
	rows := make([][]grid.Label, height)
	for y := range rows {
		rows[y] = make([]grid.Label, width)
		for x := range rows[y] {
			if rng.Float64() < density {
				rows[y][x] = grid.Obstacle
			}
		}
	}
	g, err := grid.NewGrid(rows)
	if err != nil {
		log.Fatal(err)
	}
	return g
}

func freeCells(g *grid.Grid) []grid.Position {
	free := make([]grid.Position, 0, g.FreeCount())
	for i := 0; i < g.CellCount(); i++ {
		if p := g.Position(i); g.IsFree(p) {
			free = append(free, p)
		}
	}
	return free
}

func createTargets(n int, g *grid.Grid, reference *path.HeadingDijkstra, rng *rand.Rand) []target {
	free := freeCells(g)
	if len(free) == 0 {
		log.Fatal("Grid has no free cells")
	}
	targets := make([]target, n)
	for i := 0; i < n; i++ {
		origin := free[rng.Intn(len(free))]
		destination := free[rng.Intn(len(free))]
		targets[i] = target{origin: origin, destination: destination, cost: unreachable}
		res, err := reference.ComputePlan(origin, destination)
		if err != nil {
			continue
		}
		targets[i].cost = res.Cost()
		targets[i].depth = res.Depth
		targets[i].actions = res.ActionIds()
	}
	return targets
}

// Targets are stored one per line: origin_x origin_y destination_x destination_y cost depth
func readTargets(filename string) ([]target, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	targets := make([]target, 0)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%d %d %d %d %g %d", &t.origin.X, &t.origin.Y, &t.destination.X, &t.destination.Y, &t.cost, &t.depth); err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", line, err)
		}
		targets = append(targets, t)
	}
	return targets, scanner.Err()
}

func writeTargets(targets []target, filename string) error {
	var sb strings.Builder
	sb.WriteString("# origin_x origin_y destination_x destination_y cost depth\n")
	for _, t := range targets {
		sb.WriteString(fmt.Sprintf("%d %d %d %d %g %d\n", t.origin.X, t.origin.Y, t.destination.X, t.destination.Y, t.cost, t.depth))
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(sb.String()); err != nil {
		return err
	}
	return writer.Flush()
}

// Run the planner on all targets and compare the results with the exact search
func benchmark(planner *planning.Planner, targets []target) {
	var runtime time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	staleEntries := 0
	edgeRelaxations := 0
	relaxationAttempts := 0
	nodesGenerated := 0

	invalidReachability := make([]int, 0)
	invalidResults := make([]int, 0)
	suboptimal := 0
	maxGap := 0.0
	sumGap := 0.0
	differentActions := 0

	showResults := func() {
		if completed == 0 {
			fmt.Println("No targets completed")
			return
		}
		fmt.Printf("Average runtime: %.3fms\n", float64(int(runtime.Nanoseconds())/completed)/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average stale entries: %d\n", staleEntries/completed)
		fmt.Printf("Average relaxations attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)
		fmt.Printf("Average nodes generated: %d\n", nodesGenerated/completed)

		fmt.Printf("%v/%v suboptimal paths, max gap: %.4f, average gap: %.4f\n", suboptimal, completed, maxGap, sumGap/float64(completed))
		fmt.Printf("%v/%v paths with other actions than the reference\n", differentActions, completed)

		fmt.Printf("%v/%v invalid reachability.\n", len(invalidReachability), completed)
		for i, testcase := range invalidReachability {
			fmt.Printf("%v: Case %v (%v -> %v) differs in reachability\n", i, testcase, targets[testcase].origin, targets[testcase].destination)
		}

		fmt.Printf("%v/%v invalid Result (origin/destination).\n", len(invalidResults), completed)
		for i, testcase := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, testcase, targets[testcase].origin, targets[testcase].destination)
		}
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, t := range targets {
		start := time.Now()
		plan, err := planner.ComputePlan(t.origin, t.destination)
		elapsed := time.Since(start)
		if err != nil {
			log.Printf("Case %v: %v\n", i, err)
			continue
		}

		stats := planner.SearchStats()
		pqPops += stats.GetPqPops()
		pqUpdates += stats.GetPqUpdates()
		staleEntries += stats.GetStaleEntries()
		edgeRelaxations += stats.GetEdgeRelaxations()
		relaxationAttempts += stats.GetRelaxationAttempts()

		cost := float64(unreachable)
		if plan.Exists {
			cost = plan.Result.Cost()
			nodesGenerated += plan.Result.NodesGenerated
		}
		fmt.Printf("[%3v TIME-Navigate, PQ Pops, PQ Updates, relaxed Edges, relax attempts, cost] = %12s, %7d, %7d, %7d, %7d, %10.4f\n", i, elapsed, stats.GetPqPops(), stats.GetPqUpdates(), stats.GetEdgeRelaxations(), stats.GetRelaxationAttempts(), cost)

		if plan.Exists != (t.cost != unreachable) {
			invalidReachability = append(invalidReachability, i)
		} else if plan.Exists {
			if plan.Result.Origin() != t.origin || plan.Result.Destination() != t.destination {
				invalidResults = append(invalidResults, i)
			}
			gap := cost - t.cost
			if gap > 1e-9 {
				suboptimal++
				sumGap += gap
				maxGap = math.Max(maxGap, gap)
			}
			// actions are unknown for targets read from a file
			if t.actions != nil && slice.Compare(plan.Result.ActionIds(), t.actions) != 0 {
				differentActions++
			}
		}

		runtime += elapsed
		completed++
	}
	// normal termination, show results
	showResults()
}
