package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natevvv/grid-path-planning/internal/config"
	"github.com/natevvv/grid-path-planning/internal/occupancy"
	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/planning"
	"github.com/natevvv/grid-path-planning/pkg/server/openapi_server"
	"github.com/spf13/cobra"
)

var (
	serveConfig string
	serveMap    string
	servePort   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planner over http",
	Long: `Serve the planner over http. The configuration is read from --config or CONFIG_PATH.
The grid is the maze file of the configuration, an occupancy map given with --map, or an empty grid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "configuration file (default $CONFIG_PATH)")
	serveCmd.Flags().StringVar(&serveMap, "map", "", "occupancy map yaml (image + resolution) to plan on")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the configured port")
}

func loadConfig() (*config.Config, error) {
	configPath := serveConfig
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		log.Printf("No configuration given, using defaults")
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Configuration loaded from %s", configPath)
	return cfg, nil
}

func loadGrid(cfg *config.Config) (*grid.Grid, error) {
	start := time.Now()
	defer func() { log.Printf("[TIME-Import] = %s", time.Since(start)) }()

	switch {
	case serveMap != "":
		g, meta, err := occupancy.LoadMap(serveMap)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded occupancy map %s (%dx%d, resolution %v)", serveMap, g.Width(), g.Height(), meta.Resolution)
		return g, nil
	case cfg.Grid.MazeFile != "":
		m, err := grid.ReadMazeFile(cfg.Grid.MazeFile, cfg.Grid.Width, cfg.Grid.Height)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded maze %s (%dx%d)", cfg.Grid.MazeFile, cfg.Grid.Width, cfg.Grid.Height)
		return m.Grid, nil
	default:
		log.Printf("Using an empty %dx%d grid", cfg.Grid.Width, cfg.Grid.Height)
		return grid.NewFreeGrid(cfg.Grid.Width, cfg.Grid.Height), nil
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	g, err := loadGrid(cfg)
	if err != nil {
		return fmt.Errorf("failed to load grid: %w", err)
	}

	planner, err := planning.NewPlanner(g, planning.PlanConfig{TurnPenalty: cfg.Planner.TurnPenalty, DebugLevel: cfg.Planner.DebugLevel}, &cfg.Planner.Navigator)
	if err != nil {
		return err
	}

	service := openapi_server.NewDefaultApiService(planner)
	router := openapi_server.NewRouter(openapi_server.NewDefaultApiController(service))

	srv := &http.Server{Addr: cfg.Server.Address(), Handler: router}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
