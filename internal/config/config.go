package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/natevvv/grid-path-planning/pkg/grid"
	"github.com/natevvv/grid-path-planning/pkg/grid/path"
	"gopkg.in/yaml.v3"
)

// Config holds the planner configuration
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Planner PlannerConfig `yaml:"planner"`
	Server  ServerConfig  `yaml:"server"`
}

// GridConfig describes the workspace
type GridConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	MazeFile string `yaml:"maze_file"` // maze served by the http api
}

// PlannerConfig holds the search settings
type PlannerConfig struct {
	TurnPenalty float64 `yaml:"k"`         // weight of a 180° turn
	Navigator   string  `yaml:"navigator"` // astar or exact
	DebugLevel  int     `yaml:"debug_level"`
}

// ServerConfig holds the http settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = grid.DefaultWidth
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = grid.DefaultHeight
	}
	if cfg.Planner.Navigator == "" {
		cfg.Planner.Navigator = "astar"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8081
	}
}

// Validate checks the values which can't be fixed by defaults
func (cfg *Config) Validate() error {
	if cfg.Grid.Width < 0 || cfg.Grid.Height < 0 {
		return fmt.Errorf("invalid grid dimensions %dx%d: %w", cfg.Grid.Width, cfg.Grid.Height, grid.ErrEmptyGrid)
	}
	if err := path.ValidatePenalty(cfg.Planner.TurnPenalty); err != nil {
		return fmt.Errorf("invalid planner.k %v: %w", cfg.Planner.TurnPenalty, err)
	}
	return nil
}

// Address to listen on, host:port
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
