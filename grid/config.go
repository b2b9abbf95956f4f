package grid

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/astarkit"
)

// Tile markers used in Config.Rows.
const (
	MarkOpen    = '.'
	MarkBlocked = '#'
	MarkStart   = 'S'
	MarkFinish  = 'F'
)

// Heuristics accepted by Config.Heuristic.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
)

// DefaultTolerance is the coordinate tolerance used by Tile.Equal.
const DefaultTolerance = astar.DefaultTolerance

var (
	// ErrInvalidConfig is returned when a world cannot be built from a Config.
	ErrInvalidConfig = errors.New("grid: invalid config")

	// ErrOutOfBounds is returned for coordinates outside the world.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)

// Config describes a rectangular tile world. Rows are listed top to bottom;
// every row must have the same width.
type Config struct {
	Rows      []string `yaml:"rows"`
	Start     *[2]int  `yaml:"start,omitempty"`
	Finish    *[2]int  `yaml:"finish,omitempty"`
	Heuristic string   `yaml:"heuristic,omitempty"`
	Tolerance float64  `yaml:"tolerance,omitempty"`
}

// ReferenceConfig returns the 5 x 10 demonstration world with start in the
// upper left and finish in the lower right corner.
func ReferenceConfig() Config {
	return Config{
		Rows: []string{
			"S.#.#",
			"#.#..",
			"#..##",
			"##..#",
			".....",
			".##..",
			".....",
			"....#",
			".#.#.",
			".#..F",
		},
		Heuristic: HeuristicEuclidean,
	}
}

// LoadConfig reads a YAML world description from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read world file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse world file %s: %w", path, err)
	}
	return cfg, nil
}

// Size returns the width and height of the layout.
func (cfg Config) Size() (width, height int) {
	if len(cfg.Rows) == 0 {
		return 0, 0
	}
	return len(cfg.Rows[0]), len(cfg.Rows)
}

func (cfg Config) validate() error {
	width, height := cfg.Size()
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: empty layout", ErrInvalidConfig)
	}
	for y, row := range cfg.Rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidConfig, y, len(row), width)
		}
		if i := strings.IndexFunc(row, func(r rune) bool {
			return r != MarkOpen && r != MarkBlocked && r != MarkStart && r != MarkFinish
		}); i >= 0 {
			return fmt.Errorf("%w: unknown marker %q at (%d, %d)", ErrInvalidConfig, row[i], i, y)
		}
	}
	switch cfg.Heuristic {
	case "", HeuristicEuclidean, HeuristicManhattan:
	default:
		return fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, cfg.Heuristic)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %g", ErrInvalidConfig, cfg.Tolerance)
	}
	return nil
}
