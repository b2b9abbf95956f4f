// Package grid is a rectangular tile world for the astar engine.
//
// Tiles sit on integer coordinates and connect to their four orthogonal
// neighbors with unit cost. Blocked tiles are marked unavailable, so the
// search never routes through them. Neighbors are computed from the
// position and the world size, not stored.
package grid

import (
	"fmt"
	"math"
	"strings"

	astar "github.com/pdrpinto/astarkit"
)

// Tile is one cell of a World.
type Tile struct {
	astar.NodeBase[*Tile]

	X, Y  float64
	world *World
}

// Distance returns the straight-line distance to rhs. Neighbors are one unit
// apart, but diagonal edges would need the real value.
func (t *Tile) Distance(rhs *Tile) float64 {
	return math.Hypot(t.X-rhs.X, t.Y-rhs.Y)
}

// Heuristic estimates the remaining cost to rhs using the world's heuristic.
func (t *Tile) Heuristic(rhs *Tile) float64 {
	if t.world.heuristic == HeuristicManhattan {
		return math.Abs(t.X-rhs.X) + math.Abs(t.Y-rhs.Y)
	}
	return t.Distance(rhs)
}

// Successors returns the tiles one unit away in east, west, south and north
// order, looked up by row-major index in collection.
func (t *Tile) Successors(collection []*Tile) []*Tile {
	width, height := t.world.width, t.world.height
	x, y := int(math.Round(t.X)), int(math.Round(t.Y))

	successors := make([]*Tile, 0, 4)
	add := func(index int) {
		if 0 <= index && index < len(collection) {
			successors = append(successors, collection[index])
		}
	}
	if x != width-1 {
		add(x + 1 + width*y)
	}
	if x != 0 {
		add(x - 1 + width*y)
	}
	if y != height-1 {
		add(x + width*(y+1))
	}
	if y != 0 {
		add(x + width*(y-1))
	}
	return successors
}

// Equal compares positions within the world's tolerance.
func (t *Tile) Equal(rhs *Tile) bool {
	tolerance := t.world.tolerance
	return math.Abs(t.X-rhs.X) < tolerance && math.Abs(t.Y-rhs.Y) < tolerance
}

func (t *Tile) String() string {
	return fmt.Sprintf("%.2f %.2f g(%.2f) f(%.2f)", t.X, t.Y, t.G(), t.F())
}

// World owns the tiles of one layout.
type World struct {
	width     int
	height    int
	tiles     []*Tile
	start     *Tile
	finish    *Tile
	heuristic string
	tolerance float64
}

// New builds a world from cfg. Start defaults to the upper left tile and
// finish to the lower right one unless set by markers or explicit
// coordinates.
func New(cfg Config) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	width, height := cfg.Size()
	world := &World{
		width:     width,
		height:    height,
		tiles:     make([]*Tile, 0, width*height),
		heuristic: cfg.Heuristic,
		tolerance: cfg.Tolerance,
	}
	if world.heuristic == "" {
		world.heuristic = HeuristicEuclidean
	}
	if world.tolerance == 0 {
		world.tolerance = DefaultTolerance
	}

	var startMarks, finishMarks [][2]int
	for y, row := range cfg.Rows {
		for x, mark := range row {
			tile := &Tile{X: float64(x), Y: float64(y), world: world}
			tile.SetAvailable(mark != MarkBlocked)
			world.tiles = append(world.tiles, tile)
			switch mark {
			case MarkStart:
				startMarks = append(startMarks, [2]int{x, y})
			case MarkFinish:
				finishMarks = append(finishMarks, [2]int{x, y})
			}
		}
	}

	start, err := world.endpoint("start", cfg.Start, startMarks, [2]int{0, 0})
	if err != nil {
		return nil, err
	}
	finish, err := world.endpoint("finish", cfg.Finish, finishMarks, [2]int{width - 1, height - 1})
	if err != nil {
		return nil, err
	}
	world.start, world.finish = start, finish
	return world, nil
}

func (w *World) endpoint(name string, explicit *[2]int, marks [][2]int, fallback [2]int) (*Tile, error) {
	position := fallback
	switch {
	case explicit != nil:
		position = *explicit
	case len(marks) > 1:
		return nil, fmt.Errorf("%w: %d %s markers", ErrInvalidConfig, len(marks), name)
	case len(marks) == 1:
		position = marks[0]
	}
	tile, err := w.At(position[0], position[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tile, nil
}

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// Tiles returns the node collection in row-major order.
func (w *World) Tiles() []*Tile { return w.tiles }

// Start returns the configured start tile.
func (w *World) Start() *Tile { return w.start }

// Finish returns the configured finish tile.
func (w *World) Finish() *Tile { return w.finish }

// At returns the tile at (x, y).
func (w *World) At(x, y int) (*Tile, error) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return nil, fmt.Errorf("%w: (%d, %d) in %dx%d world", ErrOutOfBounds, x, y, w.width, w.height)
	}
	return w.tiles[x+w.width*y], nil
}

// Render draws the world with the given path: 'o' start, 'x' finish,
// '*' path, '#' blocked, '.' open.
func (w *World) Render(path []*Tile) string {
	marks := make([]byte, len(w.tiles))
	for i, tile := range w.tiles {
		marks[i] = MarkOpen
		if !tile.Available() {
			marks[i] = MarkBlocked
		}
	}
	for _, tile := range path {
		marks[w.index(tile)] = '*'
	}
	marks[w.index(w.start)] = 'o'
	marks[w.index(w.finish)] = 'x'

	var b strings.Builder
	for y := 0; y < w.height; y++ {
		b.Write(marks[y*w.width : (y+1)*w.width])
		b.WriteByte('\n')
	}
	return b.String()
}

func (w *World) index(tile *Tile) int {
	return int(math.Round(tile.X)) + w.width*int(math.Round(tile.Y))
}
