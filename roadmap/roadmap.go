// Package roadmap is a probabilistic waypoint roadmap for the astar engine.
//
// Waypoints are sampled inside a bounding box and connected to every other
// waypoint within a connection radius whose straight segment stays outside
// all no-fly zones. Edges are not stored: a waypoint finds its successors
// through an R-tree query when the search asks for them. Samples that fall
// inside a zone are kept but marked unavailable.
package roadmap

import (
	"log/slog"
	"math/rand"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	astar "github.com/pdrpinto/astarkit"
)

// Defaults applied by Build for zero Config fields.
const (
	DefaultSamples = 500
	DefaultRadius  = 0.1
)

// Config controls roadmap sampling.
type Config struct {
	Bound   orb.Bound
	Samples int
	// Radius is the connection radius in coordinate units.
	Radius float64
	// Seed makes sampling reproducible.
	Seed int64
}

// Waypoint is one roadmap node.
type Waypoint struct {
	astar.NodeBase[*Waypoint]

	ID      int
	Point   orb.Point
	roadmap *Roadmap
}

// Bounds implements rtreego.Spatial.
func (w *Waypoint) Bounds() rtreego.Rect {
	return rectOf(orb.Bound{Min: w.Point, Max: w.Point})
}

// Distance is the planar distance to rhs.
func (w *Waypoint) Distance(rhs *Waypoint) float64 {
	return planar.Distance(w.Point, rhs.Point)
}

// Heuristic is the straight-line distance, which never overestimates.
func (w *Waypoint) Heuristic(rhs *Waypoint) float64 {
	return planar.Distance(w.Point, rhs.Point)
}

// Successors returns the waypoints of collection within the connection
// radius that can be reached without crossing a no-fly zone, ordered by ID.
func (w *Waypoint) Successors(collection []*Waypoint) []*Waypoint {
	radius := w.roadmap.radius
	search := orb.Bound{
		Min: orb.Point{w.Point[0] - radius, w.Point[1] - radius},
		Max: orb.Point{w.Point[0] + radius, w.Point[1] + radius},
	}

	var successors []*Waypoint
	for _, hit := range w.roadmap.index.SearchIntersect(rectOf(search)) {
		candidate := hit.(*Waypoint)
		if candidate.ID == w.ID || candidate.ID >= len(collection) || collection[candidate.ID] != candidate {
			continue
		}
		if planar.Distance(w.Point, candidate.Point) > radius {
			continue
		}
		if !w.roadmap.zones.clear(w.Point, candidate.Point) {
			continue
		}
		successors = append(successors, candidate)
	}
	slices.SortFunc(successors, func(a, b *Waypoint) int { return a.ID - b.ID })
	return successors
}

// Equal compares waypoint IDs.
func (w *Waypoint) Equal(rhs *Waypoint) bool { return w.ID == rhs.ID }

// Roadmap owns the waypoints and their spatial indexes.
type Roadmap struct {
	radius    float64
	waypoints []*Waypoint
	index     *rtreego.Rtree
	zones     *zoneIndex
}

// New returns an empty roadmap with the given connection radius.
func New(radius float64, zones []orb.Polygon) *Roadmap {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Roadmap{
		radius: radius,
		index:  rtreego.NewTree(2, 25, 50),
		zones:  newZoneIndex(zones),
	}
}

// Build samples cfg.Samples waypoints uniformly inside cfg.Bound.
func Build(cfg Config, zones []orb.Polygon) *Roadmap {
	if cfg.Samples <= 0 {
		cfg.Samples = DefaultSamples
	}
	r := New(cfg.Radius, zones)
	rng := rand.New(rand.NewSource(cfg.Seed))

	blocked := 0
	for i := 0; i < cfg.Samples; i++ {
		p := orb.Point{
			cfg.Bound.Min[0] + rng.Float64()*(cfg.Bound.Max[0]-cfg.Bound.Min[0]),
			cfg.Bound.Min[1] + rng.Float64()*(cfg.Bound.Max[1]-cfg.Bound.Min[1]),
		}
		if !r.Add(p).Available() {
			blocked++
		}
	}
	slog.Debug("roadmap built",
		slog.Int("waypoints", len(r.waypoints)),
		slog.Int("blocked", blocked),
		slog.Int("zones", r.zones.tree.Size()),
		slog.Float64("radius", r.radius),
	)
	return r
}

// Add appends a waypoint at p. Waypoints must not be added while a search
// over this roadmap is running.
func (r *Roadmap) Add(p orb.Point) *Waypoint {
	waypoint := &Waypoint{ID: len(r.waypoints), Point: p, roadmap: r}
	waypoint.SetAvailable(!r.zones.contains(p))
	r.waypoints = append(r.waypoints, waypoint)
	r.index.Insert(waypoint)
	return waypoint
}

// Waypoints returns the node collection, indexed by waypoint ID.
func (r *Roadmap) Waypoints() []*Waypoint { return r.waypoints }

// Radius returns the connection radius.
func (r *Roadmap) Radius() float64 { return r.radius }

// Nearest returns the waypoint closest to p.
func (r *Roadmap) Nearest(p orb.Point) (*Waypoint, bool) {
	if len(r.waypoints) == 0 {
		return nil, false
	}
	hit := r.index.NearestNeighbor(rtreego.Point{p[0], p[1]})
	if hit == nil {
		return nil, false
	}
	return hit.(*Waypoint), true
}

// LengthMeters returns the haversine length of path, treating points as
// longitude/latitude.
func LengthMeters(path []*Waypoint) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += geo.Distance(path[i-1].Point, path[i].Point)
	}
	return total
}
