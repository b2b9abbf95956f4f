package roadmap

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// minRectSide keeps degenerate bounds (points, axis-aligned segments)
// acceptable to rtreego, which rejects zero-length sides.
const minRectSide = 1e-12

// zoneEntry wraps a no-fly polygon for R-tree storage.
type zoneEntry struct {
	polygon orb.Polygon
	bbox    rtreego.Rect
}

func (z *zoneEntry) Bounds() rtreego.Rect { return z.bbox }

// zoneIndex answers which no-fly zones are near a point or segment.
type zoneIndex struct {
	tree *rtreego.Rtree
}

func newZoneIndex(zones []orb.Polygon) *zoneIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for _, polygon := range zones {
		if len(polygon) == 0 || len(polygon[0]) == 0 {
			continue
		}
		tree.Insert(&zoneEntry{polygon: polygon, bbox: rectOf(polygon.Bound())})
	}
	return &zoneIndex{tree: tree}
}

func (z *zoneIndex) near(b orb.Bound) []orb.Polygon {
	hits := z.tree.SearchIntersect(rectOf(b))
	polygons := make([]orb.Polygon, 0, len(hits))
	for _, hit := range hits {
		polygons = append(polygons, hit.(*zoneEntry).polygon)
	}
	return polygons
}

// contains reports whether p lies inside any zone.
func (z *zoneIndex) contains(p orb.Point) bool {
	for _, polygon := range z.near(orb.Bound{Min: p, Max: p}) {
		if planar.PolygonContains(polygon, p) {
			return true
		}
	}
	return false
}

// clear reports whether the straight segment a-b stays outside every zone.
func (z *zoneIndex) clear(a, b orb.Point) bool {
	bound := orb.Bound{Min: a, Max: a}.Extend(b)
	mid := orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
	for _, polygon := range z.near(bound) {
		if planar.PolygonContains(polygon, a) || planar.PolygonContains(polygon, b) || planar.PolygonContains(polygon, mid) {
			return false
		}
		for _, ring := range polygon {
			for i := range ring {
				if segmentsIntersect(a, b, ring[i], ring[(i+1)%len(ring)]) {
					return false
				}
			}
		}
	}
	return true
}

func rectOf(b orb.Bound) rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{math.Max(b.Max[0]-b.Min[0], minRectSide), math.Max(b.Max[1]-b.Min[1], minRectSide)},
	)
	if err != nil {
		// Unreachable: both sides are positive.
		panic(err)
	}
	return rect
}

// segmentsIntersect reports whether segments p1-p2 and p3-p4 properly cross
// or touch. Segments that only share an endpoint do not count.
func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	if p1.Equal(p3) || p1.Equal(p4) || p2.Equal(p3) || p2.Equal(p4) {
		return false
	}
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(p3, p4, p1)) ||
		(d2 == 0 && onSegment(p3, p4, p2)) ||
		(d3 == 0 && onSegment(p1, p2, p3)) ||
		(d4 == 0 && onSegment(p1, p2, p4))
}

// direction is the cross product orientation of p3 relative to p1-p2.
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

// onSegment assumes q is collinear with p-r.
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}

// LoadZones reads no-fly polygons from a GeoJSON feature collection. Only
// the outer ring of Polygon and MultiPolygon geometries is kept; other
// geometry types are skipped.
func LoadZones(path string) ([]orb.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse zones %s: %w", path, err)
	}

	var zones []orb.Polygon
	for _, feature := range collection.Features {
		switch geometry := feature.Geometry.(type) {
		case nil:
			continue
		case orb.Polygon:
			if len(geometry) > 0 {
				zones = append(zones, orb.Polygon{geometry[0]})
			}
		case orb.MultiPolygon:
			for _, polygon := range geometry {
				if len(polygon) > 0 {
					zones = append(zones, orb.Polygon{polygon[0]})
				}
			}
		default:
			slog.Debug("skipping zone geometry", slog.String("type", feature.Geometry.GeoJSONType()))
		}
	}
	return zones, nil
}
