// Package repair normalizes polygon geometry after reprojection: canonical
// ring winding, duplicate-vertex cleanup and closure, with best-effort
// handling of rings the cleanup cannot make valid.
package repair

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/Yoshida088603/dxf2geojson/internal/geometry"
)

// dedupeScale sizes the near-duplicate tolerance relative to a ring's
// extent, so cleanup behaves the same in degrees and in meters.
const dedupeScale = 1e-9

// Normalize returns the repaired geometry and whether the result is fully
// valid. Non-polygon geometry passes through unchanged. Polygons get their
// rings deduplicated, re-closed and wound exterior counter-clockwise with
// clockwise interiors. A polygon whose exterior collapses during cleanup is
// returned as-is with ok=false; a ring left self-intersecting is kept
// best-effort with ok=false. Normalize is idempotent.
func Normalize(g geometry.Geometry) (geometry.Geometry, bool) {
	poly, isPolygon := g.(geometry.Polygon)
	if !isPolygon || poly.Empty() {
		return g, true
	}

	exterior, alive := cleanRing(poly.Exterior)
	if !alive {
		return g, false
	}
	orient(exterior, orb.CCW)

	out := geometry.Polygon{Exterior: exterior}
	clean := !selfIntersects(exterior)

	for _, ring := range poly.Interiors {
		cleaned, alive := cleanRing(ring)
		if !alive {
			// A hole that collapses to nothing is dropped, not an error.
			continue
		}
		orient(cleaned, orb.CW)
		if selfIntersects(cleaned) {
			clean = false
		}
		out.Interiors = append(out.Interiors, cleaned)
	}

	return out, clean
}

// cleanRing removes consecutive near-duplicate vertices and re-closes the
// ring. The second return is false when the ring collapses below a triangle
// or to zero area.
func cleanRing(r geometry.Ring) (geometry.Ring, bool) {
	if len(r) < 3 {
		return nil, false
	}

	open := []geometry.Coordinate(r)
	if r.Closed() {
		open = open[:len(open)-1]
	}

	tol := dedupeScale * extent(open)
	out := make(geometry.Ring, 0, len(open)+1)
	for _, c := range open {
		if len(out) > 0 && near(out[len(out)-1], c, tol) {
			continue
		}
		out = append(out, c)
	}
	// The closing vertex may duplicate the first after reprojection jitter.
	for len(out) > 1 && near(out[0], out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}

	if len(out) < 3 {
		return nil, false
	}
	out = append(out, out[0])

	if math.Abs(planar.Area(out.Orb())) == 0 {
		return nil, false
	}
	return out, true
}

func orient(r geometry.Ring, want orb.Orientation) {
	if r.Orb().Orientation() != want {
		r.Reverse()
	}
}

func extent(coords []geometry.Coordinate) float64 {
	if len(coords) == 0 {
		return 0
	}
	minX, maxX := coords[0].X, coords[0].X
	minY, maxY := coords[0].Y, coords[0].Y
	for _, c := range coords[1:] {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}
	return math.Max(maxX-minX, maxY-minY)
}

func near(a, b geometry.Coordinate, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// selfIntersects reports whether any two non-adjacent edges of the closed
// ring properly cross.
func selfIntersects(r geometry.Ring) bool {
	n := len(r) - 1
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last edge share the closing vertex
			}
			if segmentsCross(r[i], r[i+1], r[j], r[j+1]) {
				return true
			}
		}
	}
	return false
}

// segmentsCross tests for a proper crossing of segments ab and cd; shared
// endpoints and collinear touches do not count.
func segmentsCross(a, b, c, d geometry.Coordinate) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(o, a, b geometry.Coordinate) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
