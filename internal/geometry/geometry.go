// Package geometry defines the 3-D geometry and feature model shared by the
// extraction, reprojection and repair stages.
package geometry

import "github.com/paulmach/orb"

// Type identifies a geometry variant.
type Type string

const (
	TypePoint      Type = "Point"
	TypeLineString Type = "LineString"
	TypePolygon    Type = "Polygon"
)

// Coordinate is a single 3-D position. X and Y are horizontal coordinates in
// the feature's coordinate reference system, Z is the elevation in meters.
type Coordinate struct {
	X, Y, Z float64
}

// Geometry is a tagged variant over Point, LineString and Polygon.
type Geometry interface {
	Type() Type
	Empty() bool
}

// Point is a single 3-D location.
type Point Coordinate

// Type returns TypePoint.
func (Point) Type() Type { return TypePoint }

// Empty reports whether the point is empty. A point always carries a
// coordinate, so this is always false.
func (Point) Empty() bool { return false }

// LineString is an ordered sequence of coordinates.
type LineString []Coordinate

// Type returns TypeLineString.
func (LineString) Type() Type { return TypeLineString }

// Empty reports whether the line has no coordinates.
func (l LineString) Empty() bool { return len(l) == 0 }

// Ring is a closed ordered sequence of coordinates (first == last).
type Ring []Coordinate

// Closed reports whether the first and last coordinates are equal.
func (r Ring) Closed() bool {
	if len(r) < 2 {
		return false
	}
	first, last := r[0], r[len(r)-1]
	return first.X == last.X && first.Y == last.Y
}

// Reverse reverses the ring in place. The closure invariant is preserved.
func (r Ring) Reverse() {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

// Orb returns the horizontal (x, y) projection of the ring as an orb.Ring,
// dropping elevations. Used for orientation and area computations.
func (r Ring) Orb() orb.Ring {
	out := make(orb.Ring, len(r))
	for i, c := range r {
		out[i] = orb.Point{c.X, c.Y}
	}
	return out
}

// Polygon holds one exterior ring and zero or more interior rings.
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

// Type returns TypePolygon.
func (Polygon) Type() Type { return TypePolygon }

// Empty reports whether the polygon has no exterior ring.
func (p Polygon) Empty() bool { return len(p.Exterior) == 0 }

// Properties is the flat attribute record attached to every feature.
// Unprojected and RepairFailed mark the partial-failure outcomes of the
// reprojection and repair stages.
type Properties struct {
	Layer        string
	Color        int
	DXFType      string
	Unprojected  bool
	RepairFailed bool
}

// Feature pairs one geometry with its attribute record.
type Feature struct {
	Geometry   Geometry
	Properties Properties
}

// FeatureCollection is an ordered sequence of features sharing one
// coordinate reference system, identified by its EPSG code.
type FeatureCollection struct {
	EPSG     int
	Features []Feature
}
